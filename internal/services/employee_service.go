package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"solarys/internal/database"
	"solarys/internal/models"
	"solarys/internal/repositories"
)

type EmployeeService struct {
	employeeRepo *repositories.EmployeeRepository
}

func NewEmployeeService(employeeRepo *repositories.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, conn database.Conn, in models.EmployeeInput) (*models.Employee, error) {
	var item *models.Employee
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		var err error
		item, err = s.employeeRepo.Create(ctx, tx, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", translate(err))
	}
	return item, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context, conn database.Conn) ([]models.Employee, error) {
	items, err := s.employeeRepo.List(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", translate(err))
	}
	return items, nil
}

func (s *EmployeeService) GetEmployee(ctx context.Context, conn database.Conn, id int64) (*models.Employee, error) {
	item, err := s.employeeRepo.GetByID(ctx, conn, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %d: %w", id, translate(err))
	}
	return item, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, conn database.Conn, id int64, in models.EmployeeInput) (*models.Employee, error) {
	var item *models.Employee
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		var err error
		item, err = s.employeeRepo.Update(ctx, tx, id, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update employee %d: %w", id, translate(err))
	}
	return item, nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, conn database.Conn, id int64) error {
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		return s.employeeRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete employee %d: %w", id, translate(err))
	}
	return nil
}
