package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"solarys/internal/database"
	"solarys/internal/models"
	"solarys/internal/repositories"
)

type FinancialResourceService struct {
	financialResourceRepo *repositories.FinancialResourceRepository
}

func NewFinancialResourceService(financialResourceRepo *repositories.FinancialResourceRepository) *FinancialResourceService {
	return &FinancialResourceService{financialResourceRepo: financialResourceRepo}
}

func (s *FinancialResourceService) CreateFinancialResource(ctx context.Context, conn database.Conn, in models.FinancialResourceInput) (*models.FinancialResource, error) {
	var item *models.FinancialResource
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		var err error
		item, err = s.financialResourceRepo.Create(ctx, tx, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create financial resource: %w", translate(err))
	}
	return item, nil
}

func (s *FinancialResourceService) ListFinancialResourcesByProject(ctx context.Context, conn database.Conn, projectID int64) ([]models.FinancialResource, error) {
	items, err := s.financialResourceRepo.ListByProject(ctx, conn, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial resources of project %d: %w", projectID, translate(err))
	}
	return items, nil
}

func (s *FinancialResourceService) GetFinancialResource(ctx context.Context, conn database.Conn, id int64) (*models.FinancialResource, error) {
	item, err := s.financialResourceRepo.GetByID(ctx, conn, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get financial resource %d: %w", id, translate(err))
	}
	return item, nil
}

func (s *FinancialResourceService) UpdateFinancialResource(ctx context.Context, conn database.Conn, id int64, in models.FinancialResourceInput) (*models.FinancialResource, error) {
	var item *models.FinancialResource
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		var err error
		item, err = s.financialResourceRepo.Update(ctx, tx, id, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update financial resource %d: %w", id, translate(err))
	}
	return item, nil
}

func (s *FinancialResourceService) DeleteFinancialResource(ctx context.Context, conn database.Conn, id int64) error {
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		return s.financialResourceRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete financial resource %d: %w", id, translate(err))
	}
	return nil
}
