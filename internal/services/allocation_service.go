package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"solarys/internal/database"
	"solarys/internal/models"
	"solarys/internal/repositories"
)

type AllocationService struct {
	allocationRepo *repositories.AllocationRepository
}

func NewAllocationService(allocationRepo *repositories.AllocationRepository) *AllocationService {
	return &AllocationService{allocationRepo: allocationRepo}
}

func (s *AllocationService) CreateAllocation(ctx context.Context, conn database.Conn, in models.AllocationInput) (*models.Allocation, error) {
	var item *models.Allocation
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		var err error
		item, err = s.allocationRepo.Create(ctx, tx, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create allocation: %w", translate(err))
	}
	return item, nil
}

func (s *AllocationService) ListAllocationsByProject(ctx context.Context, conn database.Conn, projectID int64) ([]models.Allocation, error) {
	items, err := s.allocationRepo.ListByProject(ctx, conn, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allocations of project %d: %w", projectID, translate(err))
	}
	return items, nil
}

func (s *AllocationService) GetAllocation(ctx context.Context, conn database.Conn, id int64) (*models.Allocation, error) {
	item, err := s.allocationRepo.GetByID(ctx, conn, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get allocation %d: %w", id, translate(err))
	}
	return item, nil
}

func (s *AllocationService) UpdateAllocation(ctx context.Context, conn database.Conn, id int64, in models.AllocationInput) (*models.Allocation, error) {
	var item *models.Allocation
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		var err error
		item, err = s.allocationRepo.Update(ctx, tx, id, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update allocation %d: %w", id, translate(err))
	}
	return item, nil
}

func (s *AllocationService) DeleteAllocation(ctx context.Context, conn database.Conn, id int64) error {
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		return s.allocationRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete allocation %d: %w", id, translate(err))
	}
	return nil
}
