package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"solarys/internal/database"
	"solarys/internal/models"
	"solarys/internal/repositories"
)

type MaterialService struct {
	materialRepo *repositories.MaterialRepository
}

func NewMaterialService(materialRepo *repositories.MaterialRepository) *MaterialService {
	return &MaterialService{materialRepo: materialRepo}
}

func (s *MaterialService) CreateMaterial(ctx context.Context, conn database.Conn, in models.MaterialInput) (*models.Material, error) {
	var item *models.Material
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		var err error
		item, err = s.materialRepo.Create(ctx, tx, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create material: %w", translate(err))
	}
	return item, nil
}

func (s *MaterialService) ListMaterialsByProject(ctx context.Context, conn database.Conn, projectID int64) ([]models.Material, error) {
	items, err := s.materialRepo.ListByProject(ctx, conn, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials of project %d: %w", projectID, translate(err))
	}
	return items, nil
}

func (s *MaterialService) GetMaterial(ctx context.Context, conn database.Conn, id int64) (*models.Material, error) {
	item, err := s.materialRepo.GetByID(ctx, conn, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get material %d: %w", id, translate(err))
	}
	return item, nil
}

func (s *MaterialService) UpdateMaterial(ctx context.Context, conn database.Conn, id int64, in models.MaterialInput) (*models.Material, error) {
	var item *models.Material
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		var err error
		item, err = s.materialRepo.Update(ctx, tx, id, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update material %d: %w", id, translate(err))
	}
	return item, nil
}

func (s *MaterialService) DeleteMaterial(ctx context.Context, conn database.Conn, id int64) error {
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		return s.materialRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete material %d: %w", id, translate(err))
	}
	return nil
}
