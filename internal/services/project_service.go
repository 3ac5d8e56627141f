package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"solarys/internal/database"
	"solarys/internal/models"
	"solarys/internal/repositories"
)

type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

func NewProjectService(projectRepo *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

func (s *ProjectService) CreateProject(ctx context.Context, conn database.Conn, in models.ProjectInput) (*models.Project, error) {
	var project *models.Project
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		var err error
		project, err = s.projectRepo.Create(ctx, tx, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", translate(err))
	}
	return project, nil
}

func (s *ProjectService) ListProjects(ctx context.Context, conn database.Conn) ([]models.Project, error) {
	projects, err := s.projectRepo.List(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", translate(err))
	}
	return projects, nil
}

func (s *ProjectService) GetProject(ctx context.Context, conn database.Conn, id int64) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, conn, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, translate(err))
	}
	return project, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, conn database.Conn, id int64, in models.ProjectInput) (*models.Project, error) {
	var project *models.Project
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		var err error
		project, err = s.projectRepo.Update(ctx, tx, id, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update project %d: %w", id, translate(err))
	}
	return project, nil
}

// DeleteProject removes the project together with every row that
// references it.
func (s *ProjectService) DeleteProject(ctx context.Context, conn database.Conn, id int64) error {
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		return s.projectRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete project %d: %w", id, translate(err))
	}
	return nil
}
