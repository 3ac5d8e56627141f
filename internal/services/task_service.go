package services

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"solarys/internal/database"
	"solarys/internal/models"
	"solarys/internal/repositories"
)

type TaskService struct {
	taskRepo *repositories.TaskRepository
}

func NewTaskService(taskRepo *repositories.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) CreateTask(ctx context.Context, conn database.Conn, in models.TaskInput) (*models.Task, error) {
	var item *models.Task
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		var err error
		item, err = s.taskRepo.Create(ctx, tx, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", translate(err))
	}
	return item, nil
}

func (s *TaskService) ListTasksByProject(ctx context.Context, conn database.Conn, projectID int64) ([]models.Task, error) {
	items, err := s.taskRepo.ListByProject(ctx, conn, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks of project %d: %w", projectID, translate(err))
	}
	return items, nil
}

func (s *TaskService) GetTask(ctx context.Context, conn database.Conn, id int64) (*models.Task, error) {
	item, err := s.taskRepo.GetByID(ctx, conn, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, translate(err))
	}
	return item, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, conn database.Conn, id int64, in models.TaskInput) (*models.Task, error) {
	var item *models.Task
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		var err error
		item, err = s.taskRepo.Update(ctx, tx, id, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, translate(err))
	}
	return item, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, conn database.Conn, id int64) error {
	err := database.InTx(ctx, conn, func(tx pgx.Tx) error {
		return s.taskRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, translate(err))
	}
	return nil
}
