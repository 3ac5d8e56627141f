package repositories

import (
	"context"

	"solarys/internal/database"
	"solarys/internal/models"
)

const taskColumns = `tarefa_id, projeto_id, descricao, data_inicio_prevista, data_fim_prevista, data_inicio_real, data_fim_real, status`

type TaskRepository struct{}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

func (r *TaskRepository) Create(ctx context.Context, db database.DBTX, in models.TaskInput) (*models.Task, error) {
	query := `
		INSERT INTO tarefas (projeto_id, descricao, data_inicio_prevista, data_fim_prevista, data_inicio_real, data_fim_real, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + taskColumns

	return queryOne[models.Task](ctx, db, "insert", "tarefas", query,
		in.ProjectID,
		in.Descricao,
		in.DataInicioPrevista,
		in.DataFimPrevista,
		in.DataInicioReal,
		in.DataFimReal,
		in.Status,
	)
}

func (r *TaskRepository) ListByProject(ctx context.Context, db database.DBTX, projectID int64) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tarefas WHERE projeto_id = $1 ORDER BY tarefa_id`
	return queryAll[models.Task](ctx, db, "tarefas", query, projectID)
}

func (r *TaskRepository) GetByID(ctx context.Context, db database.DBTX, id int64) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tarefas WHERE tarefa_id = $1`
	return queryOne[models.Task](ctx, db, "select", "tarefas", query, id)
}

func (r *TaskRepository) Update(ctx context.Context, db database.DBTX, id int64, in models.TaskInput) (*models.Task, error) {
	query := `
		UPDATE tarefas SET
			projeto_id = $2, descricao = $3, data_inicio_prevista = $4, data_fim_prevista = $5,
			data_inicio_real = $6, data_fim_real = $7, status = $8
		WHERE tarefa_id = $1
		RETURNING ` + taskColumns

	return queryOne[models.Task](ctx, db, "update", "tarefas", query,
		id,
		in.ProjectID,
		in.Descricao,
		in.DataInicioPrevista,
		in.DataFimPrevista,
		in.DataInicioReal,
		in.DataFimReal,
		in.Status,
	)
}

func (r *TaskRepository) Delete(ctx context.Context, db database.DBTX, id int64) error {
	query := `DELETE FROM tarefas WHERE tarefa_id = $1`
	return execAffectingOne(ctx, db, "delete", "tarefas", query, id)
}
