package repositories

import (
	"context"

	"solarys/internal/database"
	"solarys/internal/models"
)

const allocationColumns = `alocacao_id, funcionario_id, projeto_id, data_inicio_alocacao, data_fim_alocacao`

type AllocationRepository struct{}

func NewAllocationRepository() *AllocationRepository {
	return &AllocationRepository{}
}

func (r *AllocationRepository) Create(ctx context.Context, db database.DBTX, in models.AllocationInput) (*models.Allocation, error) {
	query := `
		INSERT INTO alocacao_funcionarios (funcionario_id, projeto_id, data_inicio_alocacao, data_fim_alocacao)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + allocationColumns

	return queryOne[models.Allocation](ctx, db, "insert", "alocacao_funcionarios", query,
		in.EmployeeID,
		in.ProjectID,
		in.DataInicioAlocacao,
		in.DataFimAlocacao,
	)
}

func (r *AllocationRepository) ListByProject(ctx context.Context, db database.DBTX, projectID int64) ([]models.Allocation, error) {
	query := `SELECT ` + allocationColumns + ` FROM alocacao_funcionarios WHERE projeto_id = $1 ORDER BY alocacao_id`
	return queryAll[models.Allocation](ctx, db, "alocacao_funcionarios", query, projectID)
}

func (r *AllocationRepository) GetByID(ctx context.Context, db database.DBTX, id int64) (*models.Allocation, error) {
	query := `SELECT ` + allocationColumns + ` FROM alocacao_funcionarios WHERE alocacao_id = $1`
	return queryOne[models.Allocation](ctx, db, "select", "alocacao_funcionarios", query, id)
}

func (r *AllocationRepository) Update(ctx context.Context, db database.DBTX, id int64, in models.AllocationInput) (*models.Allocation, error) {
	query := `
		UPDATE alocacao_funcionarios SET
			funcionario_id = $2, projeto_id = $3, data_inicio_alocacao = $4, data_fim_alocacao = $5
		WHERE alocacao_id = $1
		RETURNING ` + allocationColumns

	return queryOne[models.Allocation](ctx, db, "update", "alocacao_funcionarios", query,
		id,
		in.EmployeeID,
		in.ProjectID,
		in.DataInicioAlocacao,
		in.DataFimAlocacao,
	)
}

func (r *AllocationRepository) Delete(ctx context.Context, db database.DBTX, id int64) error {
	query := `DELETE FROM alocacao_funcionarios WHERE alocacao_id = $1`
	return execAffectingOne(ctx, db, "delete", "alocacao_funcionarios", query, id)
}
