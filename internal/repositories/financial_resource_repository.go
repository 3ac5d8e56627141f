package repositories

import (
	"context"

	"solarys/internal/database"
	"solarys/internal/models"
)

const financialResourceColumns = `recurso_financeiro_id, projeto_id, tipo, descricao, valor, data`

type FinancialResourceRepository struct{}

func NewFinancialResourceRepository() *FinancialResourceRepository {
	return &FinancialResourceRepository{}
}

func (r *FinancialResourceRepository) Create(ctx context.Context, db database.DBTX, in models.FinancialResourceInput) (*models.FinancialResource, error) {
	query := `
		INSERT INTO recursos_financeiros (projeto_id, tipo, descricao, valor, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + financialResourceColumns

	return queryOne[models.FinancialResource](ctx, db, "insert", "recursos_financeiros", query,
		in.ProjectID,
		in.Tipo,
		in.Descricao,
		in.Valor,
		in.Data,
	)
}

func (r *FinancialResourceRepository) ListByProject(ctx context.Context, db database.DBTX, projectID int64) ([]models.FinancialResource, error) {
	query := `SELECT ` + financialResourceColumns + ` FROM recursos_financeiros WHERE projeto_id = $1 ORDER BY recurso_financeiro_id`
	return queryAll[models.FinancialResource](ctx, db, "recursos_financeiros", query, projectID)
}

func (r *FinancialResourceRepository) GetByID(ctx context.Context, db database.DBTX, id int64) (*models.FinancialResource, error) {
	query := `SELECT ` + financialResourceColumns + ` FROM recursos_financeiros WHERE recurso_financeiro_id = $1`
	return queryOne[models.FinancialResource](ctx, db, "select", "recursos_financeiros", query, id)
}

func (r *FinancialResourceRepository) Update(ctx context.Context, db database.DBTX, id int64, in models.FinancialResourceInput) (*models.FinancialResource, error) {
	query := `
		UPDATE recursos_financeiros SET
			projeto_id = $2, tipo = $3, descricao = $4, valor = $5, data = $6
		WHERE recurso_financeiro_id = $1
		RETURNING ` + financialResourceColumns

	return queryOne[models.FinancialResource](ctx, db, "update", "recursos_financeiros", query,
		id,
		in.ProjectID,
		in.Tipo,
		in.Descricao,
		in.Valor,
		in.Data,
	)
}

func (r *FinancialResourceRepository) Delete(ctx context.Context, db database.DBTX, id int64) error {
	query := `DELETE FROM recursos_financeiros WHERE recurso_financeiro_id = $1`
	return execAffectingOne(ctx, db, "delete", "recursos_financeiros", query, id)
}
