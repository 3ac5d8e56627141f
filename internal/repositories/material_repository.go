package repositories

import (
	"context"

	"solarys/internal/database"
	"solarys/internal/models"
)

const materialColumns = `material_id, projeto_id, nome_material, quantidade_necessaria, quantidade_em_estoque, unidade`

type MaterialRepository struct{}

func NewMaterialRepository() *MaterialRepository {
	return &MaterialRepository{}
}

func (r *MaterialRepository) Create(ctx context.Context, db database.DBTX, in models.MaterialInput) (*models.Material, error) {
	query := `
		INSERT INTO materiais (projeto_id, nome_material, quantidade_necessaria, quantidade_em_estoque, unidade)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + materialColumns

	return queryOne[models.Material](ctx, db, "insert", "materiais", query,
		in.ProjectID,
		in.NomeMaterial,
		in.QuantidadeNecessaria,
		in.QuantidadeEmEstoque,
		in.Unidade,
	)
}

func (r *MaterialRepository) ListByProject(ctx context.Context, db database.DBTX, projectID int64) ([]models.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materiais WHERE projeto_id = $1 ORDER BY material_id`
	return queryAll[models.Material](ctx, db, "materiais", query, projectID)
}

func (r *MaterialRepository) GetByID(ctx context.Context, db database.DBTX, id int64) (*models.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materiais WHERE material_id = $1`
	return queryOne[models.Material](ctx, db, "select", "materiais", query, id)
}

func (r *MaterialRepository) Update(ctx context.Context, db database.DBTX, id int64, in models.MaterialInput) (*models.Material, error) {
	query := `
		UPDATE materiais SET
			projeto_id = $2, nome_material = $3, quantidade_necessaria = $4, quantidade_em_estoque = $5, unidade = $6
		WHERE material_id = $1
		RETURNING ` + materialColumns

	return queryOne[models.Material](ctx, db, "update", "materiais", query,
		id,
		in.ProjectID,
		in.NomeMaterial,
		in.QuantidadeNecessaria,
		in.QuantidadeEmEstoque,
		in.Unidade,
	)
}

func (r *MaterialRepository) Delete(ctx context.Context, db database.DBTX, id int64) error {
	query := `DELETE FROM materiais WHERE material_id = $1`
	return execAffectingOne(ctx, db, "delete", "materiais", query, id)
}
