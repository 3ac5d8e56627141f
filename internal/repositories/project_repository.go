package repositories

import (
	"context"

	"solarys/internal/database"
	"solarys/internal/models"
)

const projectColumns = `projeto_id, nome, descricao, localizacao, data_inicio, data_prevista_fim, status`

type ProjectRepository struct{}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

func (r *ProjectRepository) Create(ctx context.Context, db database.DBTX, in models.ProjectInput) (*models.Project, error) {
	query := `
		INSERT INTO projetos (nome, descricao, localizacao, data_inicio, data_prevista_fim, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + projectColumns

	return queryOne[models.Project](ctx, db, "insert", "projetos", query,
		in.Nome,
		in.Descricao,
		in.Localizacao,
		in.DataInicio,
		in.DataPrevistaFim,
		in.Status,
	)
}

func (r *ProjectRepository) List(ctx context.Context, db database.DBTX) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projetos ORDER BY projeto_id`
	return queryAll[models.Project](ctx, db, "projetos", query)
}

func (r *ProjectRepository) GetByID(ctx context.Context, db database.DBTX, id int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projetos WHERE projeto_id = $1`
	return queryOne[models.Project](ctx, db, "select", "projetos", query, id)
}

func (r *ProjectRepository) Update(ctx context.Context, db database.DBTX, id int64, in models.ProjectInput) (*models.Project, error) {
	query := `
		UPDATE projetos SET
			nome = $2, descricao = $3, localizacao = $4, data_inicio = $5, data_prevista_fim = $6, status = $7
		WHERE projeto_id = $1
		RETURNING ` + projectColumns

	return queryOne[models.Project](ctx, db, "update", "projetos", query,
		id,
		in.Nome,
		in.Descricao,
		in.Localizacao,
		in.DataInicio,
		in.DataPrevistaFim,
		in.Status,
	)
}

func (r *ProjectRepository) Delete(ctx context.Context, db database.DBTX, id int64) error {
	query := `DELETE FROM projetos WHERE projeto_id = $1`
	return execAffectingOne(ctx, db, "delete", "projetos", query, id)
}
