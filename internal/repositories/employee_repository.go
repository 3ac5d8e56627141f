package repositories

import (
	"context"

	"solarys/internal/database"
	"solarys/internal/models"
)

const employeeColumns = `funcionario_id, nome_completo, funcao, status`

type EmployeeRepository struct{}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{}
}

func (r *EmployeeRepository) Create(ctx context.Context, db database.DBTX, in models.EmployeeInput) (*models.Employee, error) {
	query := `
		INSERT INTO funcionarios (nome_completo, funcao, status)
		VALUES ($1, $2, $3)
		RETURNING ` + employeeColumns

	return queryOne[models.Employee](ctx, db, "insert", "funcionarios", query,
		in.NomeCompleto,
		in.Funcao,
		in.Status,
	)
}

func (r *EmployeeRepository) List(ctx context.Context, db database.DBTX) ([]models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM funcionarios ORDER BY funcionario_id`
	return queryAll[models.Employee](ctx, db, "funcionarios", query)
}

func (r *EmployeeRepository) GetByID(ctx context.Context, db database.DBTX, id int64) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM funcionarios WHERE funcionario_id = $1`
	return queryOne[models.Employee](ctx, db, "select", "funcionarios", query, id)
}

func (r *EmployeeRepository) Update(ctx context.Context, db database.DBTX, id int64, in models.EmployeeInput) (*models.Employee, error) {
	query := `
		UPDATE funcionarios SET nome_completo = $2, funcao = $3, status = $4
		WHERE funcionario_id = $1
		RETURNING ` + employeeColumns

	return queryOne[models.Employee](ctx, db, "update", "funcionarios", query,
		id,
		in.NomeCompleto,
		in.Funcao,
		in.Status,
	)
}

func (r *EmployeeRepository) Delete(ctx context.Context, db database.DBTX, id int64) error {
	query := `DELETE FROM funcionarios WHERE funcionario_id = $1`
	return execAffectingOne(ctx, db, "delete", "funcionarios", query, id)
}
