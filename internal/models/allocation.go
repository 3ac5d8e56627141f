package models

// AllocationInput links an employee to a project. Overlapping allocations
// for the same employee are allowed.
type AllocationInput struct {
	EmployeeID         int64 `json:"FuncionarioID" db:"funcionario_id" binding:"required,gt=0"`
	ProjectID          int64 `json:"ProjetoID" db:"projeto_id" binding:"required,gt=0"`
	DataInicioAlocacao Date  `json:"DataInicioAlocacao" db:"data_inicio_alocacao" binding:"required"`
	DataFimAlocacao    *Date `json:"DataFimAlocacao" db:"data_fim_alocacao"`
}

type Allocation struct {
	ID int64 `json:"AlocacaoID" db:"alocacao_id"`
	AllocationInput
}
