package models

type FinancialResourceInput struct {
	ProjectID int64    `json:"ProjetoID" db:"projeto_id" binding:"required,gt=0"`
	Tipo      string   `json:"Tipo" db:"tipo" binding:"required"`
	Descricao string   `json:"Descricao" db:"descricao" binding:"required"`
	Valor     *float64 `json:"Valor" db:"valor" binding:"required"`
	Data      Date     `json:"Data" db:"data" binding:"required"`
}

type FinancialResource struct {
	ID int64 `json:"RecursoFinanceiroID" db:"recurso_financeiro_id"`
	FinancialResourceInput
}
