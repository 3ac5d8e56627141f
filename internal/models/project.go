package models

// ProjectInput is the body accepted by create and replace.
type ProjectInput struct {
	Nome            string  `json:"Nome" db:"nome" binding:"required"`
	Descricao       *string `json:"Descricao" db:"descricao"`
	Localizacao     *string `json:"Localizacao" db:"localizacao"`
	DataInicio      Date    `json:"DataInicio" db:"data_inicio" binding:"required"`
	DataPrevistaFim Date    `json:"DataPrevistaFim" db:"data_prevista_fim" binding:"required"`
	Status          string  `json:"Status" db:"status" binding:"required"` // free-form, e.g. "Em Andamento"
}

type Project struct {
	ID int64 `json:"ProjetoID" db:"projeto_id"`
	ProjectInput
}
