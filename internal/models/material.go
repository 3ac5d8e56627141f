package models

type MaterialInput struct {
	ProjectID            int64    `json:"ProjetoID" db:"projeto_id" binding:"required,gt=0"`
	NomeMaterial         string   `json:"NomeMaterial" db:"nome_material" binding:"required"`
	QuantidadeNecessaria *float64 `json:"QuantidadeNecessaria" db:"quantidade_necessaria" binding:"required"`
	QuantidadeEmEstoque  float64  `json:"QuantidadeEmEstoque" db:"quantidade_em_estoque"`
	Unidade              string   `json:"Unidade" db:"unidade" binding:"required"`
}

type Material struct {
	ID int64 `json:"MaterialID" db:"material_id"`
	MaterialInput
}
