package models

type EmployeeInput struct {
	NomeCompleto string `json:"NomeCompleto" db:"nome_completo" binding:"required"`
	Funcao       string `json:"Funcao" db:"funcao" binding:"required"`
	Status       string `json:"Status" db:"status" binding:"required"`
}

type Employee struct {
	ID int64 `json:"FuncionarioID" db:"funcionario_id"`
	EmployeeInput
}
