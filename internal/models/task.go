package models

type TaskInput struct {
	ProjectID          int64      `json:"ProjetoID" db:"projeto_id" binding:"required,gt=0"`
	Descricao          string     `json:"Descricao" db:"descricao" binding:"required"`
	DataInicioPrevista Timestamp  `json:"DataInicioPrevista" db:"data_inicio_prevista" binding:"required"`
	DataFimPrevista    Timestamp  `json:"DataFimPrevista" db:"data_fim_prevista" binding:"required"`
	DataInicioReal     *Timestamp `json:"DataInicioReal" db:"data_inicio_real"`
	DataFimReal        *Timestamp `json:"DataFimReal" db:"data_fim_real"`
	Status             string     `json:"Status" db:"status" binding:"required"`
}

// Task actual dates are filled in by whoever tracks the work; no status
// transition is validated here.
type Task struct {
	ID int64 `json:"TarefaID" db:"tarefa_id"`
	TaskInput
}
