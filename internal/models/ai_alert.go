package models

// AIAlert and AISuggestion mirror the alertas_ai and sugestoes_ai tables.
// No endpoint reads or writes them yet.

type AIAlertInput struct {
	ProjectID       int64  `json:"ProjetoID" db:"projeto_id" binding:"required,gt=0"`
	TipoAlerta      string `json:"TipoAlerta" db:"tipo_alerta" binding:"required"`
	DescricaoAlerta string `json:"DescricaoAlerta" db:"descricao_alerta" binding:"required"`
	NivelSeveridade string `json:"NivelSeveridade" db:"nivel_severidade" binding:"required"`
	Status          string `json:"Status" db:"status" binding:"required"`
}

type AIAlert struct {
	ID int64 `json:"AlertaID" db:"alerta_id"`
	AIAlertInput
	DataGeracao Timestamp `json:"DataGeracao" db:"data_geracao"`
}

const SuggestionStatusPending = "Pendente"

type AISuggestionInput struct {
	AlertID           int64   `json:"AlertaID" db:"alerta_id" binding:"required,gt=0"`
	DescricaoSugestao string  `json:"DescricaoSugestao" db:"descricao_sugestao" binding:"required"`
	ImpactoEstimado   *string `json:"ImpactoEstimado" db:"impacto_estimado"`
	StatusAprovacao   string  `json:"StatusAprovacao" db:"status_aprovacao"`
}

type AISuggestion struct {
	ID int64 `json:"SugestaoID" db:"sugestao_id"`
	AISuggestionInput
}

func (s *AISuggestionInput) Prepare() {
	if s.StatusAprovacao == "" {
		s.StatusAprovacao = SuggestionStatusPending
	}
}
