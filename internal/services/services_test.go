package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"solarys/internal/inference"
	"solarys/internal/repositories"
)

func days(v float64) *float64 {
	return &v
}

func TestTranslate(t *testing.T) {
	err := translate(fmt.Errorf("select: %w", repositories.ErrNotFound))
	assert.ErrorIs(t, err, ErrNotFound)

	err = translate(&pgconn.PgError{Code: "23503", ConstraintName: "tarefas_projeto_id_fkey"})
	assert.ErrorIs(t, err, ErrInvalidReference)
	assert.Contains(t, err.Error(), "tarefas_projeto_id_fkey")

	other := errors.New("boom")
	assert.Equal(t, other, translate(other))

	unique := &pgconn.PgError{Code: "23505"}
	assert.Equal(t, error(unique), translate(unique))
}

func TestPredictionService_Unavailable(t *testing.T) {
	svc := NewPredictionService(nil, zap.NewNop())

	assert.False(t, svc.Available())
	_, err := svc.PredictTaskDelay(inference.TaskRiskInput{DuracaoPrevista: days(5), Categoria: "A"})
	assert.ErrorIs(t, err, inference.ErrModelUnavailable)
}

func TestPredictionService_Predict(t *testing.T) {
	model := &inference.LogisticRegression{Coefficients: []float64{1, 0, 0}, Intercept: -5}
	predictor, err := inference.NewPredictor(model, []string{"DuracaoPrevista", "Categoria_A", "Categoria_B"}, nil)
	require.NoError(t, err)

	svc := NewPredictionService(predictor, zap.NewNop())
	require.True(t, svc.Available())

	pred, err := svc.PredictTaskDelay(inference.TaskRiskInput{DuracaoPrevista: days(5), Categoria: "Z"})
	require.NoError(t, err)
	assert.Equal(t, inference.LabelOnTime, pred.Label)
	assert.InDelta(t, 0.5, pred.Probability, 1e-12)
	assert.Equal(t, []string{"Categoria_Z"}, pred.Dropped)

	pred, err = svc.PredictTaskDelay(inference.TaskRiskInput{DuracaoPrevista: days(30), Categoria: "A"})
	require.NoError(t, err)
	assert.Equal(t, inference.LabelDelayed, pred.Label)
}
