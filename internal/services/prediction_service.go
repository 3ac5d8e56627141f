package services

import (
	"go.uber.org/zap"

	"solarys/internal/inference"
	"solarys/internal/metrics"
)

type PredictionService struct {
	predictor *inference.Predictor
	logger    *zap.Logger
}

// NewPredictionService accepts a nil predictor; every prediction then fails
// with inference.ErrModelUnavailable.
func NewPredictionService(predictor *inference.Predictor, logger *zap.Logger) *PredictionService {
	return &PredictionService{predictor: predictor, logger: logger}
}

func (s *PredictionService) Available() bool {
	return s.predictor != nil
}

func (s *PredictionService) PredictTaskDelay(in inference.TaskRiskInput) (*inference.Prediction, error) {
	if s.predictor == nil {
		return nil, inference.ErrModelUnavailable
	}

	prediction, err := s.predictor.Predict(in)
	if err != nil {
		return nil, err
	}

	if len(prediction.Dropped) > 0 {
		s.logger.Debug("Prediction input produced columns unknown to the model",
			zap.Strings("columns", prediction.Dropped))
	}
	metrics.IncrementTaskDelayPrediction(prediction.Label)

	return prediction, nil
}
