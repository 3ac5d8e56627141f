package inference

import (
	"errors"
	"fmt"
)

const (
	LabelDelayed = "Atrasada"
	LabelOnTime  = "No Prazo"

	delayThreshold = 0.5
)

// ErrModelUnavailable is returned when the classifier could not be loaded.
var ErrModelUnavailable = errors.New("model not available")

type TaskRiskInput struct {
	DuracaoPrevista *float64 `json:"DuracaoPrevista" binding:"required,gte=0"`
	Categoria       string   `json:"Categoria" binding:"required"`
	Status          string   `json:"Status"`
}

type Prediction struct {
	Label       string  `json:"previsao"`
	Probability float64 `json:"probabilidade_atraso"`
	// Dropped lists expanded columns the model does not know.
	Dropped []string `json:"-"`
}

// Predictor is immutable after Load and safe for concurrent use.
type Predictor struct {
	classifier Classifier
	columns    []string
	aligner    FeatureAligner
}

func NewPredictor(classifier Classifier, columns []string, aligner FeatureAligner) (*Predictor, error) {
	n := classifier.NumFeatures()
	if _, linear := classifier.(*LogisticRegression); (linear && n != len(columns)) || n > len(columns) {
		return nil, fmt.Errorf("model expects %d features but %d columns are listed", n, len(columns))
	}
	if aligner == nil {
		aligner = OneHotAligner{}
	}
	return &Predictor{classifier: classifier, columns: columns, aligner: aligner}, nil
}

// Load reads the model and its column list from disk.
func Load(modelPath, columnsPath string) (*Predictor, error) {
	classifier, err := LoadModel(modelPath)
	if err != nil {
		return nil, err
	}
	columns, err := LoadColumns(columnsPath)
	if err != nil {
		return nil, err
	}
	return NewPredictor(classifier, columns, OneHotAligner{})
}

func (p *Predictor) Columns() []string {
	return append([]string(nil), p.columns...)
}

func (p *Predictor) Predict(in TaskRiskInput) (*Prediction, error) {
	row, dropped := p.aligner.Align(in, p.columns)

	prob, err := p.classifier.PositiveProbability(row)
	if err != nil {
		return nil, fmt.Errorf("failed to score task: %w", err)
	}

	return &Prediction{
		Label:       Label(prob),
		Probability: prob,
		Dropped:     dropped,
	}, nil
}

// Label maps a delay probability to its label. Only values strictly above
// 0.5 count as delayed.
func Label(prob float64) string {
	if prob > delayThreshold {
		return LabelDelayed
	}
	return LabelOnTime
}
