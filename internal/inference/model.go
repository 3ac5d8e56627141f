package inference

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

const (
	ModelLogisticRegression = "logistic_regression"
	ModelRandomForest       = "random_forest"
)

// Classifier returns the probability of the positive class for one aligned
// feature row.
type Classifier interface {
	PositiveProbability(row []float64) (float64, error)
	NumFeatures() int
}

type modelFile struct {
	Type               string     `json:"type"`
	Coefficients       []float64  `json:"coefficients"`
	Intercept          float64    `json:"intercept"`
	Trees              []TreeNode `json:"trees"`
	PositiveClassIndex *int       `json:"positive_class_index"`
}

// LoadModel reads a classifier exported as JSON.
func LoadModel(path string) (Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to decode model file: %w", err)
	}

	switch mf.Type {
	case ModelLogisticRegression:
		if len(mf.Coefficients) == 0 {
			return nil, errors.New("logistic regression model has no coefficients")
		}
		return &LogisticRegression{Coefficients: mf.Coefficients, Intercept: mf.Intercept}, nil
	case ModelRandomForest:
		forest := &RandomForest{Trees: mf.Trees, PositiveClassIndex: -1}
		if mf.PositiveClassIndex != nil {
			forest.PositiveClassIndex = *mf.PositiveClassIndex
		}
		if err := forest.validate(); err != nil {
			return nil, err
		}
		return forest, nil
	default:
		return nil, fmt.Errorf("unsupported model type %q", mf.Type)
	}
}

// LogisticRegression is a binary linear model.
type LogisticRegression struct {
	Coefficients []float64
	Intercept    float64
}

func (m *LogisticRegression) NumFeatures() int {
	return len(m.Coefficients)
}

func (m *LogisticRegression) PositiveProbability(row []float64) (float64, error) {
	if len(row) != len(m.Coefficients) {
		return 0, fmt.Errorf("expected %d features, got %d", len(m.Coefficients), len(row))
	}
	z := m.Intercept
	for i, x := range row {
		z += m.Coefficients[i] * x
	}
	return 1 / (1 + math.Exp(-z)), nil
}

// TreeNode holds one decision tree in the parallel-array layout used by
// scikit-learn. A node is a leaf when ChildrenLeft is -1. Value holds the
// per-class weights of each node.
type TreeNode struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

func (t *TreeNode) classProba(row []float64) ([]float64, error) {
	node := 0
	for t.ChildrenLeft[node] != -1 {
		f := t.Feature[node]
		if f < 0 || f >= len(row) {
			return nil, fmt.Errorf("tree references feature %d outside row of %d", f, len(row))
		}
		if row[f] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}

	weights := t.Value[node]
	var total float64
	for _, w := range weights {
		total += w
	}
	proba := make([]float64, len(weights))
	if total == 0 {
		return proba, nil
	}
	for i, w := range weights {
		proba[i] = w / total
	}
	return proba, nil
}

// RandomForest averages the class probabilities of its trees.
type RandomForest struct {
	Trees []TreeNode
	// PositiveClassIndex selects the delayed class; -1 means the last class.
	PositiveClassIndex int
	features           int
}

func (m *RandomForest) validate() error {
	if len(m.Trees) == 0 {
		return errors.New("random forest model has no trees")
	}
	for i, t := range m.Trees {
		n := len(t.ChildrenLeft)
		if n == 0 || len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
			return fmt.Errorf("tree %d has inconsistent node arrays", i)
		}
		for node := 0; node < n; node++ {
			l, r := t.ChildrenLeft[node], t.ChildrenRight[node]
			if l == -1 {
				continue
			}
			if l <= node || l >= n || r <= node || r >= n {
				return fmt.Errorf("tree %d node %d has invalid children", i, node)
			}
			if t.Feature[node]+1 > m.features {
				m.features = t.Feature[node] + 1
			}
		}
	}
	return nil
}

func (m *RandomForest) NumFeatures() int {
	return m.features
}

func (m *RandomForest) PositiveProbability(row []float64) (float64, error) {
	var sum []float64
	for i := range m.Trees {
		proba, err := m.Trees[i].classProba(row)
		if err != nil {
			return 0, err
		}
		if sum == nil {
			sum = make([]float64, len(proba))
		}
		if len(proba) != len(sum) {
			return 0, fmt.Errorf("tree %d has %d classes, expected %d", i, len(proba), len(sum))
		}
		for c, p := range proba {
			sum[c] += p
		}
	}

	idx := m.PositiveClassIndex
	if idx < 0 {
		idx = len(sum) - 1
	}
	if idx < 0 || idx >= len(sum) {
		return 0, fmt.Errorf("positive class index %d out of range", idx)
	}
	return sum[idx] / float64(len(m.Trees)), nil
}
