package inference

import (
	"encoding/json"
	"fmt"
	"os"
)

// FeatureAligner turns one input record into a row ordered like the columns
// the model was trained on.
type FeatureAligner interface {
	Align(in TaskRiskInput, columns []string) (row []float64, dropped []string)
}

// OneHotAligner expands the record on its own: numeric fields keep their
// name and each categorical field becomes a "<field>_<value>" indicator set
// to 1. Expected columns absent from the expansion are 0 and expanded
// columns the model does not know are dropped.
//
// Encoding one row in isolation cannot tell an unseen category apart from a
// known one that is simply not set, so both come out as all-zero indicators.
type OneHotAligner struct{}

func (OneHotAligner) Align(in TaskRiskInput, columns []string) ([]float64, []string) {
	expanded := in.expand()

	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}

	row := make([]float64, len(columns))
	var dropped []string
	for _, f := range expanded {
		i, ok := index[f.name]
		if !ok {
			dropped = append(dropped, f.name)
			continue
		}
		row[i] = f.value
	}
	return row, dropped
}

type feature struct {
	name  string
	value float64
}

func (in TaskRiskInput) expand() []feature {
	var duration float64
	if in.DuracaoPrevista != nil {
		duration = *in.DuracaoPrevista
	}
	features := []feature{{name: "DuracaoPrevista", value: duration}}
	features = append(features, oneHot("Categoria", in.Categoria)...)
	if in.Status != "" {
		features = append(features, oneHot("Status", in.Status)...)
	}
	return features
}

func oneHot(field, value string) []feature {
	return []feature{{name: field + "_" + value, value: 1}}
}

// LoadColumns reads the ordered list of feature names the model expects.
func LoadColumns(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns file: %w", err)
	}

	var columns []string
	if err := json.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("failed to decode columns file: %w", err)
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("columns file %s is empty", path)
	}

	seen := make(map[string]struct{}, len(columns))
	for i, c := range columns {
		if _, ok := seen[c]; ok {
			return nil, fmt.Errorf("duplicate column %q at position %d", c, i)
		}
		seen[c] = struct{}{}
	}
	return columns, nil
}
