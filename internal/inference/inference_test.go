package inference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func days(v float64) *float64 {
	return &v
}

func TestOneHotAligner_Align(t *testing.T) {
	columns := []string{"DuracaoPrevista", "Categoria_A", "Categoria_B"}

	row, dropped := OneHotAligner{}.Align(TaskRiskInput{DuracaoPrevista: days(5), Categoria: "A"}, columns)

	assert.Equal(t, []float64{5, 1, 0}, row)
	assert.Empty(t, dropped)
}

func TestOneHotAligner_UnknownCategoryIsAllZero(t *testing.T) {
	columns := []string{"DuracaoPrevista", "Categoria_A", "Categoria_B"}

	row, dropped := OneHotAligner{}.Align(TaskRiskInput{DuracaoPrevista: days(3), Categoria: "C", Status: "Ativa"}, columns)

	// An unseen category is indistinguishable from "not A and not B".
	assert.Equal(t, []float64{3, 0, 0}, row)
	assert.ElementsMatch(t, []string{"Categoria_C", "Status_Ativa"}, dropped)
}

func TestOneHotAligner_ZeroDuration(t *testing.T) {
	columns := []string{"DuracaoPrevista", "Categoria_A"}

	row, _ := OneHotAligner{}.Align(TaskRiskInput{DuracaoPrevista: days(0), Categoria: "A"}, columns)
	assert.Equal(t, []float64{0, 1}, row)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, LabelOnTime, Label(0.5))
	assert.Equal(t, LabelOnTime, Label(0.1))
	assert.Equal(t, LabelDelayed, Label(0.500001))
	assert.Equal(t, LabelDelayed, Label(1))
}

func TestLogisticRegression_PositiveProbability(t *testing.T) {
	m := &LogisticRegression{Coefficients: []float64{0, 0, 0}, Intercept: 0}

	p, err := m.PositiveProbability([]float64{5, 1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12)

	_, err = m.PositiveProbability([]float64{1})
	assert.Error(t, err)
}

func TestRandomForest_PositiveProbability(t *testing.T) {
	// Splits on feature 0 at 10: short tasks lean on time, long ones delayed.
	tree := TreeNode{
		ChildrenLeft:  []int{1, -1, -1},
		ChildrenRight: []int{2, -1, -1},
		Feature:       []int{0, -2, -2},
		Threshold:     []float64{10, -2, -2},
		Value:         [][]float64{{5, 5}, {4, 1}, {1, 3}},
	}
	stump := TreeNode{
		ChildrenLeft:  []int{-1},
		ChildrenRight: []int{-1},
		Feature:       []int{-2},
		Threshold:     []float64{-2},
		Value:         [][]float64{{1, 1}},
	}
	forest := &RandomForest{Trees: []TreeNode{tree, stump}, PositiveClassIndex: -1}
	require.NoError(t, forest.validate())
	assert.Equal(t, 1, forest.NumFeatures())

	p, err := forest.PositiveProbability([]float64{10})
	require.NoError(t, err)
	assert.InDelta(t, (0.2+0.5)/2, p, 1e-12)

	p, err = forest.PositiveProbability([]float64{11})
	require.NoError(t, err)
	assert.InDelta(t, (0.75+0.5)/2, p, 1e-12)

	forest.PositiveClassIndex = 0
	p, err = forest.PositiveProbability([]float64{11})
	require.NoError(t, err)
	assert.InDelta(t, (0.25+0.5)/2, p, 1e-12)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, dir, "modelo_atraso.json",
		`{"type":"logistic_regression","coefficients":[0.5,2,-2],"intercept":-3}`)
	columnsPath := writeFile(t, dir, "colunas_modelo.json",
		`["DuracaoPrevista","Categoria_A","Categoria_B"]`)

	p, err := Load(modelPath, columnsPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"DuracaoPrevista", "Categoria_A", "Categoria_B"}, p.Columns())

	// z = -3 + 0.5*2 + 2*1 = 0
	pred, err := p.Predict(TaskRiskInput{DuracaoPrevista: days(2), Categoria: "A"})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pred.Probability, 1e-12)
	assert.Equal(t, LabelOnTime, pred.Label)

	pred, err = p.Predict(TaskRiskInput{DuracaoPrevista: days(10), Categoria: "A"})
	require.NoError(t, err)
	assert.Equal(t, LabelDelayed, pred.Label)
}

func TestLoad_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	columnsPath := writeFile(t, dir, "colunas_modelo.json", `["DuracaoPrevista"]`)

	_, err := Load(filepath.Join(dir, "missing.json"), columnsPath)
	assert.Error(t, err)

	modelPath := writeFile(t, dir, "modelo_atraso.json",
		`{"type":"logistic_regression","coefficients":[1],"intercept":0}`)
	_, err = Load(modelPath, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestLoad_RejectsBadModels(t *testing.T) {
	dir := t.TempDir()
	columnsPath := writeFile(t, dir, "colunas_modelo.json", `["DuracaoPrevista","Categoria_A"]`)

	cases := map[string]string{
		"unknown type":        `{"type":"svm"}`,
		"no coefficients":     `{"type":"logistic_regression","coefficients":[]}`,
		"feature mismatch":    `{"type":"logistic_regression","coefficients":[1,2,3]}`,
		"empty forest":        `{"type":"random_forest","trees":[]}`,
		"inconsistent arrays": `{"type":"random_forest","trees":[{"children_left":[-1],"children_right":[],"feature":[-2],"threshold":[-2],"value":[[1,1]]}]}`,
		"not json":            `pickle`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			modelPath := writeFile(t, t.TempDir(), "model.json", body)
			_, err := Load(modelPath, columnsPath)
			assert.Error(t, err)
		})
	}
}

func TestLoadColumns_RejectsDuplicates(t *testing.T) {
	path := writeFile(t, t.TempDir(), "cols.json", `["A","A"]`)
	_, err := LoadColumns(path)
	assert.Error(t, err)
}
