package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestIncrementTaskDelayPrediction(t *testing.T) {
	before := testutil.ToFloat64(TaskDelayPredictions.WithLabelValues("Atrasada"))

	IncrementTaskDelayPrediction("Atrasada")
	IncrementTaskDelayPrediction("Atrasada")

	assert.Equal(t, before+2, testutil.ToFloat64(TaskDelayPredictions.WithLabelValues("Atrasada")))
}

func TestRecordDBQueryDuration(t *testing.T) {
	RecordDBQueryDuration("select", "projetos", 3*time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(DBQueryDuration))
}
