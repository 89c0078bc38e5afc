package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTime(t *testing.T) {
	before := testutil.ToFloat64(QueriesTotal.WithLabelValues(OpTopCO2))

	ran := false
	elapsed := Time(OpTopCO2, func() { ran = true })

	assert.True(t, ran)
	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))
	assert.Equal(t, before+1, testutil.ToFloat64(QueriesTotal.WithLabelValues(OpTopCO2)))
}

func TestObserveLoad(t *testing.T) {
	ObserveLoad(120, 3)

	assert.Equal(t, 120.0, testutil.ToFloat64(RecordsLoaded))
	assert.Equal(t, 3.0, testutil.ToFloat64(RowsRejected))
}
