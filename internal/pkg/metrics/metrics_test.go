package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActionMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewActionMetrics(reg)
	require.NoError(t, err)

	m.Executions.WithLabelValues("getBalanceSingle", "bsc", OutcomeSuccess).Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Executions.WithLabelValues("getBalanceSingle", "bsc", OutcomeSuccess)))

	_, err = NewActionMetrics(reg)
	assert.Error(t, err, "registering twice must fail")
}
