package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsInitialization(t *testing.T) {
	assert.NotNil(t, KernelMeanSeconds)
	assert.NotNil(t, KernelResult)
	assert.NotNil(t, KernelRunsTotal)
	assert.NotNil(t, PopulationBytes)
	assert.NotNil(t, AllocatorBytesAllocatedTotal)
	assert.NotNil(t, AllocatorBytesFreedTotal)
	assert.NotNil(t, LogEntriesTotal)
}

func TestKernelGaugesAreLabelled(t *testing.T) {
	KernelMeanSeconds.WithLabelValues("AoS", KernelPhase).Set(0.25)
	KernelResult.WithLabelValues("SoA", KernelEnergy).Set(16)

	assert.InDelta(t, 0.25, testutil.ToFloat64(KernelMeanSeconds.WithLabelValues("AoS", KernelPhase)), 1e-12)
	assert.InDelta(t, 16.0, testutil.ToFloat64(KernelResult.WithLabelValues("SoA", KernelEnergy)), 1e-12)
}

func TestCollectorsRegistered(t *testing.T) {
	KernelRunsTotal.WithLabelValues("AoS", KernelPhase).Inc()
	PopulationBytes.WithLabelValues("AoS", FootprintEstimated).Set(56)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["layoutbench_kernel_runs_total"])
	assert.True(t, names["layoutbench_population_bytes"])
}
