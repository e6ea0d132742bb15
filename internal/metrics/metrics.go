package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values shared by the driver and the report.
const (
	KernelPhase  = "phase"
	KernelEnergy = "energy"

	FootprintEstimated = "estimated"
	FootprintAllocated = "allocated"
)

var (
	// KernelMeanSeconds is the mean wall time of one kernel iteration
	KernelMeanSeconds = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "layoutbench_kernel_mean_seconds",
			Help: "Mean wall time of a single kernel iteration",
		},
		[]string{"layout", "kernel"},
	)

	// KernelResult is the scalar returned by the final kernel iteration
	KernelResult = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "layoutbench_kernel_result",
			Help: "Scalar aggregate returned by the final kernel iteration",
		},
		[]string{"layout", "kernel"},
	)

	// KernelRunsTotal counts timed kernel invocations
	KernelRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "layoutbench_kernel_runs_total",
			Help: "Total number of timed kernel invocations",
		},
		[]string{"layout", "kernel"},
	)

	// PopulationBytes tracks population size by layout and accounting kind
	PopulationBytes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "layoutbench_population_bytes",
			Help: "Population memory footprint by layout (estimated or allocated)",
		},
		[]string{"layout", "kind"},
	)

	// AllocatorBytesAllocatedTotal counts bytes handed out by tracking allocators
	AllocatorBytesAllocatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "layoutbench_allocator_bytes_allocated_total",
			Help: "Total bytes allocated for particle populations",
		},
	)

	// AllocatorBytesFreedTotal counts bytes returned to tracking allocators
	AllocatorBytesFreedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "layoutbench_allocator_bytes_freed_total",
			Help: "Total bytes released by particle populations",
		},
	)

	// LogEntriesTotal counts log entries by level
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "layoutbench_log_entries_total",
			Help: "Total number of log entries by level",
		},
		[]string{"level"},
	)
)
