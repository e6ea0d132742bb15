// Package bench runs the AoS vs SoA comparison: it builds both populations,
// times the phase and energy kernels over each, and collects the results.
package bench

import (
	"time"

	arrowmem "github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/rs/zerolog"

	"github.com/23skdu/layoutbench/internal/kernel"
	"github.com/23skdu/layoutbench/internal/logging"
	"github.com/23skdu/layoutbench/internal/memory"
	"github.com/23skdu/layoutbench/internal/metrics"
	"github.com/23skdu/layoutbench/internal/particle"
	"github.com/23skdu/layoutbench/internal/random"
	"github.com/23skdu/layoutbench/internal/timing"
)

// Driver owns both populations for the duration of a run. It is not safe for
// concurrent use; runs are strictly sequential.
type Driver struct {
	cfg    Config
	src    random.Source
	timer  timing.Timer
	mem    arrowmem.Allocator
	logger zerolog.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the driver logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

// WithAllocator sets the allocator populations are carved from.
func WithAllocator(mem arrowmem.Allocator) Option {
	return func(d *Driver) { d.mem = mem }
}

// NewDriver returns a Driver for cfg drawing attributes from src and timing
// kernels with timer.
func NewDriver(cfg Config, src random.Source, timer timing.Timer, opts ...Option) *Driver {
	d := &Driver{
		cfg:    cfg,
		src:    src,
		timer:  timer,
		mem:    arrowmem.DefaultAllocator,
		logger: logging.DiscardLogger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Config returns the run configuration the driver was built with.
func (d *Driver) Config() Config {
	return d.cfg
}

// Run initializes both populations and times the four kernels in the order
// AoS phase, AoS energy, SoA phase, SoA energy.
func (d *Driver) Run() Result {
	n := d.cfg.Particles

	aosMem := memory.NewTrackingAllocator(d.mem)
	aos := particle.NewAoS(aosMem, n)
	defer aos.Release()

	soaMem := memory.NewTrackingAllocator(d.mem)
	soa := particle.NewSoA(soaMem, n)
	defer soa.Release()

	start := time.Now()
	particle.Initialize(aos, d.src)
	particle.Initialize(soa, d.src)
	d.logger.Debug().
		Int("particles", n).
		Dur("elapsed", time.Since(start)).
		Msg("populations initialized")

	res := Result{Config: d.cfg}
	res.AoS = measure(d, aos, aosMem.Live())
	res.SoA = measure(d, soa, soaMem.Live())
	return res
}

func measure[L particle.Layout](d *Driver, l L, allocated int64) LayoutResult {
	k := d.cfg.Iterations
	r := LayoutResult{
		Layout:         l.Name(),
		FootprintBytes: l.Footprint(),
		AllocatedBytes: allocated,
	}

	phaseElapsed := d.timer.Time(func() { r.Phase = kernel.Phase(l, k) })
	r.PhaseMillis = meanMillis(phaseElapsed, k)
	d.record(r.Layout, metrics.KernelPhase, r.PhaseMillis, r.Phase)

	energyElapsed := d.timer.Time(func() { r.Energy = kernel.Energy(l, k) })
	r.EnergyMillis = meanMillis(energyElapsed, k)
	d.record(r.Layout, metrics.KernelEnergy, r.EnergyMillis, r.Energy)

	metrics.PopulationBytes.WithLabelValues(r.Layout, metrics.FootprintEstimated).Set(float64(r.FootprintBytes))
	metrics.PopulationBytes.WithLabelValues(r.Layout, metrics.FootprintAllocated).Set(float64(r.AllocatedBytes))

	d.logger.Info().
		Str("layout", r.Layout).
		Float64("phase_ms", r.PhaseMillis).
		Float64("energy_ms", r.EnergyMillis).
		Int("footprint_bytes", r.FootprintBytes).
		Int64("allocated_bytes", r.AllocatedBytes).
		Msg("layout measured")
	return r
}

func (d *Driver) record(layout, kernelName string, millis, value float64) {
	metrics.KernelRunsTotal.WithLabelValues(layout, kernelName).Inc()
	metrics.KernelMeanSeconds.WithLabelValues(layout, kernelName).Set(millis / 1000)
	metrics.KernelResult.WithLabelValues(layout, kernelName).Set(value)
	d.logger.Debug().
		Str("layout", layout).
		Str("kernel", kernelName).
		Float64("mean_ms", millis).
		Float64("value", value).
		Msg("kernel finished")
}

// meanMillis is elapsed / iterations in milliseconds, 0 for no iterations.
func meanMillis(elapsed time.Duration, iterations int) float64 {
	if iterations <= 0 {
		return 0
	}
	return timing.Millis(elapsed) / float64(iterations)
}
