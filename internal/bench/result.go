package bench

// LayoutResult holds the measurements for one memory layout.
type LayoutResult struct {
	Layout string

	// Mean wall time of one iteration, in milliseconds.
	PhaseMillis  float64
	EnergyMillis float64

	// Final-iteration kernel values.
	Phase  float64
	Energy float64

	// FootprintBytes is the estimated footprint; AllocatedBytes is what the
	// allocator actually handed out for the population.
	FootprintBytes int
	AllocatedBytes int64
}

// TotalMillis is the sum of both kernel means.
func (r LayoutResult) TotalMillis() float64 {
	return r.PhaseMillis + r.EnergyMillis
}

// Result is the outcome of one Driver run.
type Result struct {
	Config Config
	AoS    LayoutResult
	SoA    LayoutResult
}

// PhaseSpeedup is SoA phase time over AoS phase time.
func (r Result) PhaseSpeedup() float64 {
	return SpeedupRatio(r.SoA.PhaseMillis, r.AoS.PhaseMillis)
}

// EnergySpeedup is SoA energy time over AoS energy time.
func (r Result) EnergySpeedup() float64 {
	return SpeedupRatio(r.SoA.EnergyMillis, r.AoS.EnergyMillis)
}

// TotalDifference is AoS total minus SoA total, in milliseconds. Positive
// means SoA was faster.
func (r Result) TotalDifference() float64 {
	return r.AoS.TotalMillis() - r.SoA.TotalMillis()
}

// SpeedupRatio returns soa/aos, or 0 when aos is not positive.
func SpeedupRatio(soa, aos float64) float64 {
	if aos > 0 {
		return soa / aos
	}
	return 0
}
