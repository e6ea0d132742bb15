package bench

// Default sizes used when the caller supplies none.
const (
	DefaultParticles  = 1_000_000
	DefaultIterations = 1_000
)

// Config is the immutable run configuration handed to a Driver.
type Config struct {
	Particles  int
	Iterations int
}

// DefaultConfig returns the default particle and iteration counts.
func DefaultConfig() Config {
	return Config{
		Particles:  DefaultParticles,
		Iterations: DefaultIterations,
	}
}
