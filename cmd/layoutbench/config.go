package main

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/23skdu/layoutbench/internal/bench"
	lberrors "github.com/23skdu/layoutbench/internal/errors"
	"github.com/23skdu/layoutbench/internal/logging"
)

const envPrefix = "LAYOUTBENCH"

// Config validation errors
var (
	ErrInvalidParticles  = errors.New("particles must not be negative")
	ErrInvalidIterations = errors.New("iterations must be at least 1")
	ErrInvalidLogFormat  = errors.New("log_format must be 'json', 'console' or 'text'")
	ErrInvalidLogLevel   = errors.New("log_level must be debug, info, warn, or error")
)

// Config is the resolved command configuration. Environment variables use
// the LAYOUTBENCH_ prefix; flags override them.
type Config struct {
	Particles  int    `envconfig:"PARTICLES" default:"1000000"`
	Iterations int    `envconfig:"ITERATIONS" default:"1000"`
	Seed       uint64 `envconfig:"SEED" default:"0"`
	LogFormat  string `envconfig:"LOG_FORMAT" default:"console"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	Metrics    bool   `envconfig:"METRICS" default:"false"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	run := bench.DefaultConfig()
	log := logging.DefaultConfig()
	return Config{
		Particles:  run.Particles,
		Iterations: run.Iterations,
		LogFormat:  log.Format,
		LogLevel:   log.Level,
	}
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.Particles < 0 {
		return ErrInvalidParticles
	}
	if cfg.Iterations < 1 {
		return ErrInvalidIterations
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" && cfg.LogFormat != "text" {
		return ErrInvalidLogFormat
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	return nil
}

// Bench returns the immutable driver configuration.
func (c Config) Bench() bench.Config {
	return bench.Config{
		Particles:  c.Particles,
		Iterations: c.Iterations,
	}
}

// loadConfig resolves defaults, an optional dotenv file, the environment and
// finally args. It also reports which of the two counts fell back to their
// defaults because neither a flag nor the environment supplied them.
func loadConfig(args []string, output io.Writer) (Config, []string, error) {
	def := DefaultConfig()

	flags := flag.NewFlagSet("layoutbench", flag.ContinueOnError)
	flags.SetOutput(output)
	particles := flags.Int("n", def.Particles, "number of particles")
	iterations := flags.Int("i", def.Iterations, "number of kernel iterations")
	seed := flags.Uint64("seed", def.Seed, "random seed (0 seeds from the clock)")
	logFormat := flags.String("log-format", def.LogFormat, "log format: json, console or text")
	logLevel := flags.String("log-level", def.LogLevel, "log level: debug, info, warn or error")
	metricsOut := flags.Bool("metrics", def.Metrics, "print Prometheus metrics after the report")
	envFile := flags.String("env-file", ".env", "optional dotenv file (empty to skip)")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Config{}, nil, err
		}
		return Config{}, nil, lberrors.WrapConfigurationError(err, "parse_flags", "invalid command line")
	}

	if err := loadEnvFile(*envFile); err != nil {
		return Config{}, nil, err
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, nil, lberrors.WrapConfigurationError(err, "process_env", "invalid environment")
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["n"] {
		cfg.Particles = *particles
	}
	if set["i"] {
		cfg.Iterations = *iterations
	}
	if set["seed"] {
		cfg.Seed = *seed
	}
	if set["log-format"] {
		cfg.LogFormat = *logFormat
	}
	if set["log-level"] {
		cfg.LogLevel = *logLevel
	}
	if set["metrics"] {
		cfg.Metrics = *metricsOut
	}

	var defaulted []string
	if !set["n"] && !envSet("PARTICLES") {
		defaulted = append(defaulted, "particles")
	}
	if !set["i"] && !envSet("ITERATIONS") {
		defaulted = append(defaulted, "iterations")
	}

	if err := ValidateConfig(&cfg); err != nil {
		return Config{}, nil, lberrors.WrapValidationError(err, "validate", "rejected configuration").
			WithContext("particles", cfg.Particles).
			WithContext("iterations", cfg.Iterations)
	}
	return cfg, defaulted, nil
}

// loadEnvFile loads path into the environment without overriding variables
// already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return lberrors.WrapEnvironmentError(err, "load_env", "cannot load "+path)
	}
	return nil
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(envPrefix + "_" + key)
	return ok
}
