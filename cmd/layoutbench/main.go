// Command layoutbench compares Array-of-Structures and Structure-of-Arrays
// particle layouts on a phase and a kinetic-energy kernel.
//
// Usage:
//
//	go run ./cmd/layoutbench --n 1000000 --i 1000
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/23skdu/layoutbench/internal/bench"
	"github.com/23skdu/layoutbench/internal/logging"
	"github.com/23skdu/layoutbench/internal/random"
	"github.com/23skdu/layoutbench/internal/report"
	"github.com/23skdu/layoutbench/internal/sysinfo"
	"github.com/23skdu/layoutbench/internal/timing"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, defaulted, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "layoutbench: %v\n", err)
		return 2
	}

	logCfg := logging.DefaultConfig()
	logCfg.Format = cfg.LogFormat
	logCfg.Level = cfg.LogLevel
	logCfg.Output = stderr
	logger, err := logging.NewLogger(logCfg)
	if err != nil {
		fmt.Fprintf(stderr, "layoutbench: %v\n", err)
		return 1
	}

	if len(defaulted) > 0 {
		// The notice is emitted whatever the configured level.
		noticeLogger := logger.Level(zerolog.WarnLevel)
		noticeLogger.Warn().
			Strs("defaulted", defaulted).
			Int("particles", cfg.Particles).
			Int("iterations", cfg.Iterations).
			Msg("None of the arguments were provided. Using default values.")
	}

	src := random.NewPCG(cfg.Seed)
	logger.Info().
		Str("cpu", sysinfo.Detect().String()).
		Str("arch", runtime.GOOS+"/"+runtime.GOARCH).
		Uint64("seed", src.Seed()).
		Msg("starting layout benchmark")

	driver := bench.NewDriver(cfg.Bench(), src, timing.Wall{}, bench.WithLogger(logger))
	if err := report.WriteHeader(stdout, driver.Config()); err != nil {
		logger.Error().Err(err).Msg("failed to write report")
		return 1
	}

	res := driver.Run()

	if err := report.WriteSummary(stdout, res); err != nil {
		logger.Error().Err(err).Msg("failed to write report")
		return 1
	}

	if cfg.Metrics {
		if err := report.WriteMetrics(stdout, prometheus.DefaultGatherer); err != nil {
			logger.Error().Err(err).Msg("failed to write metrics")
			return 1
		}
	}
	return 0
}
