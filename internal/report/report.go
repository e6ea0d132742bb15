// Package report renders a benchmark Result as the human-readable summary
// printed on stdout.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/23skdu/layoutbench/internal/bench"
	"github.com/23skdu/layoutbench/internal/particle"
)

const (
	layoutWidth = 10
	columnWidth = 20
	ruleWidth   = 125

	metricPrefix = "layoutbench_"
)

// WriteHeader writes the one-line run description.
func WriteHeader(w io.Writer, cfg bench.Config) error {
	_, err := fmt.Fprintf(w, "Simulating %d particles over %d iterations\n", cfg.Particles, cfg.Iterations)
	return err
}

// WriteSummary writes the results table followed by the relative
// differences, memory comparison and total time difference blocks.
func WriteSummary(w io.Writer, res bench.Result) error {
	var b strings.Builder

	b.WriteString("\nResults Summary:\n")
	fmt.Fprintf(&b, "%-*s%-*s%-*s%-*s%-*s%s\n",
		layoutWidth, "Layout",
		columnWidth, "Phase Time (ms)",
		columnWidth, "Energy Time (ms)",
		columnWidth, "Total Phase",
		columnWidth, "Total Energy",
		"Memory Usage (MB)")
	b.WriteString(strings.Repeat("-", ruleWidth))
	b.WriteByte('\n')
	writeRow(&b, res.AoS)
	writeRow(&b, res.SoA)

	b.WriteString("\nRelative Differences (SoA / AoS):\n")
	fmt.Fprintf(&b, "Phase Time Speedup: %.2fx\n", res.PhaseSpeedup())
	fmt.Fprintf(&b, "Energy Time Speedup: %.2fx\n", res.EnergySpeedup())

	b.WriteString("\nTotal Memory Usage Comparison:\n")
	fmt.Fprintf(&b, "AoS Memory: %.2f MB\n", particle.MiB(res.AoS.FootprintBytes))
	fmt.Fprintf(&b, "SoA Memory: %.2f MB\n", particle.MiB(res.SoA.FootprintBytes))

	fmt.Fprintf(&b, "\nTotal Time Difference (AoS - SoA): %.2f ms\n", res.TotalDifference())

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, r bench.LayoutResult) {
	fmt.Fprintf(b, "%-*s%-*.2f%-*.2f%-*.2f%-*.2f%.2f\n",
		layoutWidth, r.Layout,
		columnWidth, r.PhaseMillis,
		columnWidth, r.EnergyMillis,
		columnWidth, r.Phase,
		columnWidth, r.Energy,
		particle.MiB(r.FootprintBytes))
}

// WriteMetrics writes the layoutbench collectors from g in the Prometheus
// text exposition format.
func WriteMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), metricPrefix) {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
