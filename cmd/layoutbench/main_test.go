package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun_SmallPopulation(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"--n", "64", "--i", "3", "--seed", "5", "--env-file="}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{
		"Simulating 64 particles over 3 iterations\n",
		"Results Summary:",
		"\nAoS  ",
		"\nSoA  ",
		"Relative Differences (SoA / AoS):",
		"Phase Time Speedup:",
		"Energy Time Speedup:",
		"AoS Memory:",
		"SoA Memory:",
		"Total Time Difference (AoS - SoA):",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(stderr.String(), "Using default values") {
		t.Errorf("unexpected defaults notice: %s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "starting layout benchmark") {
		t.Errorf("stderr missing start log: %s", stderr.String())
	}
}

func TestRun_DefaultsNotice(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-n", "8", "-env-file=", "-log-format", "json"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "None of the arguments were provided. Using default values.") {
		t.Errorf("expected defaults notice, got: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "Simulating 8 particles over 1000 iterations") {
		t.Errorf("unexpected header: %s", stdout.String())
	}
}

func TestRun_DefaultsNoticeSurvivesErrorLevel(t *testing.T) {
	for _, tt := range []struct {
		name string
		args []string
		env  string
	}{
		{"flag", []string{"-n", "8", "-log-level", "error", "-env-file="}, ""},
		{"environment", []string{"-env-file="}, "error"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			if tt.env != "" {
				t.Setenv("LAYOUTBENCH_LOG_LEVEL", tt.env)
				t.Setenv("LAYOUTBENCH_PARTICLES", "8")
			}
			var stdout, stderr bytes.Buffer

			if code := run(tt.args, &stdout, &stderr); code != 0 {
				t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
			}
			if !strings.Contains(stderr.String(), "None of the arguments were provided. Using default values.") {
				t.Errorf("expected defaults notice at error level, got: %s", stderr.String())
			}
			if strings.Contains(stderr.String(), "starting layout benchmark") {
				t.Errorf("info line not filtered: %s", stderr.String())
			}
		})
	}
}

func TestRun_Metrics(t *testing.T) {
	clearEnv(t)
	var stdout, stderr bytes.Buffer

	code := run([]string{"-n", "4", "-i", "1", "-metrics", "-env-file="}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "layoutbench_kernel_mean_seconds") {
		t.Errorf("expected metrics exposition, got:\n%s", out)
	}
	if !strings.Contains(out, `layoutbench_population_bytes{kind="estimated",layout="SoA"}`) {
		t.Errorf("expected population bytes, got:\n%s", out)
	}
}

func TestRun_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"malformed particle count", []string{"--n", "lots"}, 2},
		{"zero iterations", []string{"--i", "0"}, 2},
		{"help", []string{"-h"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			var stdout, stderr bytes.Buffer
			if code := run(append(tt.args, "-env-file="), &stdout, &stderr); code != tt.want {
				t.Errorf("run() = %d, want %d (stderr: %s)", code, tt.want, stderr.String())
			}
			if stdout.Len() != 0 {
				t.Errorf("expected no report, got: %s", stdout.String())
			}
		})
	}
}
