// Package sysinfo describes the host CPU so layout results can be read
// against the cache hierarchy they ran on.
package sysinfo

import (
	"fmt"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// CPU contains the detected processor description
type CPU struct {
	Vendor        string
	Brand         string
	PhysicalCores int
	LogicalCores  int
	CacheLine     int
	L1D           int
	L2            int
	L3            int
	HasAVX2       bool
	HasAVX512     bool
	HasNEON       bool
}

// Detect reads the CPU description from cpuid.
func Detect() CPU {
	return CPU{
		Vendor:        cpuid.CPU.VendorString,
		Brand:         cpuid.CPU.BrandName,
		PhysicalCores: cpuid.CPU.PhysicalCores,
		LogicalCores:  cpuid.CPU.LogicalCores,
		CacheLine:     cpuid.CPU.CacheLine,
		L1D:           cpuid.CPU.Cache.L1D,
		L2:            cpuid.CPU.Cache.L2,
		L3:            cpuid.CPU.Cache.L3,
		HasAVX2:       cpuid.CPU.Supports(cpuid.AVX2),
		HasAVX512:     cpuid.CPU.Supports(cpuid.AVX512F),
		HasNEON:       cpuid.CPU.Supports(cpuid.ASIMD),
	}
}

// Features lists the vector extensions present, or "none".
func (c CPU) Features() string {
	var f []string
	if c.HasAVX2 {
		f = append(f, "avx2")
	}
	if c.HasAVX512 {
		f = append(f, "avx512")
	}
	if c.HasNEON {
		f = append(f, "neon")
	}
	if len(f) == 0 {
		return "none"
	}
	return strings.Join(f, ",")
}

// String renders a one-line summary. Unknown cache sizes (cpuid reports -1 or 0)
// are printed as "?".
func (c CPU) String() string {
	brand := c.Brand
	if brand == "" {
		brand = "unknown"
	}
	return fmt.Sprintf("%s (%d cores, cache line %s, L1d %s, L2 %s, L3 %s, simd %s)",
		brand, c.PhysicalCores, size(c.CacheLine), size(c.L1D), size(c.L2), size(c.L3), c.Features())
}

func size(b int) string {
	switch {
	case b <= 0:
		return "?"
	case b >= 1<<20 && b%(1<<20) == 0:
		return fmt.Sprintf("%dMiB", b>>20)
	case b >= 1<<10 && b%(1<<10) == 0:
		return fmt.Sprintf("%dKiB", b>>10)
	default:
		return fmt.Sprintf("%dB", b)
	}
}
