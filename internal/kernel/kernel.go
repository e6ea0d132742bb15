// Package kernel computes the phase and kinetic-energy aggregates over a
// particle population.
//
// Phase and Energy dispatch AoS and SoA populations to hand-written loops
// that index the backing record slice or columns directly, so timings
// reflect the memory access pattern rather than accessor call overhead.
// Every loop, including the generic fallback used for other Layout
// implementations, builds each term with the same helper and sums in index
// order, so all paths return bit-identical results on identical data.
package kernel

import "github.com/23skdu/layoutbench/internal/particle"

// Phase sums (position · momentum) × spin over all particles in index order.
// The sum is recomputed from zero on every one of the iterations and the
// final iteration's value is returned; zero iterations return 0.
func Phase[L particle.Layout](l L, iterations int) float64 {
	switch v := any(l).(type) {
	case particle.AoS:
		return phaseAoS(v.Records(), iterations)
	case *particle.AoS:
		return phaseAoS(v.Records(), iterations)
	case particle.SoA:
		return phaseSoA(v.Columns(), iterations)
	case *particle.SoA:
		return phaseSoA(v.Columns(), iterations)
	}
	return phaseLayout(l, iterations)
}

// Energy sums |momentum|² / 2 (unit mass) over all particles in index order,
// with the same per-iteration reset as Phase.
func Energy[L particle.Layout](l L, iterations int) float64 {
	switch v := any(l).(type) {
	case particle.AoS:
		return energyAoS(v.Records(), iterations)
	case *particle.AoS:
		return energyAoS(v.Records(), iterations)
	case particle.SoA:
		return energySoA(v.Columns(), iterations)
	case *particle.SoA:
		return energySoA(v.Columns(), iterations)
	}
	return energyLayout(l, iterations)
}

func phaseTerm(px, py, pz, mx, my, mz float64, spin int32) float64 {
	return (px*mx + py*my + pz*mz) * float64(spin)
}

func energyTerm(mx, my, mz float64) float64 {
	return (mx*mx + my*my + mz*mz) / 2
}

func phaseAoS(records []particle.Particle, iterations int) float64 {
	var total float64
	for iter := 0; iter < iterations; iter++ {
		total = 0
		for i := range records {
			p := &records[i]
			total += phaseTerm(p.PosX, p.PosY, p.PosZ, p.MomX, p.MomY, p.MomZ, p.Spin)
		}
	}
	return total
}

func phaseSoA(c particle.Columns, iterations int) float64 {
	n := len(c.Spin)
	px, py, pz := c.PosX[:n], c.PosY[:n], c.PosZ[:n]
	mx, my, mz := c.MomX[:n], c.MomY[:n], c.MomZ[:n]
	spin := c.Spin[:n]

	var total float64
	for iter := 0; iter < iterations; iter++ {
		total = 0
		for i := range spin {
			total += phaseTerm(px[i], py[i], pz[i], mx[i], my[i], mz[i], spin[i])
		}
	}
	return total
}

func energyAoS(records []particle.Particle, iterations int) float64 {
	var total float64
	for iter := 0; iter < iterations; iter++ {
		total = 0
		for i := range records {
			p := &records[i]
			total += energyTerm(p.MomX, p.MomY, p.MomZ)
		}
	}
	return total
}

func energySoA(c particle.Columns, iterations int) float64 {
	n := len(c.Spin)
	mx, my, mz := c.MomX[:n], c.MomY[:n], c.MomZ[:n]

	var total float64
	for iter := 0; iter < iterations; iter++ {
		total = 0
		for i := range mx {
			total += energyTerm(mx[i], my[i], mz[i])
		}
	}
	return total
}

// phaseLayout is the layout-independent algorithm. It reads attributes
// through the Layout accessors and is the reference the concrete loops must
// match.
func phaseLayout[L particle.Layout](l L, iterations int) float64 {
	n := l.Len()
	var total float64
	for iter := 0; iter < iterations; iter++ {
		total = 0
		for i := 0; i < n; i++ {
			px, py, pz := l.Position(i)
			mx, my, mz := l.Momentum(i)
			total += phaseTerm(px, py, pz, mx, my, mz, l.Spin(i))
		}
	}
	return total
}

func energyLayout[L particle.Layout](l L, iterations int) float64 {
	n := l.Len()
	var total float64
	for iter := 0; iter < iterations; iter++ {
		total = 0
		for i := 0; i < n; i++ {
			mx, my, mz := l.Momentum(i)
			total += energyTerm(mx, my, mz)
		}
	}
	return total
}
