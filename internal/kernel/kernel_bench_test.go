package kernel

import (
	"testing"

	"github.com/23skdu/layoutbench/internal/particle"
	"github.com/23skdu/layoutbench/internal/random"
)

const benchParticles = 100_000

var sink float64

func benchPopulations(b *testing.B) (particle.AoS, particle.SoA) {
	b.Helper()
	src := random.NewPCG(1)
	aos := particle.NewAoS(nil, benchParticles)
	soa := particle.NewSoA(nil, benchParticles)
	b.Cleanup(func() {
		aos.Release()
		soa.Release()
	})
	particle.Initialize(aos, src)
	particle.Initialize(soa, src)
	return aos, soa
}

func BenchmarkPhase_AoS(b *testing.B) {
	aos, _ := benchPopulations(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sink = Phase(aos, 1)
	}
}

func BenchmarkPhase_SoA(b *testing.B) {
	_, soa := benchPopulations(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sink = Phase(soa, 1)
	}
}

func BenchmarkEnergy_AoS(b *testing.B) {
	aos, _ := benchPopulations(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sink = Energy(aos, 1)
	}
}

func BenchmarkEnergy_SoA(b *testing.B) {
	_, soa := benchPopulations(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sink = Energy(soa, 1)
	}
}

// The accessor-based algorithm, for comparison with the direct loops above.

func BenchmarkPhaseLayout_AoS(b *testing.B) {
	aos, _ := benchPopulations(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sink = phaseLayout(aos, 1)
	}
}

func BenchmarkPhaseLayout_SoA(b *testing.B) {
	_, soa := benchPopulations(b)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		sink = phaseLayout(soa, 1)
	}
}

// BenchmarkPhase_Baseline runs an inline loop over a Go-allocated slice,
// outside the arrow allocator and the kernel package's dispatch.
func BenchmarkPhase_Baseline(b *testing.B) {
	src := random.NewPCG(1)
	records := make([]particle.Particle, benchParticles)
	for i := range records {
		records[i] = particle.Draw(src)
	}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		var total float64
		for i := range records {
			p := &records[i]
			total += (p.PosX*p.MomX + p.PosY*p.MomY + p.PosZ*p.MomZ) * float64(p.Spin)
		}
		sink = total
	}
}
