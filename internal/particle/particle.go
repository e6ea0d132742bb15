// Package particle holds the two population layouts compared by the
// benchmark: an array of Particle records (AoS) and seven parallel columns
// (SoA). Both are allocated through an arrow memory.Allocator and are
// read-only once initialized.
package particle

import (
	"github.com/23skdu/layoutbench/internal/random"
)

// Layout names as they appear in reports and metric labels.
const (
	NameAoS = "AoS"
	NameSoA = "SoA"
)

// Attribute ranges drawn by Initialize.
const (
	PositionMin = -10
	PositionMax = 10
	MomentumMin = -5
	MomentumMax = 5
)

// Particle is one AoS record. Spin is always -1 or +1.
type Particle struct {
	PosX, PosY, PosZ float64
	MomX, MomY, MomZ float64
	Spin             int32
}

// Layout exposes attributes by particle index. Accessor calls through a
// generic Layout go via the instantiation dictionary and are not inlined, so
// timed kernels use AoS.Records and SoA.Columns instead.
type Layout interface {
	Len() int
	Position(i int) (x, y, z float64)
	Momentum(i int) (x, y, z float64)
	Spin(i int) int32
	Set(i int, p Particle)
	Name() string
	Footprint() int
}

// Initialize fills every particle of l with values drawn from src, in index
// order, seven draws per particle.
func Initialize[L Layout](l L, src random.Source) {
	n := l.Len()
	for i := 0; i < n; i++ {
		l.Set(i, Draw(src))
	}
}

// Draw builds one particle. The draw order is position x, y, z, momentum
// x, y, z, then spin, regardless of the destination layout.
func Draw(src random.Source) Particle {
	var p Particle
	p.PosX = float64(src.IntRange(PositionMin, PositionMax))
	p.PosY = float64(src.IntRange(PositionMin, PositionMax))
	p.PosZ = float64(src.IntRange(PositionMin, PositionMax))
	p.MomX = float64(src.IntRange(MomentumMin, MomentumMax))
	p.MomY = float64(src.IntRange(MomentumMin, MomentumMax))
	p.MomZ = float64(src.IntRange(MomentumMin, MomentumMax))
	p.Spin = spinFromBit(src.IntRange(0, 1))
	return p
}

func spinFromBit(bit int) int32 {
	if bit == 0 {
		return -1
	}
	return 1
}

// Load copies records into l. len(records) must equal l.Len().
func Load[L Layout](l L, records []Particle) {
	for i := range records {
		l.Set(i, records[i])
	}
}
