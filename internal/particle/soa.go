package particle

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// SoA stores each attribute in its own column. Columns are only created
// together by NewSoA, so all seven always have the same length.
type SoA struct {
	posX, posY, posZ []float64
	momX, momY, momZ []float64
	spin             []int32

	bufs [SequenceCount][]byte
	mem  memory.Allocator
}

// NewSoA allocates seven columns of length n from mem
// (memory.DefaultAllocator if nil).
func NewSoA(mem memory.Allocator, n int) SoA {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	s := SoA{mem: mem}
	if n == 0 {
		return s
	}

	next := 0
	float64Column := func() []float64 {
		s.bufs[next] = mem.Allocate(n * arrow.Float64SizeBytes)
		col := arrow.Float64Traits.CastFromBytes(s.bufs[next])
		next++
		return col
	}

	s.posX = float64Column()
	s.posY = float64Column()
	s.posZ = float64Column()
	s.momX = float64Column()
	s.momY = float64Column()
	s.momZ = float64Column()

	s.bufs[next] = mem.Allocate(n * arrow.Int32SizeBytes)
	s.spin = arrow.Int32Traits.CastFromBytes(s.bufs[next])
	return s
}

func (s SoA) Len() int { return len(s.spin) }

func (s SoA) Position(i int) (x, y, z float64) {
	return s.posX[i], s.posY[i], s.posZ[i]
}

func (s SoA) Momentum(i int) (x, y, z float64) {
	return s.momX[i], s.momY[i], s.momZ[i]
}

func (s SoA) Spin(i int) int32 { return s.spin[i] }

func (s SoA) Set(i int, p Particle) {
	s.posX[i], s.posY[i], s.posZ[i] = p.PosX, p.PosY, p.PosZ
	s.momX[i], s.momY[i], s.momZ[i] = p.MomX, p.MomY, p.MomZ
	s.spin[i] = p.Spin
}

// Columns are the seven attribute slices of a SoA, all of the same length.
type Columns struct {
	PosX, PosY, PosZ []float64
	MomX, MomY, MomZ []float64
	Spin             []int32
}

// Columns returns the backing columns. Kernels range over them directly;
// callers must not retain them past Release.
func (s SoA) Columns() Columns {
	return Columns{
		PosX: s.posX, PosY: s.posY, PosZ: s.posZ,
		MomX: s.momX, MomY: s.momY, MomZ: s.momZ,
		Spin: s.spin,
	}
}

// Record gathers particle i from the columns.
func (s SoA) Record(i int) Particle {
	return Particle{
		PosX: s.posX[i], PosY: s.posY[i], PosZ: s.posZ[i],
		MomX: s.momX[i], MomY: s.momY[i], MomZ: s.momZ[i],
		Spin: s.spin[i],
	}
}

func (s SoA) Name() string { return NameSoA }

func (s SoA) Footprint() int { return SoAFootprint(s.Len()) }

// Release returns all seven columns to the allocator. The population is
// empty afterwards.
func (s *SoA) Release() {
	for k, b := range s.bufs {
		if b != nil {
			s.mem.Free(b)
		}
		s.bufs[k] = nil
	}
	s.posX, s.posY, s.posZ = nil, nil, nil
	s.momX, s.momY, s.momZ = nil, nil, nil
	s.spin = nil
}
