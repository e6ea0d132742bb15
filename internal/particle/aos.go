package particle

import (
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow/memory"
)

// AoS stores one contiguous record per particle.
type AoS struct {
	records []Particle
	buf     []byte
	mem     memory.Allocator
}

// NewAoS allocates n zeroed records from mem (memory.DefaultAllocator if nil).
func NewAoS(mem memory.Allocator, n int) AoS {
	if mem == nil {
		mem = memory.DefaultAllocator
	}
	a := AoS{mem: mem}
	if n == 0 {
		return a
	}
	a.buf = mem.Allocate(n * RecordSize)
	a.records = unsafe.Slice((*Particle)(unsafe.Pointer(&a.buf[0])), n)
	return a
}

func (a AoS) Len() int { return len(a.records) }

func (a AoS) Position(i int) (x, y, z float64) {
	p := &a.records[i]
	return p.PosX, p.PosY, p.PosZ
}

func (a AoS) Momentum(i int) (x, y, z float64) {
	p := &a.records[i]
	return p.MomX, p.MomY, p.MomZ
}

func (a AoS) Spin(i int) int32 { return a.records[i].Spin }

func (a AoS) Set(i int, p Particle) { a.records[i] = p }

// Records is the backing record slice. Kernels range over it directly;
// callers must not retain it past Release.
func (a AoS) Records() []Particle { return a.records }

// Record returns a copy of particle i.
func (a AoS) Record(i int) Particle { return a.records[i] }

func (a AoS) Name() string { return NameAoS }

func (a AoS) Footprint() int { return AoSFootprint(a.Len()) }

// Release returns the record buffer to the allocator. The population is
// empty afterwards.
func (a *AoS) Release() {
	if a.buf != nil {
		a.mem.Free(a.buf)
	}
	a.buf = nil
	a.records = nil
}
