package particle

import (
	"unsafe"

	"github.com/apache/arrow-go/v18/arrow"
)

const (
	// RecordSize is the size of one AoS record, padding included.
	RecordSize = int(unsafe.Sizeof(Particle{}))

	// SequenceCount is the number of SoA columns.
	SequenceCount = 7

	wordSize = int(unsafe.Sizeof(uintptr(0)))
)

// AoSFootprint is n records.
func AoSFootprint(n int) int {
	return n * RecordSize
}

// SoAFootprint is n × (six float64 + one int32) plus one word of bookkeeping
// per column. The bookkeeping term is an estimate and does not match any
// runtime's real slice or buffer header.
func SoAFootprint(n int) int {
	return n*(6*arrow.Float64SizeBytes+arrow.Int32SizeBytes) + SequenceCount*wordSize
}

// MiB converts bytes to mebibytes.
func MiB(bytes int) float64 {
	return float64(bytes) / (1024 * 1024)
}
