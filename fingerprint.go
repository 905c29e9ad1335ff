package tabulated

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// hasher accumulates a fingerprint over a function's kind, sizes, bounds and
// samples.
type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newHasher(k Kind) *hasher {
	h := &hasher{d: xxhash.New()}
	h.int(int(k))
	return h
}

func (h *hasher) int(x int) {
	binary.LittleEndian.PutUint64(h.buf[:], uint64(int64(x)))
	h.d.Write(h.buf[:])
}

func (h *hasher) float(x float64) {
	// -0 and +0 compare equal, so they must hash equally.
	if x == 0 {
		x = 0
	}
	binary.LittleEndian.PutUint64(h.buf[:], math.Float64bits(x))
	h.d.Write(h.buf[:])
}

func (h *hasher) domains(ds ...Domain) {
	for _, d := range ds {
		h.float(d.Min)
		h.float(d.Max)
	}
}

func (h *hasher) values(xs []float64) {
	h.int(len(xs))
	for _, x := range xs {
		h.float(x)
	}
}

func (h *hasher) sum() uint64 { return h.d.Sum64() }
