package randomness

import (
	"encoding/binary"
	"io"
	"math/rand/v2"
	"time"
)

// NewRand returns a PCG-backed random source seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewTimeRand returns a random source seeded from the wall clock.
func NewTimeRand() *rand.Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}

// Reader adapts r to an io.Reader so byte-oriented consumers (UUIDs) draw
// from the same source as everything else.
func Reader(r *rand.Rand) io.Reader {
	return &randReader{rand: r}
}

type randReader struct {
	rand *rand.Rand
}

func (r *randReader) Read(p []byte) (int, error) {
	var buf [8]byte
	n := 0
	for n < len(p) {
		binary.LittleEndian.PutUint64(buf[:], r.rand.Uint64())
		n += copy(p[n:], buf[:])
	}
	return n, nil
}

// IntRange returns a uniform value in [lo, hi]. Callers guarantee lo <= hi.
func IntRange(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// Int64Range returns a uniform value in [lo, hi] without overflowing when the
// range spans the whole int64 domain.
func Int64Range(r *rand.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	span := uint64(hi) - uint64(lo)
	if span == ^uint64(0) {
		return int64(r.Uint64())
	}
	return int64(uint64(lo) + r.Uint64N(span+1))
}
