package support

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
)

// Hash computes a Murmur3-family hash of b seeded with seed. Identical
// inputs yield identical outputs across process runs of a single build;
// no cross-platform or cross-version stability is promised or required —
// callers only ever compare hashes computed within one running process
// (udbmctx's intern-table keys).
func Hash(b []byte, seed uint32) uint32 {
	return murmur3.SeedSum32(seed, b)
}

// HashInts hashes a slice of int32 values (e.g. a flattened DBM matrix of
// raw bounds) without an intermediate []byte allocation per call site.
func HashInts(vals []int32, seed uint32) uint32 {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	return Hash(buf, seed)
}
