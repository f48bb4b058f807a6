package segment

import (
	"encoding/binary"
	"hash/fnv"

	pcore "mazeforge/pkg/core"
)

// Hash returns a stable FNV-1a hash of the segment's identifying fields.
func Hash(s WallSegment) uint64 {
	var buf [32]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(int64(s.StartX)))
	binary.LittleEndian.PutUint64(buf[8:], uint64(int64(s.StartY)))
	binary.LittleEndian.PutUint64(buf[16:], uint64(int64(s.Length)))
	binary.LittleEndian.PutUint64(buf[24:], uint64(int64(s.TextureIndex)))
	h := fnv.New64a()
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// VariantFor picks one of variants texture slices for s. The choice depends
// only on the segment, so a segment keeps its look across frames without the
// renderer caching anything.
func VariantFor(s WallSegment, variants int) int {
	if variants <= 1 {
		return 0
	}
	return pcore.NewRNGFromHash(Hash(s)).IntN(variants)
}
