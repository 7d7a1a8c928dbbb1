package world

import (
	"math"

	"sailcraft/internal/sim/world/logic/chunkmath"
)

// ChunkKey identifies one fixed-size square region of ocean. Two
// chunks are the same chunk iff their keys are equal.
type ChunkKey struct {
	CX int `json:"cx"`
	CZ int `json:"cz"`
}

func (k ChunkKey) grid() chunkmath.Key {
	return chunkmath.Key{CX: k.CX, CZ: k.CZ}
}

// ToChunk maps a world position to its chunk. Pure function of the
// coordinates and the configured chunk size.
func (w *World) ToChunk(x, z float64) ChunkKey {
	return ChunkKey{
		CX: int(math.Floor(x / w.cfg.ChunkSize)),
		CZ: int(math.Floor(z / w.cfg.ChunkSize)),
	}
}

func (w *World) ownerChunk(e *Entity) ChunkKey {
	return w.ToChunk(e.Collider.Center.X, e.Collider.Center.Z)
}

// chunkSeed decorrelates numerically adjacent chunk coordinates under
// the session seed. Large odd primes plus XOR, as usual.
func chunkSeed(worldSeed int64, cx, cz int) int64 {
	v := int64(cx)*73856093 ^ int64(cz)*19349663 ^ worldSeed
	if v < 0 {
		v = -v
	}
	return v
}

// Generated reports whether a chunk has been through generation.
// Membership is monotone: a key is never removed, even after all of
// the chunk's content is evicted, so a revisit never redraws.
func (w *World) Generated(k ChunkKey) bool {
	_, ok := w.generated[k]
	return ok
}

// GeneratedChunks returns the generated set, sorted for stable diffs.
func (w *World) GeneratedChunks() []ChunkKey {
	keys := make([]chunkmath.Key, 0, len(w.generated))
	for k := range w.generated {
		keys = append(keys, k.grid())
	}
	sorted := chunkmath.SortKeys(keys)
	out := make([]ChunkKey, 0, len(sorted))
	for _, k := range sorted {
		out = append(out, ChunkKey{CX: k.CX, CZ: k.CZ})
	}
	return out
}
