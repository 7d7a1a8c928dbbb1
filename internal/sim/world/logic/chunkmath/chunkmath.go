package chunkmath

import (
	"sort"

	"sailcraft/internal/sim/world/logic/mathx"
)

type Key struct {
	CX int
	CZ int
}

// Ring returns every chunk key within radius (Chebyshev) of center,
// nearest first, ties broken by (CX, CZ). Deterministic ordering
// matters: generation walks this list, so it must not depend on map
// iteration order.
func Ring(center Key, radius int) []Key {
	if radius < 0 {
		radius = 0
	}
	type item struct {
		k    Key
		dist int
	}
	items := make([]item, 0, (2*radius+1)*(2*radius+1))
	for dz := -radius; dz <= radius; dz++ {
		for dx := -radius; dx <= radius; dx++ {
			d := mathx.AbsInt(dx)
			if a := mathx.AbsInt(dz); a > d {
				d = a
			}
			items = append(items, item{k: Key{CX: center.CX + dx, CZ: center.CZ + dz}, dist: d})
		}
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].dist != items[j].dist {
			return items[i].dist < items[j].dist
		}
		if items[i].k.CX != items[j].k.CX {
			return items[i].k.CX < items[j].k.CX
		}
		return items[i].k.CZ < items[j].k.CZ
	})
	out := make([]Key, 0, len(items))
	for _, it := range items {
		out = append(out, it.k)
	}
	return out
}

// SortKeys orders keys by (CX, CZ) in place and returns the slice.
func SortKeys(keys []Key) []Key {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].CX != keys[j].CX {
			return keys[i].CX < keys[j].CX
		}
		return keys[i].CZ < keys[j].CZ
	})
	return keys
}

// Chebyshev is the chunk-grid distance used for render-range checks.
func Chebyshev(a, b Key) int {
	dx := mathx.AbsInt(a.CX - b.CX)
	dz := mathx.AbsInt(a.CZ - b.CZ)
	if dx > dz {
		return dx
	}
	return dz
}
