// Package world implements the deterministic streaming core of the
// ocean: chunk indexing, seeded feature generation, the active entity
// registry, and the visibility/eviction lifecycle around a vessel.
package world

import (
	"fmt"
	"math"
)

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) DistanceTo(o Vec3) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	dz := v.Z - o.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (v Vec3) finite() bool {
	ok := func(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
	return ok(v.X) && ok(v.Y) && ok(v.Z)
}

// Collider approximates an entity footprint as a sphere.
type Collider struct {
	Center Vec3    `json:"center"`
	Radius float64 `json:"radius"`
}

type FeatureKind string

const (
	KindIsland        FeatureKind = "ISLAND"
	KindIceberg       FeatureKind = "ICEBERG"
	KindSnowIsland    FeatureKind = "SNOW_ISLAND"
	KindRockyIsland   FeatureKind = "ROCKY_ISLAND"
	KindMassiveIsland FeatureKind = "MASSIVE_ISLAND"
	KindStructure     FeatureKind = "STRUCTURE"
)

// DefaultPriority is the per-cell evaluation order: rare large content
// first, ordinary islands last. First threshold match settles a cell.
var DefaultPriority = []FeatureKind{
	KindMassiveIsland,
	KindStructure,
	KindIceberg,
	KindSnowIsland,
	KindRockyIsland,
	KindIsland,
}

// EntityID derives the stable id for a feature at a spawn position.
// Rounded coordinates keep the id reproducible across runs.
func EntityID(kind FeatureKind, x, z float64) string {
	return fmt.Sprintf("%s_%d_%d", kindPrefix(kind), int(math.Floor(x)), int(math.Floor(z)))
}

func kindPrefix(kind FeatureKind) string {
	switch kind {
	case KindIsland:
		return "island"
	case KindIceberg:
		return "iceberg"
	case KindSnowIsland:
		return "snow_island"
	case KindRockyIsland:
		return "rocky_island"
	case KindMassiveIsland:
		return "massive_island"
	case KindStructure:
		return "structure"
	}
	return "feature"
}
