package world

// Near reports whether p lies within dist of any registered entity's
// collider surface, optionally restricted to the given kinds. Consumed
// by boat movement for collision checks.
//
// Linear scan: live entity counts are tens per chunk. If content
// volume ever grows past that, this is where a grid index would go.
func (w *World) Near(p Vec3, dist float64, kinds ...FeatureKind) bool {
	if !p.finite() {
		return false
	}
	if len(kinds) == 0 {
		return scanNear(w.reg.order, p, dist)
	}
	for _, k := range kinds {
		if scanNear(w.reg.byKind[k], p, dist) {
			return true
		}
	}
	return false
}

func scanNear(entities []*Entity, p Vec3, dist float64) bool {
	for _, e := range entities {
		if p.DistanceTo(e.Collider.Center) < e.Collider.Radius+dist {
			return true
		}
	}
	return false
}
