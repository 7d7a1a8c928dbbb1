package world

import (
	"math"

	"sailcraft/internal/sim/world/logic/chunkmath"
)

// Update runs one streaming step around the vessel position: generate
// chunks in render range, evict content outside the retention radius,
// refresh show/hide flags, in that order. Generation and eviction are
// gated by the movement threshold; visibility is refreshed every call.
//
// Non-finite positions are rejected outright. A NaN here would poison
// every distance check downstream.
func (w *World) Update(pos Vec3) {
	if !pos.finite() {
		return
	}
	w.tick++
	center := w.ToChunk(pos.X, pos.Z)

	full := !w.hasLast || pos.DistanceTo(w.lastPos) >= w.cfg.MoveThreshold
	if full {
		for _, gk := range chunkmath.Ring(center.grid(), w.cfg.RenderDistance) {
			w.GenerateChunk(ChunkKey{CX: gk.CX, CZ: gk.CZ})
		}
		w.evict(pos, center)
	}

	w.updateVisibility(pos, center)

	if full {
		w.lastPos = pos
		w.hasLast = true
	}
}

// evict permanently destroys entities the vessel has left behind:
// beyond the retention radius, or owned by a chunk outside the
// retention ring. Hooks detach before the registry forgets the id.
func (w *World) evict(pos Vec3, center ChunkKey) {
	retChunks := int(math.Ceil(w.cfg.RetentionRadius / w.cfg.ChunkSize))
	for _, e := range w.Entities() {
		owner := w.ownerChunk(e)
		if pos.DistanceTo(e.Collider.Center) <= w.cfg.RetentionRadius &&
			chunkmath.Chebyshev(owner.grid(), center.grid()) <= retChunks {
			continue
		}
		for _, h := range w.hooks {
			h.EntityRemoved(e.ID)
		}
		w.container.Detach(e.ID)
		w.reg.remove(e.ID)
		w.stats.EntitiesEvicted++
		c := e.Collider.Center
		w.emit(Event{Type: EventEntityEvicted, EntityID: e.ID, Kind: e.Kind, Pos: &c})
	}
}

// updateVisibility applies both visibility conditions: close enough in
// world units AND owned by a chunk in render range. Distance alone
// would show content through ungenerated ocean; chunk membership alone
// would show the far corners of large nearby chunks.
func (w *World) updateVisibility(pos Vec3, center ChunkKey) {
	for _, e := range w.reg.order {
		owner := w.ownerChunk(e)
		e.Visible = pos.DistanceTo(e.Collider.Center) <= w.cfg.VisibleDistance &&
			chunkmath.Chebyshev(owner.grid(), center.grid()) <= w.cfg.RenderDistance
	}
}
