package world

import "fmt"

// EntityRecord is the serializable form of a registered entity, used
// by snapshots.
type EntityRecord struct {
	ID       string
	Kind     FeatureKind
	Collider Collider
	Visible  bool
	Handle   Handle
}

// ExportEntities returns the registry in insertion order for snapshot
// capture.
func (w *World) ExportEntities() []EntityRecord {
	out := make([]EntityRecord, 0, w.reg.len())
	for _, e := range w.reg.order {
		out = append(out, EntityRecord{
			ID:       e.ID,
			Kind:     e.Kind,
			Collider: e.Collider,
			Visible:  e.Visible,
			Handle:   e.Handle,
		})
	}
	return out
}

// RestoreChunk marks a chunk generated without running generation.
// Used when resuming from a snapshot: the entities arrive via
// RestoreEntity, and the mark keeps the generator from redrawing them.
func (w *World) RestoreChunk(k ChunkKey) {
	w.generated[k] = struct{}{}
}

// RestoreEntity reinserts a snapshotted entity, reattaching it to the
// container and replaying the effect hooks.
func (w *World) RestoreEntity(rec EntityRecord) error {
	if !rec.Collider.Center.finite() {
		return fmt.Errorf("entity %s: non-finite collider center", rec.ID)
	}
	e := &Entity{
		ID:       rec.ID,
		Kind:     rec.Kind,
		Handle:   rec.Handle,
		Collider: rec.Collider,
		Visible:  rec.Visible,
	}
	if !w.reg.insert(e) {
		return fmt.Errorf("entity %s already registered", rec.ID)
	}
	w.container.Attach(e.ID, e.Handle)
	for _, h := range w.hooks {
		h.EntityAdded(e.ID, e.Collider)
	}
	return nil
}
