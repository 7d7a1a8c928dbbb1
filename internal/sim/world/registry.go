package world

// Entity is one piece of registered world content. The registry is the
// single source of truth for what currently exists; factories and the
// generator keep no lasting references.
type Entity struct {
	ID       string
	Kind     FeatureKind
	Handle   Handle
	Collider Collider
	Visible  bool
}

type registry struct {
	byID   map[string]*Entity
	byKind map[FeatureKind][]*Entity
	order  []*Entity // insertion order, kept deterministic
}

func newRegistry() *registry {
	return &registry{
		byID:   map[string]*Entity{},
		byKind: map[FeatureKind][]*Entity{},
	}
}

func (r *registry) get(id string) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// insert refuses duplicates: overwriting would orphan the first
// entity's handle.
func (r *registry) insert(e *Entity) bool {
	if _, exists := r.byID[e.ID]; exists {
		return false
	}
	r.byID[e.ID] = e
	r.byKind[e.Kind] = append(r.byKind[e.Kind], e)
	r.order = append(r.order, e)
	return true
}

func (r *registry) remove(id string) *Entity {
	e, ok := r.byID[id]
	if !ok {
		return nil
	}
	delete(r.byID, id)
	r.byKind[e.Kind] = dropEntity(r.byKind[e.Kind], e)
	r.order = dropEntity(r.order, e)
	return e
}

func dropEntity(s []*Entity, e *Entity) []*Entity {
	for i, v := range s {
		if v == e {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func (r *registry) len() int { return len(r.order) }

// Entities returns the live entities in insertion order.
func (w *World) Entities() []*Entity {
	out := make([]*Entity, len(w.reg.order))
	copy(out, w.reg.order)
	return out
}

// Entity looks up a registered entity by id.
func (w *World) Entity(id string) (*Entity, bool) {
	return w.reg.get(id)
}

// EntityCount is the number of live registered entities.
func (w *World) EntityCount() int { return w.reg.len() }
