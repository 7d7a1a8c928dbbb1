package world

// Handle is an opaque renderable owned by the registry once its entity
// is registered. The core never looks inside; clients render it.
type Handle any

// Container is the scene the rendered content hangs off. The core
// attaches a registered entity's handle under its id and detaches it
// on eviction.
type Container interface {
	Attach(id string, h Handle)
	Detach(id string)
}

// Spawn is what a content factory hands back for an accepted placement.
type Spawn struct {
	Handle   Handle
	Collider Collider
}

// Factory builds content of one feature kind at a position. A nil
// return is a declined spawn (internal constraint not met), not an
// error; generation moves on.
type Factory interface {
	Create(x, z float64, seed int64, parent Container) *Spawn
}

type nopContainer struct{}

func (nopContainer) Attach(string, Handle) {}
func (nopContainer) Detach(string)         {}

// EffectHook lets a decorator subsystem (shore foam and the like)
// track entity lifetimes. EntityRemoved always fires before the entity
// leaves the registry.
type EffectHook interface {
	EntityAdded(id string, c Collider)
	EntityRemoved(id string)
}
