// Package content holds the per-kind factories. Each one derives a
// renderable descriptor and a sphere collider from its position seed;
// the browser client turns descriptors into meshes, the server never
// does.
package content

import (
	"sync"

	"sailcraft/internal/sim/world"
)

// DefaultFactories wires every feature kind to its stock factory.
func DefaultFactories() map[world.FeatureKind]world.Factory {
	return map[world.FeatureKind]world.Factory{
		world.KindIsland:        IslandFactory{},
		world.KindIceberg:       IcebergFactory{},
		world.KindSnowIsland:    SnowIslandFactory{},
		world.KindRockyIsland:   RockyIslandFactory{},
		world.KindMassiveIsland: MassiveIslandFactory{},
		world.KindStructure:     StructureFactory{},
	}
}

// Scene is a flat scene graph: registered handles by entity id. The
// transport layer reads it when building frames for clients.
type Scene struct {
	mu    sync.Mutex
	nodes map[string]world.Handle
}

func NewScene() *Scene {
	return &Scene{nodes: map[string]world.Handle{}}
}

func (s *Scene) Attach(id string, h world.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes[id] = h
}

func (s *Scene) Detach(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.nodes, id)
}

func (s *Scene) Get(id string) (world.Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.nodes[id]
	return h, ok
}

func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.nodes)
}
