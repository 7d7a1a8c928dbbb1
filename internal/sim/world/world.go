package world

import (
	"fmt"
	"io"
	"log"
)

type Config struct {
	Seed int64

	ChunkSize float64 // world units per chunk edge
	GridN     int     // spawn cells per chunk edge

	RenderDistance  int     // chunks
	VisibleDistance float64 // world units
	RetentionRadius float64 // world units, > VisibleDistance
	MoveThreshold   float64 // min movement before generate/evict reruns

	// Priority is the per-cell kind evaluation order. Defaults to
	// DefaultPriority when empty.
	Priority []FeatureKind
}

func (c *Config) applyDefaults() {
	if c.ChunkSize <= 0 {
		c.ChunkSize = 600
	}
	if c.GridN <= 0 {
		c.GridN = 4
	}
	if c.RenderDistance <= 0 {
		c.RenderDistance = 2
	}
	if c.VisibleDistance <= 0 {
		c.VisibleDistance = 2000
	}
	if c.RetentionRadius <= 0 {
		c.RetentionRadius = 3500
	}
	if c.MoveThreshold <= 0 {
		c.MoveThreshold = 50
	}
	if len(c.Priority) == 0 {
		c.Priority = DefaultPriority
	}
}

// Deps are the collaborators a streaming session consumes. Factories
// and biomes are the only required ones.
type Deps struct {
	Factories map[FeatureKind]Factory
	Biomes    BiomeResolver
	Container Container
	Hooks     []EffectHook
	Events    EventSink
	Log       *log.Logger
}

// Stats are cumulative counters for one session.
type Stats struct {
	ChunksGenerated  uint64
	EntitiesSpawned  uint64
	EntitiesEvicted  uint64
	SpawnsDeclined   uint64
	SpawnsCrowdedOut uint64
}

// World holds all mutable streaming state for one session: the
// generated-chunk set, the active entity registry, and the last update
// position. Owned by the session, mutated only on its tick.
type World struct {
	cfg       Config
	factories map[FeatureKind]Factory
	biomes    BiomeResolver
	container Container
	hooks     []EffectHook
	events    EventSink
	log       *log.Logger

	reg       *registry
	generated map[ChunkKey]struct{}

	tick    uint64
	lastPos Vec3
	hasLast bool

	stats Stats
}

func New(cfg Config, deps Deps) (*World, error) {
	cfg.applyDefaults()
	if cfg.RetentionRadius < cfg.VisibleDistance {
		return nil, fmt.Errorf("retention radius %v below visible distance %v", cfg.RetentionRadius, cfg.VisibleDistance)
	}
	if len(deps.Factories) == 0 {
		return nil, fmt.Errorf("no content factories")
	}
	if deps.Biomes == nil {
		deps.Biomes = DefaultBiomes()
	}
	if deps.Container == nil {
		deps.Container = nopContainer{}
	}
	if deps.Log == nil {
		deps.Log = log.New(io.Discard, "", 0)
	}
	return &World{
		cfg:       cfg,
		factories: deps.Factories,
		biomes:    deps.Biomes,
		container: deps.Container,
		hooks:     deps.Hooks,
		events:    deps.Events,
		log:       deps.Log,
		reg:       newRegistry(),
		generated: map[ChunkKey]struct{}{},
	}, nil
}

func (w *World) Config() Config { return w.cfg }
func (w *World) Seed() int64    { return w.cfg.Seed }
func (w *World) Tick() uint64   { return w.tick }
func (w *World) Stats() Stats   { return w.stats }

func (w *World) emit(ev Event) {
	if w.events != nil {
		ev.Tick = w.tick
		w.events.WorldEvent(ev)
	}
}
