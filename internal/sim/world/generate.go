package world

import (
	"math"

	"sailcraft/internal/sim/world/logic/seedseq"
)

// GenerateChunk populates one chunk with content. Idempotent: a chunk
// already in the generated set is a free no-op, which also guards
// re-entrant requests when generation radii overlap within one pass.
//
// All randomness comes from a sequence seeded by (worldSeed, chunk
// coords), and every kind tested at a cell consumes exactly one draw
// whether or not it spawns, so chunk content never depends on what
// other chunks were generated first.
func (w *World) GenerateChunk(k ChunkKey) {
	if _, ok := w.generated[k]; ok {
		return
	}
	w.generated[k] = struct{}{}

	seq := seedseq.New(chunkSeed(w.cfg.Seed, k.CX, k.CZ))
	biome := w.biomes.Resolve(k.CX, k.CZ, w.cfg.Seed)

	n := w.cfg.GridN
	cell := w.cfg.ChunkSize / float64(n)
	originX := float64(k.CX) * w.cfg.ChunkSize
	originZ := float64(k.CZ) * w.cfg.ChunkSize

	// Entities committed earlier in this same pass; the spacing check
	// scans these so chunk content stays independent of generation
	// order across chunks.
	var placed []*Entity

	for gz := 0; gz < n; gz++ {
		for gx := 0; gx < n; gx++ {
			// Cell center plus jitter up to a quarter cell each axis:
			// even coverage without the uniform-grid look.
			x := originX + (float64(gx)+0.5)*cell + seq.NextIn(-0.25, 0.25)*cell
			z := originZ + (float64(gz)+0.5)*cell + seq.NextIn(-0.25, 0.25)*cell

			for _, kind := range w.cfg.Priority {
				roll := seq.Next()
				if roll >= biome.Thresholds[kind] {
					continue
				}
				// First threshold match settles the cell, whether or
				// not the placement commits.
				if e := w.spawn(kind, x, z, biome, placed); e != nil {
					placed = append(placed, e)
				}
				break
			}
		}
	}

	w.stats.ChunksGenerated++
	w.emit(Event{Type: EventChunkGenerated, ChunkX: k.CX, ChunkZ: k.CZ})
}

func (w *World) spawn(kind FeatureKind, x, z float64, biome BiomeProfile, placed []*Entity) *Entity {
	// Spacing is checked against entities committed earlier in this
	// pass. A registry-wide scan would let an earlier-generated
	// neighbor chunk veto border placements, making chunk content
	// depend on traversal order.
	p := Vec3{X: x, Z: z}
	minDist := biome.MinDistance[kind]
	for _, other := range placed {
		if p.DistanceTo(other.Collider.Center) < other.Collider.Radius+minDist {
			w.stats.SpawnsCrowdedOut++
			return nil
		}
	}

	id := EntityID(kind, x, z)
	if _, exists := w.reg.get(id); exists {
		// Two candidates resolving to the same id means the spacing
		// rules let them get too close; keep the first, report it.
		w.log.Printf("duplicate entity id %s, skipping second registration", id)
		return nil
	}

	factory, ok := w.factories[kind]
	if !ok {
		return nil
	}
	spawn := factory.Create(x, z, positionSeed(x, z), w.container)
	if spawn == nil {
		// Declined by the factory's own constraints. Not an error.
		w.stats.SpawnsDeclined++
		return nil
	}

	e := &Entity{ID: id, Kind: kind, Handle: spawn.Handle, Collider: spawn.Collider}
	w.reg.insert(e)
	w.container.Attach(e.ID, e.Handle)
	for _, h := range w.hooks {
		h.EntityAdded(e.ID, e.Collider)
	}
	w.stats.EntitiesSpawned++
	c := e.Collider.Center
	w.emit(Event{Type: EventEntitySpawned, EntityID: e.ID, Kind: e.Kind, Pos: &c})
	return e
}

// positionSeed derives the factory seed from the spawn position, so
// content detail is reproducible from where it stands.
func positionSeed(x, z float64) int64 {
	return int64(math.Floor(x*13371 + z*92717))
}
