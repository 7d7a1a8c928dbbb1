package world

import (
	"math"
	"testing"
)

func emptyBiome() BiomeProfile {
	return BiomeProfile{Name: "TEST_EMPTY"}
}

// quietWorld generates nothing on its own, so tests can place entities
// by hand and exercise the streaming rules in isolation.
func quietWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	return newTestWorld(t, cfg, Deps{Biomes: fixedBiome{profile: emptyBiome()}})
}

func mustRestore(t *testing.T, w *World, id string, kind FeatureKind, pos Vec3, radius float64) {
	t.Helper()
	err := w.RestoreEntity(EntityRecord{
		ID:       id,
		Kind:     kind,
		Collider: Collider{Center: pos, Radius: radius},
	})
	if err != nil {
		t.Fatalf("restore %s: %v", id, err)
	}
}

func TestVisibilityRequiresChunkInRenderRange(t *testing.T) {
	w := quietWorld(t, Config{Seed: 1, ChunkSize: 600, RenderDistance: 1, VisibleDistance: 2000})
	// Close in world units but two chunks out.
	mustRestore(t, w, "island_1500_0", KindIsland, Vec3{X: 1500}, 80)
	w.Update(Vec3{})
	e, _ := w.Entity("island_1500_0")
	if e.Visible {
		t.Fatal("entity in out-of-range chunk shown despite distance condition passing")
	}
}

func TestVisibilityRequiresDistance(t *testing.T) {
	w := quietWorld(t, Config{Seed: 1, ChunkSize: 600, RenderDistance: 1, VisibleDistance: 400, RetentionRadius: 3500})
	// In a render-range chunk but past the visible distance.
	mustRestore(t, w, "island_500_0", KindIsland, Vec3{X: 500}, 80)
	w.Update(Vec3{})
	e, _ := w.Entity("island_500_0")
	if e.Visible {
		t.Fatal("entity past visible distance shown despite chunk condition passing")
	}
}

func TestVisibilityBothConditionsMet(t *testing.T) {
	w := quietWorld(t, Config{Seed: 1, ChunkSize: 600, RenderDistance: 1, VisibleDistance: 2000})
	mustRestore(t, w, "island_300_0", KindIsland, Vec3{X: 300}, 80)
	w.Update(Vec3{})
	e, _ := w.Entity("island_300_0")
	if !e.Visible {
		t.Fatal("nearby in-range entity not shown")
	}
}

func TestEvictionBoundary(t *testing.T) {
	w := quietWorld(t, Config{Seed: 1, ChunkSize: 600, RenderDistance: 1, RetentionRadius: 3000})
	mustRestore(t, w, "keep", KindIsland, Vec3{X: 2999}, 50)
	mustRestore(t, w, "drop", KindIsland, Vec3{X: 3001}, 50)
	w.Update(Vec3{})

	if _, ok := w.Entity("keep"); !ok {
		t.Fatal("entity inside retention radius was evicted")
	}
	if _, ok := w.Entity("drop"); ok {
		t.Fatal("entity outside retention radius survived")
	}
	if w.Stats().EntitiesEvicted != 1 {
		t.Fatalf("evicted count = %d, want 1", w.Stats().EntitiesEvicted)
	}
}

func TestMovementThresholdGatesEviction(t *testing.T) {
	w := quietWorld(t, Config{Seed: 1, ChunkSize: 600, RetentionRadius: 3000, MoveThreshold: 50})
	w.Update(Vec3{}) // records last position

	mustRestore(t, w, "far", KindIsland, Vec3{X: 5000}, 50)

	// Below the threshold: generate/evict skipped, visibility still runs.
	w.Update(Vec3{X: 10})
	if _, ok := w.Entity("far"); !ok {
		t.Fatal("eviction ran despite sub-threshold movement")
	}

	w.Update(Vec3{X: 80})
	if _, ok := w.Entity("far"); ok {
		t.Fatal("eviction skipped after threshold crossed")
	}
}

func TestNonFinitePositionRejected(t *testing.T) {
	w := quietWorld(t, Config{Seed: 1, ChunkSize: 600})
	w.Update(Vec3{})
	digest := w.Digest()
	tick := w.Tick()

	w.Update(Vec3{X: math.NaN()})
	w.Update(Vec3{X: math.Inf(1), Z: 3})
	if w.Digest() != digest || w.Tick() != tick {
		t.Fatal("non-finite position updated state")
	}
}

func TestGeneratedSetMonotoneAfterEviction(t *testing.T) {
	w := newTestWorld(t, Config{Seed: 21, ChunkSize: 600, RenderDistance: 1, RetentionRadius: 2500, MoveThreshold: 50}, Deps{})
	w.Update(Vec3{})
	origin := ChunkKey{CX: 0, CZ: 0}
	if !w.Generated(origin) {
		t.Fatal("origin chunk not generated")
	}
	before := len(chunkEntities(w, origin))
	if before == 0 {
		t.Fatal("no origin entities to evict")
	}

	// Sail far enough that the origin content is destroyed.
	w.Update(Vec3{X: 9000})
	if got := len(chunkEntities(w, origin)); got != 0 {
		t.Fatalf("%d origin entities survived beyond retention", got)
	}
	if !w.Generated(origin) {
		t.Fatal("generated set lost the origin key on eviction")
	}

	// Sailing back must not redraw the chunk.
	spawned := w.Stats().EntitiesSpawned
	w.Update(Vec3{})
	if got := len(chunkEntities(w, origin)); got != 0 {
		t.Fatalf("origin chunk regenerated %d entities on revisit", got)
	}
	if w.Stats().EntitiesSpawned != spawned {
		t.Fatal("revisit spawned new entities")
	}
}

// The reference voyage: fixed seed, 600-unit chunks, render distance 1.
// A round trip away from the origin and back must leave the origin
// block byte-identical, with no duplicate registrations.
func TestRoundTripLeavesOriginIntact(t *testing.T) {
	cfg := Config{
		Seed:            12345,
		ChunkSize:       600,
		RenderDistance:  1,
		VisibleDistance: 2000,
		RetentionRadius: 9000, // wide enough that the voyage hides, never destroys
		MoveThreshold:   50,
	}
	w, err := New(cfg, Deps{Factories: stubFactories(false), Biomes: DefaultBiomes()})
	if err != nil {
		t.Fatalf("world: %v", err)
	}

	w.Update(Vec3{})
	originBlock := func() map[string]Collider {
		out := map[string]Collider{}
		for cz := -1; cz <= 1; cz++ {
			for cx := -1; cx <= 1; cx++ {
				for id, c := range chunkEntities(w, ChunkKey{CX: cx, CZ: cz}) {
					out[id] = c
				}
			}
		}
		return out
	}
	before := originBlock()
	if len(before) == 0 {
		t.Fatal("origin block generated no entities")
	}

	// Out and back, in threshold-crossing steps.
	for step := 1; step <= 5; step++ {
		p := float64(step) * 600
		w.Update(Vec3{X: p, Z: p})
	}
	for step := 4; step >= 0; step-- {
		p := float64(step) * 600
		w.Update(Vec3{X: p, Z: p})
	}

	after := originBlock()
	if len(after) != len(before) {
		t.Fatalf("origin block changed: %d entities before, %d after", len(before), len(after))
	}
	for id, c := range before {
		got, ok := after[id]
		if !ok {
			t.Fatalf("origin entity %s lost during round trip", id)
		}
		if got != c {
			t.Fatalf("origin entity %s moved: %+v -> %+v", id, c, got)
		}
	}

	// Same voyage on a fresh world lands on the same digest.
	w2, err := New(cfg, Deps{Factories: stubFactories(false), Biomes: DefaultBiomes()})
	if err != nil {
		t.Fatalf("world2: %v", err)
	}
	w2.Update(Vec3{})
	for step := 1; step <= 5; step++ {
		p := float64(step) * 600
		w2.Update(Vec3{X: p, Z: p})
	}
	for step := 4; step >= 0; step-- {
		p := float64(step) * 600
		w2.Update(Vec3{X: p, Z: p})
	}
	if w.Digest() != w2.Digest() {
		t.Fatal("identical voyages diverged")
	}
}
