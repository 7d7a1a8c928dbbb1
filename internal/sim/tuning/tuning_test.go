package tuning

import (
	"os"
	"path/filepath"
	"testing"

	"sailcraft/internal/sim/world"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write tuning: %v", err)
	}
	return p
}

func TestLoadAppliesDefaultsForAbsentFields(t *testing.T) {
	p := writeTuning(t, "chunk_size: 800\n")
	got, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.ChunkSize != 800 {
		t.Fatalf("chunk_size = %v, want 800", got.ChunkSize)
	}
	d := Default()
	if got.RenderDistance != d.RenderDistance || got.RetentionRadius != d.RetentionRadius {
		t.Fatalf("defaults not applied: %+v", got)
	}
	if got.RateLimits.PosMax != d.RateLimits.PosMax {
		t.Fatal("rate limit default not applied")
	}
}

func TestLoadRejectsUnknownKind(t *testing.T) {
	p := writeTuning(t, `
priority: [ICEBERG, KRAKEN]
`)
	if _, err := Load(p); err == nil {
		t.Fatal("unknown kind in priority accepted")
	}
}

func TestLoadRejectsRetentionBelowVisible(t *testing.T) {
	p := writeTuning(t, `
visible_distance: 4000
retention_radius: 3000
`)
	if _, err := Load(p); err == nil {
		t.Fatal("retention below visible distance accepted")
	}
}

func TestBiomeTablesOverrideStock(t *testing.T) {
	p := writeTuning(t, `
biome_region_chunks: 2
biomes:
  CALM:
    thresholds:
      ISLAND: 0.5
    min_distances:
      ISLAND: 120
    water_color: "#000000"
`)
	tn, err := Load(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	r := tn.BiomeResolver().(world.RegionBiomes)
	if len(r.Profiles) != 1 || r.Profiles[0].Name != "CALM" {
		t.Fatalf("profiles = %+v", r.Profiles)
	}
	if r.Profiles[0].Thresholds[world.KindIsland] != 0.5 {
		t.Fatal("threshold table not carried over")
	}
	if r.RegionChunks != 2 {
		t.Fatalf("region chunks = %d, want 2", r.RegionChunks)
	}
}

func TestWorldConfigCarriesPriority(t *testing.T) {
	tn := Default()
	tn.Priority = []string{"ICEBERG", "ISLAND"}
	cfg := tn.WorldConfig(42)
	if cfg.Seed != 42 {
		t.Fatalf("seed = %d", cfg.Seed)
	}
	want := []world.FeatureKind{world.KindIceberg, world.KindIsland}
	if len(cfg.Priority) != 2 || cfg.Priority[0] != want[0] || cfg.Priority[1] != want[1] {
		t.Fatalf("priority = %v", cfg.Priority)
	}
}
