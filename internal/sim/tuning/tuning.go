// Package tuning loads the session parameters that are not baked into
// code: chunk geometry, streaming radii, biome spawn tables, and the
// transport rate limits.
package tuning

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"sailcraft/internal/sim/world"
)

type Tuning struct {
	ProtocolVersion string `yaml:"protocol_version"`

	TickRateHz int `yaml:"tick_rate_hz"`

	ChunkSize float64 `yaml:"chunk_size"`
	GridN     int     `yaml:"grid_n"`

	RenderDistance  int     `yaml:"render_distance"`
	VisibleDistance float64 `yaml:"visible_distance"`
	RetentionRadius float64 `yaml:"retention_radius"`
	MoveThreshold   float64 `yaml:"move_threshold"`

	// Priority is the per-cell kind evaluation order, rarest first.
	Priority []string `yaml:"priority"`

	BiomeRegionChunks int                    `yaml:"biome_region_chunks"`
	Biomes            map[string]BiomeTuning `yaml:"biomes"`

	SnapshotEveryTicks int `yaml:"snapshot_every_ticks"`

	RateLimits RateLimits `yaml:"rate_limits"`
}

type BiomeTuning struct {
	Thresholds   map[string]float64 `yaml:"thresholds"`
	MinDistances map[string]float64 `yaml:"min_distances"`
	WaterColor   string             `yaml:"water_color"`
	FogDensity   float64            `yaml:"fog_density"`
}

type RateLimits struct {
	PosWindowTicks int `yaml:"pos_window_ticks"`
	PosMax         int `yaml:"pos_max"`
}

// Default is the shipping configuration; Load falls back to it field
// by field for anything the file leaves out.
func Default() Tuning {
	return Tuning{
		ProtocolVersion:    "1.0",
		TickRateHz:         10,
		ChunkSize:          600,
		GridN:              4,
		RenderDistance:     2,
		VisibleDistance:    2000,
		RetentionRadius:    3500,
		MoveThreshold:      50,
		BiomeRegionChunks:  4,
		SnapshotEveryTicks: 3000,
		RateLimits: RateLimits{
			PosWindowTicks: 10,
			PosMax:         30,
		},
	}
}

func Load(path string) (Tuning, error) {
	t := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	t.fillDefaults()
	if err := t.validate(); err != nil {
		return t, err
	}
	return t, nil
}

func (t *Tuning) fillDefaults() {
	d := Default()
	if t.ProtocolVersion == "" {
		t.ProtocolVersion = d.ProtocolVersion
	}
	if t.TickRateHz <= 0 {
		t.TickRateHz = d.TickRateHz
	}
	if t.ChunkSize <= 0 {
		t.ChunkSize = d.ChunkSize
	}
	if t.GridN <= 0 {
		t.GridN = d.GridN
	}
	if t.RenderDistance <= 0 {
		t.RenderDistance = d.RenderDistance
	}
	if t.VisibleDistance <= 0 {
		t.VisibleDistance = d.VisibleDistance
	}
	if t.RetentionRadius <= 0 {
		t.RetentionRadius = d.RetentionRadius
	}
	if t.MoveThreshold <= 0 {
		t.MoveThreshold = d.MoveThreshold
	}
	if t.BiomeRegionChunks <= 0 {
		t.BiomeRegionChunks = d.BiomeRegionChunks
	}
	if t.SnapshotEveryTicks <= 0 {
		t.SnapshotEveryTicks = d.SnapshotEveryTicks
	}
	if t.RateLimits.PosWindowTicks <= 0 {
		t.RateLimits.PosWindowTicks = d.RateLimits.PosWindowTicks
	}
	if t.RateLimits.PosMax <= 0 {
		t.RateLimits.PosMax = d.RateLimits.PosMax
	}
}

func (t *Tuning) validate() error {
	if t.RetentionRadius < t.VisibleDistance {
		return fmt.Errorf("retention_radius %v below visible_distance %v", t.RetentionRadius, t.VisibleDistance)
	}
	for _, name := range t.Priority {
		if !validKind(name) {
			return fmt.Errorf("priority: unknown feature kind %q", name)
		}
	}
	for biome, b := range t.Biomes {
		for k := range b.Thresholds {
			if !validKind(k) {
				return fmt.Errorf("biome %s: unknown feature kind %q in thresholds", biome, k)
			}
		}
		for k := range b.MinDistances {
			if !validKind(k) {
				return fmt.Errorf("biome %s: unknown feature kind %q in min_distances", biome, k)
			}
		}
	}
	return nil
}

func validKind(name string) bool {
	switch world.FeatureKind(name) {
	case world.KindIsland, world.KindIceberg, world.KindSnowIsland,
		world.KindRockyIsland, world.KindMassiveIsland, world.KindStructure:
		return true
	}
	return false
}

// WorldConfig converts tuning into the streaming core's config for a
// session with the given seed.
func (t Tuning) WorldConfig(seed int64) world.Config {
	cfg := world.Config{
		Seed:            seed,
		ChunkSize:       t.ChunkSize,
		GridN:           t.GridN,
		RenderDistance:  t.RenderDistance,
		VisibleDistance: t.VisibleDistance,
		RetentionRadius: t.RetentionRadius,
		MoveThreshold:   t.MoveThreshold,
	}
	for _, name := range t.Priority {
		cfg.Priority = append(cfg.Priority, world.FeatureKind(name))
	}
	return cfg
}

// BiomeResolver builds the biome policy: stock profiles unless the
// tuning file declares its own tables.
func (t Tuning) BiomeResolver() world.BiomeResolver {
	if len(t.Biomes) == 0 {
		r := world.DefaultBiomes()
		r.RegionChunks = t.BiomeRegionChunks
		return r
	}
	r := world.RegionBiomes{RegionChunks: t.BiomeRegionChunks}
	for name, b := range t.Biomes {
		p := world.BiomeProfile{
			Name:        name,
			Thresholds:  map[world.FeatureKind]float64{},
			MinDistance: map[world.FeatureKind]float64{},
			WaterColor:  b.WaterColor,
			FogDensity:  b.FogDensity,
		}
		for k, v := range b.Thresholds {
			p.Thresholds[world.FeatureKind(k)] = v
		}
		for k, v := range b.MinDistances {
			p.MinDistance[world.FeatureKind(k)] = v
		}
		r.Profiles = append(r.Profiles, p)
	}
	// Profile order feeds the region hash; map iteration order must
	// not leak into it.
	sort.Slice(r.Profiles, func(i, j int) bool { return r.Profiles[i].Name < r.Profiles[j].Name })
	return r
}
