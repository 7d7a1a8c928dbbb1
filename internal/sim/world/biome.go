package world

import "sailcraft/internal/sim/world/logic/mathx"

// BiomeProfile bundles the spawn policy a biome imposes on chunks it
// governs: per-kind spawn thresholds (probability per grid cell), the
// minimum spacing each kind demands at placement, and the cosmetic
// parameters clients use to dress the water.
type BiomeProfile struct {
	Name        string
	Thresholds  map[FeatureKind]float64
	MinDistance map[FeatureKind]float64

	WaterColor string
	FogDensity float64
}

// BiomeResolver picks the profile governing a chunk. Must be a pure
// function of (cx, cz, worldSeed) or chunk content stops being
// reproducible.
type BiomeResolver interface {
	Resolve(cx, cz int, worldSeed int64) BiomeProfile
}

// RegionBiomes assigns profiles to square regions of chunks via a
// coordinate hash, so biomes form contiguous patches rather than
// per-chunk noise.
type RegionBiomes struct {
	RegionChunks int
	Profiles     []BiomeProfile
}

func (r RegionBiomes) Resolve(cx, cz int, worldSeed int64) BiomeProfile {
	if len(r.Profiles) == 0 {
		return BiomeProfile{Name: "EMPTY"}
	}
	region := r.RegionChunks
	if region <= 0 {
		region = 1
	}
	rx := mathx.FloorDiv(cx, region)
	rz := mathx.FloorDiv(cz, region)
	h := mathx.Hash2(worldSeed, rx, rz)
	return r.Profiles[h%uint64(len(r.Profiles))]
}

// DefaultBiomes is the stock ocean: mostly open sea, with archipelago,
// arctic and volcanic patches. Thresholds encode rarity per 4x4 cell;
// spacing keeps large content from crowding.
func DefaultBiomes() RegionBiomes {
	return RegionBiomes{
		RegionChunks: 4,
		Profiles: []BiomeProfile{
			{
				Name: "OPEN_SEA",
				Thresholds: map[FeatureKind]float64{
					KindMassiveIsland: 0.002,
					KindStructure:     0.004,
					KindIceberg:       0.008,
					KindRockyIsland:   0.02,
					KindIsland:        0.06,
				},
				MinDistance: defaultSpacing(),
				WaterColor:  "#1a6b8a",
				FogDensity:  0.0006,
			},
			{
				Name: "ARCHIPELAGO",
				Thresholds: map[FeatureKind]float64{
					KindMassiveIsland: 0.004,
					KindStructure:     0.01,
					KindRockyIsland:   0.10,
					KindIsland:        0.30,
				},
				MinDistance: defaultSpacing(),
				WaterColor:  "#2a8f9e",
				FogDensity:  0.0004,
			},
			{
				Name: "ARCTIC",
				Thresholds: map[FeatureKind]float64{
					KindStructure:  0.003,
					KindIceberg:    0.35,
					KindSnowIsland: 0.12,
					KindIsland:     0.01,
				},
				MinDistance: defaultSpacing(),
				WaterColor:  "#4a7f9f",
				FogDensity:  0.0012,
			},
			{
				Name: "VOLCANIC",
				Thresholds: map[FeatureKind]float64{
					KindMassiveIsland: 0.006,
					KindStructure:     0.005,
					KindRockyIsland:   0.25,
					KindIsland:        0.08,
				},
				MinDistance: defaultSpacing(),
				WaterColor:  "#265c6e",
				FogDensity:  0.0016,
			},
		},
	}
}

func defaultSpacing() map[FeatureKind]float64 {
	return map[FeatureKind]float64{
		KindIsland:        300,
		KindIceberg:       200,
		KindSnowIsland:    250,
		KindRockyIsland:   250,
		KindMassiveIsland: 500,
		KindStructure:     400,
	}
}
