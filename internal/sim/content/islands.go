package content

import (
	"sailcraft/internal/sim/world"
	"sailcraft/internal/sim/world/logic/seedseq"
)

// IslandDescriptor parameterizes an ordinary tropical island.
type IslandDescriptor struct {
	Kind       string  `json:"kind"`
	Seed       int64   `json:"seed"`
	Radius     float64 `json:"radius"`
	PeakHeight float64 `json:"peak_height"`
	BeachWidth float64 `json:"beach_width"`
	PalmCount  int     `json:"palm_count"`
	RockCount  int     `json:"rock_count"`
}

type IslandFactory struct{}

func (IslandFactory) Create(x, z float64, seed int64, parent world.Container) *world.Spawn {
	seq := seedseq.New(seed)
	radius := seq.NextIn(70, 180)
	desc := &IslandDescriptor{
		Kind:       "ISLAND",
		Seed:       seed,
		Radius:     radius,
		PeakHeight: seq.NextIn(20, 90),
		BeachWidth: seq.NextIn(8, 25),
		PalmCount:  2 + seq.NextInt(9),
		RockCount:  seq.NextInt(6),
	}
	return &world.Spawn{
		Handle: desc,
		Collider: world.Collider{
			Center: world.Vec3{X: x, Z: z},
			Radius: radius + desc.BeachWidth,
		},
	}
}

// SnowIslandDescriptor is the arctic variant: pine cover instead of
// palms, snow cap height instead of beaches.
type SnowIslandDescriptor struct {
	Kind       string  `json:"kind"`
	Seed       int64   `json:"seed"`
	Radius     float64 `json:"radius"`
	PeakHeight float64 `json:"peak_height"`
	SnowLine   float64 `json:"snow_line"`
	PineCount  int     `json:"pine_count"`
}

type SnowIslandFactory struct{}

func (SnowIslandFactory) Create(x, z float64, seed int64, parent world.Container) *world.Spawn {
	seq := seedseq.New(seed)
	radius := seq.NextIn(60, 150)
	peak := seq.NextIn(40, 120)
	desc := &SnowIslandDescriptor{
		Kind:       "SNOW_ISLAND",
		Seed:       seed,
		Radius:     radius,
		PeakHeight: peak,
		SnowLine:   peak * seq.NextIn(0.3, 0.6),
		PineCount:  seq.NextInt(12),
	}
	return &world.Spawn{
		Handle:   desc,
		Collider: world.Collider{Center: world.Vec3{X: x, Z: z}, Radius: radius},
	}
}

// RockyIslandDescriptor is a cluster of bare spires; no landing spots.
type RockyIslandDescriptor struct {
	Kind        string  `json:"kind"`
	Seed        int64   `json:"seed"`
	Radius      float64 `json:"radius"`
	SpireCount  int     `json:"spire_count"`
	SpireHeight float64 `json:"spire_height"`
}

type RockyIslandFactory struct{}

func (RockyIslandFactory) Create(x, z float64, seed int64, parent world.Container) *world.Spawn {
	seq := seedseq.New(seed)
	radius := seq.NextIn(40, 110)
	desc := &RockyIslandDescriptor{
		Kind:        "ROCKY_ISLAND",
		Seed:        seed,
		Radius:      radius,
		SpireCount:  1 + seq.NextInt(5),
		SpireHeight: seq.NextIn(15, 70),
	}
	return &world.Spawn{
		Handle:   desc,
		Collider: world.Collider{Center: world.Vec3{X: x, Z: z}, Radius: radius},
	}
}
