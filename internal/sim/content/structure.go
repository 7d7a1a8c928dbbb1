package content

import (
	"sailcraft/internal/sim/world"
	"sailcraft/internal/sim/world/logic/seedseq"
)

// StructureDescriptor covers free-standing sea structures: shipwrecks,
// lighthouses on shoals, drowned temples, ice sculptures.
type StructureDescriptor struct {
	Kind      string  `json:"kind"`
	Seed      int64   `json:"seed"`
	Variant   string  `json:"variant"`
	Radius    float64 `json:"radius"`
	Height    float64 `json:"height"`
	Submerged float64 `json:"submerged"` // 0..1 fraction under water
}

type StructureFactory struct{}

var structureVariants = []string{"WRECK", "LIGHTHOUSE", "TEMPLE", "ICE_SCULPTURE"}

func (StructureFactory) Create(x, z float64, seed int64, parent world.Container) *world.Spawn {
	seq := seedseq.New(seed)
	// A structure needs a stable shoal under it; roughly a third of
	// candidate sites don't have one.
	if seq.Next() < 0.35 {
		return nil
	}
	radius := seq.NextIn(25, 80)
	desc := &StructureDescriptor{
		Kind:      "STRUCTURE",
		Seed:      seed,
		Variant:   structureVariants[seq.NextInt(len(structureVariants))],
		Radius:    radius,
		Height:    seq.NextIn(15, 90),
		Submerged: seq.NextIn(0, 0.5),
	}
	return &world.Spawn{
		Handle:   desc,
		Collider: world.Collider{Center: world.Vec3{X: x, Z: z}, Radius: radius},
	}
}
