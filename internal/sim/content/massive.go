package content

import (
	"sailcraft/internal/sim/world"
	"sailcraft/internal/sim/world/logic/seedseq"
)

// MassiveIslandDescriptor is the rare centerpiece island: big enough
// to carry a cave system and a crowning structure.
type MassiveIslandDescriptor struct {
	Kind        string  `json:"kind"`
	Seed        int64   `json:"seed"`
	Radius      float64 `json:"radius"`
	PeakHeight  float64 `json:"peak_height"`
	HasCave     bool    `json:"has_cave"`
	CaveDepth   float64 `json:"cave_depth,omitempty"`
	CrownedWith string  `json:"crowned_with"` // TEMPLE, LIGHTHOUSE or NONE
	RidgeCount  int     `json:"ridge_count"`
}

type MassiveIslandFactory struct{}

func (MassiveIslandFactory) Create(x, z float64, seed int64, parent world.Container) *world.Spawn {
	seq := seedseq.New(seed)
	radius := seq.NextIn(250, 450)
	desc := &MassiveIslandDescriptor{
		Kind:       "MASSIVE_ISLAND",
		Seed:       seed,
		Radius:     radius,
		PeakHeight: seq.NextIn(120, 300),
		RidgeCount: 3 + seq.NextInt(5),
	}
	if seq.Next() < 0.6 {
		desc.HasCave = true
		desc.CaveDepth = seq.NextIn(30, 100)
	}
	switch seq.NextInt(3) {
	case 0:
		desc.CrownedWith = "TEMPLE"
	case 1:
		desc.CrownedWith = "LIGHTHOUSE"
	default:
		desc.CrownedWith = "NONE"
	}
	return &world.Spawn{
		Handle:   desc,
		Collider: world.Collider{Center: world.Vec3{X: x, Z: z}, Radius: radius},
	}
}
