package content

import (
	"sailcraft/internal/sim/world"
	"sailcraft/internal/sim/world/logic/seedseq"
)

type IcebergDescriptor struct {
	Kind     string  `json:"kind"`
	Seed     int64   `json:"seed"`
	Radius   float64 `json:"radius"`
	Height   float64 `json:"height"`
	TiltDeg  float64 `json:"tilt_deg"`
	Drift    float64 `json:"drift"` // cosmetic bob/drift amplitude
	Fragment bool    `json:"fragment"`
}

type IcebergFactory struct{}

func (IcebergFactory) Create(x, z float64, seed int64, parent world.Container) *world.Spawn {
	seq := seedseq.New(seed)
	radius := seq.NextIn(30, 120)
	desc := &IcebergDescriptor{
		Kind:     "ICEBERG",
		Seed:     seed,
		Radius:   radius,
		Height:   seq.NextIn(10, 60),
		TiltDeg:  seq.NextIn(-12, 12),
		Drift:    seq.NextIn(0.2, 1.4),
		Fragment: seq.Next() < 0.25,
	}
	return &world.Spawn{
		Handle:   desc,
		Collider: world.Collider{Center: world.Vec3{X: x, Z: z}, Radius: radius},
	}
}
