package world

// Event types recorded by the session event log.
const (
	EventChunkGenerated = "CHUNK_GENERATED"
	EventEntitySpawned  = "ENTITY_SPAWNED"
	EventEntityEvicted  = "ENTITY_EVICTED"
)

type Event struct {
	Tick uint64 `json:"tick"`
	Type string `json:"type"`

	ChunkX int `json:"cx,omitempty"`
	ChunkZ int `json:"cz,omitempty"`

	EntityID string      `json:"entity_id,omitempty"`
	Kind     FeatureKind `json:"kind,omitempty"`
	Pos      *Vec3       `json:"pos,omitempty"`
}

// EventSink receives world events as they happen. Implementations must
// not call back into the world.
type EventSink interface {
	WorldEvent(ev Event)
}
