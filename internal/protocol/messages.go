package protocol

// HELLO (client -> server)
type HelloMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	VesselName      string `json:"vessel_name"`
}

// WELCOME (server -> client): session identity plus everything the
// client needs to generate the same world locally.
type WelcomeMsg struct {
	Type            string      `json:"type"`
	ProtocolVersion string      `json:"protocol_version"`
	SessionID       string      `json:"session_id"`
	VesselID        string      `json:"vessel_id"`
	World           WorldParams `json:"world_params"`
}

type WorldParams struct {
	Seed            int64   `json:"seed"`
	ChunkSize       float64 `json:"chunk_size"`
	GridN           int     `json:"grid_n"`
	RenderDistance  int     `json:"render_distance"`
	VisibleDistance float64 `json:"visible_distance"`
	RetentionRadius float64 `json:"retention_radius"`
	TickRateHz      int     `json:"tick_rate_hz"`
}

// POS (client -> server): vessel position report, rate limited.
type PosMsg struct {
	Type            string     `json:"type"`
	ProtocolVersion string     `json:"protocol_version"`
	Pos             [3]float64 `json:"pos"`
	Heading         float64    `json:"heading"`
}

// OBS (server -> client): one streaming frame. Shown carries full
// descriptors for entities that became visible since the last frame;
// Hidden lists ids that left view. Peers is every other vessel.
type ObsMsg struct {
	Type            string        `json:"type"`
	ProtocolVersion string        `json:"protocol_version"`
	Tick            uint64        `json:"tick"`
	VesselID        string        `json:"vessel_id"`
	Shown           []EntityState `json:"shown,omitempty"`
	Hidden          []string      `json:"hidden,omitempty"`
	Peers           []PeerState   `json:"peers,omitempty"`
}

type EntityState struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	Pos        [3]float64 `json:"pos"`
	Radius     float64    `json:"radius"`
	Descriptor any        `json:"descriptor,omitempty"`
}

type PeerState struct {
	VesselID string     `json:"vessel_id"`
	Name     string     `json:"name"`
	Pos      [3]float64 `json:"pos"`
	Heading  float64    `json:"heading"`
}

// BYE (either direction)
type ByeMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Reason          string `json:"reason,omitempty"`
}

// ERROR (server -> client)
type ErrorMsg struct {
	Type            string `json:"type"`
	ProtocolVersion string `json:"protocol_version"`
	Code            string `json:"code"`
	Message         string `json:"message,omitempty"`
}
