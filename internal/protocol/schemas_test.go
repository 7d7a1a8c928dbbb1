package protocol_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"sailcraft/internal/protocol"
)

func TestSchemas_ValidateSamples(t *testing.T) {
	compile := func(name string) *jsonschema.Schema {
		t.Helper()
		p := filepath.Join("..", "..", "schemas", name)
		s, err := jsonschema.Compile(p)
		if err != nil {
			t.Fatalf("compile %s: %v", name, err)
		}
		return s
	}

	validate := func(s *jsonschema.Schema, v any) {
		t.Helper()
		if err := s.Validate(v); err != nil {
			t.Fatalf("validate: %v", err)
		}
	}

	helloSchema := compile("hello.schema.json")
	welcomeSchema := compile("welcome.schema.json")
	posSchema := compile("pos.schema.json")
	obsSchema := compile("obs.schema.json")

	var hello any
	_ = json.Unmarshal([]byte(`{
	  "type":"HELLO",
	  "protocol_version":"1.0",
	  "vessel_name":"pelican"
	}`), &hello)
	validate(helloSchema, hello)

	var welcome any
	_ = json.Unmarshal([]byte(`{
	  "type":"WELCOME",
	  "protocol_version":"1.0",
	  "session_id":"S1",
	  "vessel_id":"V1",
	  "world_params":{
	    "seed":12345,
	    "chunk_size":600,
	    "grid_n":4,
	    "render_distance":2,
	    "visible_distance":2000,
	    "retention_radius":3500,
	    "tick_rate_hz":10
	  }
	}`), &welcome)
	validate(welcomeSchema, welcome)

	var pos any
	_ = json.Unmarshal([]byte(`{
	  "type":"POS",
	  "protocol_version":"1.0",
	  "pos":[120.5,0,-340.25],
	  "heading":1.57
	}`), &pos)
	validate(posSchema, pos)

	var obs any
	_ = json.Unmarshal([]byte(`{
	  "type":"OBS",
	  "protocol_version":"1.0",
	  "tick":42,
	  "vessel_id":"V1",
	  "shown":[{
	    "id":"iceberg_450_-120",
	    "kind":"ICEBERG",
	    "pos":[450.7,0,-119.2],
	    "radius":64.5,
	    "descriptor":{"kind":"ICEBERG","seed":99,"radius":64.5,"height":31.2,"tilt_deg":-4.1,"drift":0.8,"fragment":false}
	  }],
	  "hidden":["island_10_10"],
	  "peers":[{"vessel_id":"V2","name":"gull","pos":[0,0,0],"heading":0}]
	}`), &obs)
	validate(obsSchema, obs)
}

func TestRoundTripMessages(t *testing.T) {
	in := protocol.ObsMsg{
		Type:            protocol.TypeObs,
		ProtocolVersion: protocol.Version,
		Tick:            7,
		VesselID:        "V1",
		Hidden:          []string{"island_1_1"},
	}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	base, err := protocol.DecodeBase(b)
	if err != nil {
		t.Fatalf("decode base: %v", err)
	}
	if base.Type != protocol.TypeObs || base.ProtocolVersion != protocol.Version {
		t.Fatalf("base = %+v", base)
	}
}

func TestKnownCodes(t *testing.T) {
	if !protocol.IsKnownCode(protocol.ErrRateLimit) {
		t.Fatal("rate limit code unknown")
	}
	if protocol.IsKnownCode("E_NOPE") {
		t.Fatal("bogus code accepted")
	}
}
