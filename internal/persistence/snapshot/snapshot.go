// Package snapshot captures and restores a session's streaming state:
// the generated-chunk set and the live registry. Restoring reproduces
// the registry without rerunning generation, so a resumed session sees
// the ocean exactly as it was left.
package snapshot

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/klauspost/compress/zstd"

	"sailcraft/internal/sim/world"
)

const Version = 1

type Header struct {
	Version   int    `json:"version"`
	SessionID string `json:"session_id"`
	Tick      uint64 `json:"tick"`
}

type SnapshotV1 struct {
	Header Header `json:"header"`

	Seed      int64   `json:"seed"`
	ChunkSize float64 `json:"chunk_size"`

	Chunks   []ChunkV1  `json:"chunks"`
	Entities []EntityV1 `json:"entities"`
}

type ChunkV1 struct {
	CX int `json:"cx"`
	CZ int `json:"cz"`
}

type EntityV1 struct {
	ID      string     `json:"id"`
	Kind    string     `json:"kind"`
	Pos     [3]float64 `json:"pos"`
	Radius  float64    `json:"radius"`
	Visible bool       `json:"visible"`

	// The opaque handle, re-marshalled as produced by its factory.
	Descriptor json.RawMessage `json:"descriptor,omitempty"`
}

// Capture serializes the world's current streaming state.
func Capture(w *world.World, sessionID string) (*SnapshotV1, error) {
	snap := &SnapshotV1{
		Header:    Header{Version: Version, SessionID: sessionID, Tick: w.Tick()},
		Seed:      w.Seed(),
		ChunkSize: w.Config().ChunkSize,
	}
	for _, k := range w.GeneratedChunks() {
		snap.Chunks = append(snap.Chunks, ChunkV1{CX: k.CX, CZ: k.CZ})
	}
	for _, rec := range w.ExportEntities() {
		ev := EntityV1{
			ID:      rec.ID,
			Kind:    string(rec.Kind),
			Pos:     [3]float64{rec.Collider.Center.X, rec.Collider.Center.Y, rec.Collider.Center.Z},
			Radius:  rec.Collider.Radius,
			Visible: rec.Visible,
		}
		if rec.Handle != nil {
			raw, err := json.Marshal(rec.Handle)
			if err != nil {
				return nil, fmt.Errorf("entity %s: marshal handle: %w", rec.ID, err)
			}
			ev.Descriptor = raw
		}
		snap.Entities = append(snap.Entities, ev)
	}
	return snap, nil
}

// Restore replays a snapshot into a fresh world. The world must have
// been built with the same seed and chunk size the snapshot carries.
func Restore(w *world.World, snap *SnapshotV1) error {
	if snap.Header.Version != Version {
		return fmt.Errorf("snapshot version %d not supported", snap.Header.Version)
	}
	if w.Seed() != snap.Seed {
		return fmt.Errorf("snapshot seed %d does not match world seed %d", snap.Seed, w.Seed())
	}
	if w.Config().ChunkSize != snap.ChunkSize {
		return fmt.Errorf("snapshot chunk size %v does not match world %v", snap.ChunkSize, w.Config().ChunkSize)
	}
	for _, c := range snap.Chunks {
		w.RestoreChunk(world.ChunkKey{CX: c.CX, CZ: c.CZ})
	}
	for _, e := range snap.Entities {
		rec := world.EntityRecord{
			ID:   e.ID,
			Kind: world.FeatureKind(e.Kind),
			Collider: world.Collider{
				Center: world.Vec3{X: e.Pos[0], Y: e.Pos[1], Z: e.Pos[2]},
				Radius: e.Radius,
			},
			Visible: e.Visible,
		}
		if len(e.Descriptor) > 0 {
			rec.Handle = e.Descriptor
		}
		if err := w.RestoreEntity(rec); err != nil {
			return err
		}
	}
	return nil
}

// Write stores a snapshot as zstd-compressed JSON.
func Write(path string, snap *SnapshotV1) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return err
	}
	bw := bufio.NewWriter(enc)
	if err := json.NewEncoder(bw).Encode(snap); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Read loads a snapshot written by Write.
func Read(path string) (*SnapshotV1, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	var snap SnapshotV1
	if err := json.NewDecoder(dec).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	return &snap, nil
}

// Latest returns the newest snapshot path in dir, or "" when none
// exist. Filenames carry the tick, so lexical order is enough.
func Latest(dir string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".snap.zst") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return filepath.Join(dir, names[len(names)-1])
}

// PathFor names a snapshot file for a tick, zero-padded so Latest can
// sort lexically.
func PathFor(dir string, tick uint64) string {
	return filepath.Join(dir, fmt.Sprintf("%012d.snap.zst", tick))
}
