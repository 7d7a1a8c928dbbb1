package world

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
)

// Digest summarizes the streaming state (generated set + registry).
// Equal digests mean two sessions agree on world content; the tests
// lean on this for determinism checks.
func (w *World) Digest() string {
	lines := make([]string, 0, len(w.generated)+w.reg.len())
	for _, k := range w.GeneratedChunks() {
		lines = append(lines, fmt.Sprintf("chunk|%d|%d", k.CX, k.CZ))
	}
	for _, e := range w.reg.order {
		lines = append(lines, entityLine(e))
	}
	sort.Strings(lines)

	h := sha256.New()
	for _, l := range lines {
		h.Write([]byte(l))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func entityLine(e *Entity) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return fmt.Sprintf("ent|%s|%s|%s|%s|%s|%s|%t",
		e.ID, e.Kind,
		f(e.Collider.Center.X), f(e.Collider.Center.Y), f(e.Collider.Center.Z),
		f(e.Collider.Radius), e.Visible)
}
