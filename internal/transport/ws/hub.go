package ws

import (
	"sort"
	"sync"

	"sailcraft/internal/protocol"
)

// Hub is the position-sharing rendezvous: every connected vessel's
// last reported state, readable by every other session.
type Hub struct {
	mu    sync.Mutex
	peers map[string]protocol.PeerState
}

func NewHub() *Hub {
	return &Hub{peers: map[string]protocol.PeerState{}}
}

func (h *Hub) Set(p protocol.PeerState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.peers[p.VesselID] = p
}

func (h *Hub) Remove(vesselID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.peers, vesselID)
}

// Others returns every peer except the given vessel, sorted by id so
// frames are stable.
func (h *Hub) Others(vesselID string) []protocol.PeerState {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]protocol.PeerState, 0, len(h.peers))
	for id, p := range h.peers {
		if id == vesselID {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VesselID < out[j].VesselID })
	return out
}
