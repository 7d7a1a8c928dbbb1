// Package ws serves the game's websocket surface: seed handoff on
// connect, vessel position ingestion, streaming frames back, and peer
// position sharing between sessions.
package ws

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"sailcraft/internal/protocol"
	"sailcraft/internal/sim/tuning"
	"sailcraft/internal/sim/world"
)

type Config struct {
	Tuning tuning.Tuning
	Seed   int64

	// NewWorld builds the server-side mirror world for one session.
	NewWorld func(sessionID string) (*world.World, error)

	// Optional lifecycle callbacks, called from the connection
	// goroutine.
	OnSessionStart func(sessionID, vesselName string)
	OnSessionEnd   func(sessionID string, w *world.World)
}

type Server struct {
	cfg Config
	log *log.Logger
	hub *Hub

	nextSession atomic.Uint64

	upgrader websocket.Upgrader
}

func NewServer(cfg Config, logger *log.Logger) *Server {
	return &Server{
		cfg: cfg,
		log: logger,
		hub: NewHub(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		s.serveConn(conn)
	}
}

type session struct {
	id       string
	vesselID string
	name     string

	w     *world.World
	shown map[string]bool

	// POS rate limiting.
	windowStart time.Time
	windowCount int
	warned      bool
}

func (s *Server) serveConn(conn *websocket.Conn) {
	sess := s.handshake(conn)
	if sess == nil {
		return
	}
	defer func() {
		s.hub.Remove(sess.vesselID)
		if s.cfg.OnSessionEnd != nil {
			s.cfg.OnSessionEnd(sess.id, sess.w)
		}
	}()

	if s.cfg.OnSessionStart != nil {
		s.cfg.OnSessionStart(sess.id, sess.name)
	}

	for {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		base, err := protocol.DecodeBase(msg)
		if err != nil {
			continue
		}
		switch base.Type {
		case protocol.TypePos:
			var pos protocol.PosMsg
			if err := json.Unmarshal(msg, &pos); err != nil {
				continue
			}
			if pos.ProtocolVersion != protocol.Version {
				continue
			}
			s.handlePos(conn, sess, pos)
		case protocol.TypeBye:
			return
		default:
			// Unknown types are ignored; forward compatibility.
		}
	}
}

func (s *Server) handshake(conn *websocket.Conn) *session {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return nil
	}

	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeHello {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "expected HELLO"),
			time.Now().Add(time.Second))
		return nil
	}

	var hello protocol.HelloMsg
	if err := json.Unmarshal(msg, &hello); err != nil {
		s.writeJSON(conn, protocol.NewError(protocol.ErrProtoBadRequest, "malformed HELLO"))
		return nil
	}
	if hello.ProtocolVersion != protocol.Version {
		s.writeJSON(conn, protocol.NewError(protocol.ErrProtoVersionUnknown,
			fmt.Sprintf("server speaks %s", protocol.Version)))
		return nil
	}
	if hello.VesselName == "" {
		s.writeJSON(conn, protocol.NewError(protocol.ErrProtoBadRequest, "vessel_name required"))
		return nil
	}

	n := s.nextSession.Add(1)
	sess := &session{
		id:       fmt.Sprintf("S%d", n),
		vesselID: fmt.Sprintf("V%d", n),
		name:     hello.VesselName,
		shown:    map[string]bool{},
	}
	w, err := s.cfg.NewWorld(sess.id)
	if err != nil {
		s.log.Printf("session %s: world: %v", sess.id, err)
		s.writeJSON(conn, protocol.NewError(protocol.ErrInternal, "world init failed"))
		return nil
	}
	sess.w = w

	t := s.cfg.Tuning
	welcome := protocol.WelcomeMsg{
		Type:            protocol.TypeWelcome,
		ProtocolVersion: protocol.Version,
		SessionID:       sess.id,
		VesselID:        sess.vesselID,
		World: protocol.WorldParams{
			Seed:            s.cfg.Seed,
			ChunkSize:       t.ChunkSize,
			GridN:           t.GridN,
			RenderDistance:  t.RenderDistance,
			VisibleDistance: t.VisibleDistance,
			RetentionRadius: t.RetentionRadius,
			TickRateHz:      t.TickRateHz,
		},
	}
	if !s.writeJSON(conn, welcome) {
		return nil
	}
	return sess
}

func (s *Server) handlePos(conn *websocket.Conn, sess *session, pos protocol.PosMsg) {
	if !s.allowPos(sess) {
		if !sess.warned {
			sess.warned = true
			s.writeJSON(conn, protocol.NewError(protocol.ErrRateLimit, "position reports too frequent"))
		}
		return
	}

	p := world.Vec3{X: pos.Pos[0], Y: pos.Pos[1], Z: pos.Pos[2]}
	sess.w.Update(p)

	s.hub.Set(protocol.PeerState{
		VesselID: sess.vesselID,
		Name:     sess.name,
		Pos:      pos.Pos,
		Heading:  pos.Heading,
	})

	s.writeJSON(conn, s.buildObs(sess))
}

// buildObs diffs current visibility against what the client already
// holds: full descriptors for newly shown entities, bare ids for ones
// that left view.
func (s *Server) buildObs(sess *session) protocol.ObsMsg {
	obs := protocol.ObsMsg{
		Type:            protocol.TypeObs,
		ProtocolVersion: protocol.Version,
		Tick:            sess.w.Tick(),
		VesselID:        sess.vesselID,
		Peers:           s.hub.Others(sess.vesselID),
	}

	current := map[string]bool{}
	for _, e := range sess.w.Entities() {
		if !e.Visible {
			continue
		}
		current[e.ID] = true
		if sess.shown[e.ID] {
			continue
		}
		c := e.Collider
		obs.Shown = append(obs.Shown, protocol.EntityState{
			ID:         e.ID,
			Kind:       string(e.Kind),
			Pos:        [3]float64{c.Center.X, c.Center.Y, c.Center.Z},
			Radius:     c.Radius,
			Descriptor: e.Handle,
		})
	}
	for id := range sess.shown {
		if !current[id] {
			obs.Hidden = append(obs.Hidden, id)
		}
	}
	sess.shown = current
	return obs
}

// allowPos enforces the POS rate limit from tuning: at most pos_max
// reports per pos_window_ticks worth of wall time.
func (s *Server) allowPos(sess *session) bool {
	t := s.cfg.Tuning
	window := time.Duration(t.RateLimits.PosWindowTicks) * time.Second / time.Duration(t.TickRateHz)
	if window <= 0 {
		return true
	}
	now := time.Now()
	if sess.windowStart.IsZero() || now.Sub(sess.windowStart) >= window {
		sess.windowStart = now
		sess.windowCount = 0
		sess.warned = false
	}
	sess.windowCount++
	return sess.windowCount <= t.RateLimits.PosMax
}

func (s *Server) writeJSON(conn *websocket.Conn, v any) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	b, err := json.Marshal(v)
	if err != nil {
		return false
	}
	return conn.WriteMessage(websocket.TextMessage, b) == nil
}
