// Package indexdb keeps a queryable sqlite index alongside the JSONL
// logs: sessions, snapshot metadata, and per-tick generation stats.
// All writes funnel through one goroutine; the sim never blocks on it.
package indexdb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite"
)

type SQLiteIndex struct {
	db *sql.DB

	ch   chan req
	wg   sync.WaitGroup
	once sync.Once

	closed atomic.Bool
}

type reqKind int

const (
	reqSession reqKind = iota + 1
	reqSnapshot
	reqGenStats
	reqFlush
)

type req struct {
	kind reqKind

	session  sessionRow
	snapshot SnapshotRow
	genStats GenStatsRow
	done     chan struct{}
}

type sessionRow struct {
	ID        string
	Name      string
	Seed      int64
	StartedAt string
}

type SnapshotRow struct {
	SessionID string
	Tick      uint64
	Path      string
	Seed      int64
	Chunks    int
	Entities  int
}

type GenStatsRow struct {
	SessionID        string
	Tick             uint64
	ChunksGenerated  uint64
	EntitiesSpawned  uint64
	EntitiesEvicted  uint64
	SpawnsDeclined   uint64
	SpawnsCrowdedOut uint64
}

func OpenSQLite(path string) (*SQLiteIndex, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &SQLiteIndex{
		db: db,
		ch: make(chan req, 4096),
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return s, nil
}

func initPragmas(db *sql.DB) error {
	// WAL is much faster for append-style workloads.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			seed INTEGER NOT NULL,
			started_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS snapshots (
			session_id TEXT NOT NULL,
			tick INTEGER NOT NULL,
			path TEXT NOT NULL,
			seed INTEGER NOT NULL,
			chunks INTEGER NOT NULL,
			entities INTEGER NOT NULL,
			PRIMARY KEY (session_id, tick)
		);`,
		`CREATE TABLE IF NOT EXISTS gen_stats (
			session_id TEXT NOT NULL,
			tick INTEGER NOT NULL,
			chunks_generated INTEGER NOT NULL,
			entities_spawned INTEGER NOT NULL,
			entities_evicted INTEGER NOT NULL,
			spawns_declined INTEGER NOT NULL,
			spawns_crowded_out INTEGER NOT NULL,
			PRIMARY KEY (session_id, tick)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_gen_stats_tick ON gen_stats(tick);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteIndex) Close() error {
	var err error
	s.once.Do(func() {
		s.closed.Store(true)
		close(s.ch)
		s.wg.Wait()
		err = s.db.Close()
	})
	return err
}

func (s *SQLiteIndex) RecordSession(id, name string, seed int64) {
	if s == nil || s.closed.Load() {
		return
	}
	r := sessionRow{ID: id, Name: name, Seed: seed, StartedAt: time.Now().UTC().Format(time.RFC3339)}
	select {
	case s.ch <- req{kind: reqSession, session: r}:
	default:
		// Drop if the indexer falls behind; JSONL logs remain the
		// source of truth.
	}
}

func (s *SQLiteIndex) RecordSnapshot(r SnapshotRow) {
	if s == nil || s.closed.Load() {
		return
	}
	select {
	case s.ch <- req{kind: reqSnapshot, snapshot: r}:
	default:
	}
}

func (s *SQLiteIndex) RecordGenStats(r GenStatsRow) {
	if s == nil || s.closed.Load() {
		return
	}
	select {
	case s.ch <- req{kind: reqGenStats, genStats: r}:
	default:
	}
}

func (s *SQLiteIndex) loop() {
	for r := range s.ch {
		switch r.kind {
		case reqSession:
			_, _ = s.db.Exec(
				`INSERT OR REPLACE INTO sessions (id, name, seed, started_at) VALUES (?, ?, ?, ?)`,
				r.session.ID, r.session.Name, r.session.Seed, r.session.StartedAt)
		case reqSnapshot:
			_, _ = s.db.Exec(
				`INSERT OR REPLACE INTO snapshots (session_id, tick, path, seed, chunks, entities) VALUES (?, ?, ?, ?, ?, ?)`,
				r.snapshot.SessionID, r.snapshot.Tick, r.snapshot.Path, r.snapshot.Seed, r.snapshot.Chunks, r.snapshot.Entities)
		case reqGenStats:
			_, _ = s.db.Exec(
				`INSERT OR REPLACE INTO gen_stats (session_id, tick, chunks_generated, entities_spawned, entities_evicted, spawns_declined, spawns_crowded_out) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				r.genStats.SessionID, r.genStats.Tick, r.genStats.ChunksGenerated, r.genStats.EntitiesSpawned,
				r.genStats.EntitiesEvicted, r.genStats.SpawnsDeclined, r.genStats.SpawnsCrowdedOut)
		case reqFlush:
			close(r.done)
		}
	}
}

// Flush blocks until every previously queued write has been applied.
func (s *SQLiteIndex) Flush() {
	if s == nil || s.closed.Load() {
		return
	}
	done := make(chan struct{})
	s.ch <- req{kind: reqFlush, done: done}
	<-done
}

// Counts are read-side helpers for the admin surface and tests.

func (s *SQLiteIndex) CountSessions() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&n)
	return n, err
}

func (s *SQLiteIndex) CountSnapshots(sessionID string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM snapshots WHERE session_id = ?`, sessionID).Scan(&n)
	return n, err
}

func (s *SQLiteIndex) LatestGenStats(sessionID string) (GenStatsRow, error) {
	var r GenStatsRow
	r.SessionID = sessionID
	err := s.db.QueryRow(
		`SELECT tick, chunks_generated, entities_spawned, entities_evicted, spawns_declined, spawns_crowded_out
		 FROM gen_stats WHERE session_id = ? ORDER BY tick DESC LIMIT 1`, sessionID).
		Scan(&r.Tick, &r.ChunksGenerated, &r.EntitiesSpawned, &r.EntitiesEvicted, &r.SpawnsDeclined, &r.SpawnsCrowdedOut)
	return r, err
}
