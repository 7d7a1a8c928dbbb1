package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"sailcraft/internal/persistence/indexdb"
	persistlog "sailcraft/internal/persistence/log"
	"sailcraft/internal/persistence/snapshot"
	"sailcraft/internal/sim/content"
	"sailcraft/internal/sim/tuning"
	"sailcraft/internal/sim/world"
	"sailcraft/internal/transport/ws"
)

func main() {
	var (
		addr       = flag.String("addr", ":8080", "http listen address")
		seed       = flag.Int64("seed", 1337, "world seed shared by every session")
		dataDir    = flag.String("data", "./data", "runtime data directory")
		tuningPath = flag.String("tuning", "./configs/tuning.yaml", "path to tuning.yaml")
		disableDB  = flag.Bool("disable_db", false, "disable the sqlite session index")
	)
	flag.Parse()

	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lmicroseconds)

	tune, err := tuning.Load(strings.TrimSpace(*tuningPath))
	if err != nil {
		if os.IsNotExist(err) {
			logger.Printf("tuning not found (%s); using defaults", *tuningPath)
			tune = tuning.Default()
		} else {
			logger.Fatalf("load tuning: %v", err)
		}
	}

	events := persistlog.NewEventLogger(*dataDir)
	defer events.Close()

	var idx *indexdb.SQLiteIndex
	if !*disableDB {
		idx, err = indexdb.OpenSQLite(filepath.Join(*dataDir, "index.db"))
		if err != nil {
			logger.Fatalf("open index db: %v", err)
		}
		defer idx.Close()
	}

	srv := ws.NewServer(ws.Config{
		Tuning: tune,
		Seed:   *seed,
		NewWorld: func(sessionID string) (*world.World, error) {
			return world.New(tune.WorldConfig(*seed), world.Deps{
				Factories: content.DefaultFactories(),
				Biomes:    tune.BiomeResolver(),
				Container: content.NewScene(),
				Events:    events.ForSession(sessionID),
				Log:       logger,
			})
		},
		OnSessionStart: func(sessionID, vesselName string) {
			idx.RecordSession(sessionID, vesselName, *seed)
			logger.Printf("session %s: vessel %q joined", sessionID, vesselName)
		},
		OnSessionEnd: func(sessionID string, w *world.World) {
			st := w.Stats()
			idx.RecordGenStats(indexdb.GenStatsRow{
				SessionID:        sessionID,
				Tick:             w.Tick(),
				ChunksGenerated:  st.ChunksGenerated,
				EntitiesSpawned:  st.EntitiesSpawned,
				EntitiesEvicted:  st.EntitiesEvicted,
				SpawnsDeclined:   st.SpawnsDeclined,
				SpawnsCrowdedOut: st.SpawnsCrowdedOut,
			})

			snap, err := snapshot.Capture(w, sessionID)
			if err != nil {
				logger.Printf("session %s: capture snapshot: %v", sessionID, err)
				return
			}
			path := snapshot.PathFor(filepath.Join(*dataDir, "snapshots", sessionID), w.Tick())
			if err := snapshot.Write(path, snap); err != nil {
				logger.Printf("session %s: write snapshot: %v", sessionID, err)
				return
			}
			idx.RecordSnapshot(indexdb.SnapshotRow{
				SessionID: sessionID,
				Tick:      w.Tick(),
				Path:      path,
				Seed:      w.Seed(),
				Chunks:    len(snap.Chunks),
				Entities:  len(snap.Entities),
			})
			logger.Printf("session %s: ended at tick %d, %d chunks %d entities snapshotted",
				sessionID, w.Tick(), len(snap.Chunks), len(snap.Entities))
		},
	}, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(200)
		_, _ = rw.Write([]byte("ok"))
	})
	mux.HandleFunc("/v1/ws", srv.Handler())

	httpSrv := &http.Server{
		Addr:              *addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, cancel := signalContext()
	defer cancel()
	go func() {
		<-ctx.Done()
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel2()
		_ = httpSrv.Shutdown(ctx2)
	}()

	logger.Printf("listening on %s (seed=%d)", *addr, *seed)
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("ListenAndServe: %v", err)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx, cancel
}
