// Package feed streams a running simulation to read-only spectators over
// WebSocket. The world plays itself in attract mode; every connection
// receives the same frames.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-pacman/internal/games/pacman/sim"
)

// Config controls the broadcast loop.
type Config struct {
	TickRate       int // simulation ticks per second
	BroadcastEvery int // ticks between frames sent to spectators
	Logger         *log.Logger
}

// DefaultConfig runs at 60 ticks per second and sends 30 frames.
func DefaultConfig() Config {
	return Config{TickRate: 60, BroadcastEvery: 2}
}

// Server owns the world, steps it and publishes its frames.
type Server struct {
	cfg      Config
	hub      *Hub
	log      *log.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	world   *sim.World
	pending []sim.Event
	latest  []byte // last frame message
}

// NewServer wraps world. The server is the only one to step it.
func NewServer(world *sim.World, cfg Config) *Server {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.BroadcastEvery <= 0 {
		cfg.BroadcastEvery = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		cfg:   cfg,
		hub:   NewHub(logger),
		log:   logger,
		world: world,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	s.publish()
	return s
}

// Hub returns the spectator hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the HTTP routes: /ws for the stream, /frame for a single
// JSON frame and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	mux.HandleFunc("GET /frame", s.handleFrame)
	mux.HandleFunc("GET /health", handleHealth)
	return mux
}

// Run steps the world at the tick rate until ctx ends, then disconnects
// every spectator.
func (s *Server) Run(ctx context.Context) {
	go s.hub.closeWhenDone(ctx)

	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step()
		}
	}
}

// Step advances the world one tick and broadcasts when a frame is due.
func (s *Server) Step() {
	s.mu.Lock()
	res := s.world.Step(sim.Input{})
	s.pending = append(s.pending, res.Events...)
	due := res.Tick%uint64(s.cfg.BroadcastEvery) == 0
	s.mu.Unlock()

	if due {
		s.hub.Broadcast(s.publish())
	}
}

// publish encodes the current frame with the pending events and stores it
// as the latest message.
func (s *Server) publish() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := encode(newFrameMessage(s.world.Snapshot(), s.pending))
	if err != nil {
		s.log.Error("cannot encode frame", "error", err)
		return s.latest
	}
	s.pending = nil
	s.latest = data
	return data
}

// Latest returns the most recently published frame message.
func (s *Server) Latest() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := newClient(uuid.NewString(), s.hub, conn)

	hello, err := encode(Message{Type: TypeHello, Client: c.ID, Tick: s.tick()})
	if err == nil {
		c.send <- hello
	}
	if latest := s.Latest(); latest != nil {
		c.send <- latest
	}

	if !s.hub.register(c) {
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

func (s *Server) tick() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.world.Tick()
}

func (s *Server) handleFrame(w http.ResponseWriter, _ *http.Request) {
	latest := s.Latest()
	if latest == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // client went away
	w.Write(latest)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	//nolint:errcheck // client went away
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// ListenAndServe serves the feed on addr and steps the world until ctx
// ends.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.Run(ctx)

	errc := make(chan error, 1)
	go func() {
		s.log.Info("feed listening", "address", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
