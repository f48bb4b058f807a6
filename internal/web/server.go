package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/coder/websocket"

	"mazeforge/internal/maze"
)

// Server serves the browser preview. Regeneration is serialised by mu so
// every client always sees a complete maze.
type Server struct {
	mu        sync.Mutex
	level     *maze.Level
	overrides map[string]string
	sequence  uint64

	hub    *Hub
	logger *log.Logger
}

// NewServer generates the first maze for preset and returns a ready server.
// overrides use the same keys as maze.FromMap.
func NewServer(preset string, overrides map[string]string, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	level, err := newLevel(preset, overrides)
	if err != nil {
		return nil, err
	}
	if err := level.Reset(level.Seed()); err != nil {
		return nil, err
	}
	return &Server{level: level, overrides: overrides, hub: NewHub(), logger: logger}, nil
}

func newLevel(preset string, overrides map[string]string) (*maze.Level, error) {
	cfg, err := maze.ConfigForPreset(preset, overrides)
	if err != nil {
		return nil, err
	}
	return maze.NewLevel(preset, cfg), nil
}

// Hub exposes the client registry.
func (s *Server) Hub() *Hub { return s.hub }

// Handler returns the routes of the preview.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/stream", s.handleStream)
	mux.HandleFunc("/maze.json", s.handleMaze)
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

// Current returns a snapshot of the shared maze.
func (s *Server) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SnapshotOf(s.level)
}

// Regenerate rebuilds the shared maze and broadcasts it to every client. An
// empty preset keeps the current one. On failure the previous maze stays.
func (s *Server) Regenerate(seed int64, preset string) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regenerate(seed, preset)
}

// apply runs a stream intent against the shared maze.
func (s *Server) apply(in Intent) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seed := s.level.Seed()
	if in.Seed != nil {
		seed = *in.Seed
	}
	return s.regenerate(seed, in.Preset)
}

// regenerate must be called with mu held.
func (s *Server) regenerate(seed int64, preset string) (Snapshot, error) {
	level := s.level
	if preset != "" && preset != level.Name() {
		next, err := newLevel(preset, s.overrides)
		if err != nil {
			return Snapshot{}, err
		}
		level = next
	}
	if err := level.Reset(seed); err != nil {
		return Snapshot{}, err
	}
	s.level = level
	snap := SnapshotOf(level)
	s.logger.Printf("web: regenerated %s seed %d (%d clients)", snap.Preset, snap.Seed, s.hub.Len())
	s.broadcast(TypeSnapshot, snap)
	return snap, nil
}

func (s *Server) envelope(typ string, payload any) ([]byte, error) {
	s.sequence++
	return json.Marshal(Envelope{Sequence: s.sequence, Type: typ, Payload: payload})
}

// broadcast must be called with mu held.
func (s *Server) broadcast(typ string, payload any) {
	b, err := s.envelope(typ, payload)
	if err != nil {
		s.logger.Printf("web: encode %s: %v", typ, err)
		return
	}
	s.hub.Broadcast(b)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := IndexPage(s.Current()).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleMaze builds a one-off maze for the query without touching the
// shared one.
func (s *Server) handleMaze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	preset := q.Get("preset")
	if preset == "" {
		s.mu.Lock()
		preset = s.level.Name()
		s.mu.Unlock()
	}
	level, err := newLevel(preset, s.overrides)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	seed := level.Seed()
	if raw := q.Get("seed"); raw != "" {
		if seed, err = strconv.ParseInt(raw, 10, 64); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("bad seed %q", raw))
			return
		}
	}
	if err := level.Reset(seed); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, maze.ErrInsufficientSize) || errors.Is(err, maze.ErrInvalidConfiguration) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(SnapshotOf(level))
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorPayload{Error: err.Error()})
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}

	// Register and greet under the lock so no broadcast lands before the
	// first snapshot.
	s.mu.Lock()
	s.hub.Add(conn)
	hello, err := s.envelope(TypeSnapshot, SnapshotOf(s.level))
	if err == nil {
		ctx, cancel := context.WithTimeout(r.Context(), writeTimeout)
		err = conn.Write(ctx, websocket.MessageText, hello)
		cancel()
	}
	s.mu.Unlock()
	if err != nil {
		s.hub.Remove(conn)
		_ = conn.Close(websocket.StatusInternalError, "greeting failed")
		return
	}

	defer s.hub.Remove(conn)
	defer conn.Close(websocket.StatusNormalClosure, "")
	for {
		_, data, err := conn.Read(context.Background())
		if err != nil {
			return
		}
		var intent Intent
		if err := json.Unmarshal(data, &intent); err != nil {
			continue
		}
		switch intent.Type {
		case IntentRegenerate:
			if _, err := s.apply(intent); err != nil {
				s.replyError(conn, err)
			}
		}
	}
}

func (s *Server) replyError(conn *websocket.Conn, cause error) {
	s.mu.Lock()
	b, err := s.envelope(TypeError, ErrorPayload{Error: cause.Error()})
	s.mu.Unlock()
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	_ = conn.Write(ctx, websocket.MessageText, b)
}
