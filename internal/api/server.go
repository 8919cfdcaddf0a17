// Package api exposes the battle engine over HTTP. Battles live in memory
// for their whole run; the store keeps the replay recipe and log records so
// finished battles can be rebuilt deterministically.
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"github.com/vgcsim/vgc-replay-go/internal/batch"
	"github.com/vgcsim/vgc-replay-go/internal/battle"
	"github.com/vgcsim/vgc-replay-go/internal/dex"
	"github.com/vgcsim/vgc-replay-go/internal/errs"
	"github.com/vgcsim/vgc-replay-go/internal/store"
)

// Server handles HTTP requests.
type Server struct {
	db       *store.Store
	reg      *dex.Registry
	runner   *batch.Runner
	logger   *log.Logger
	timeout  time.Duration
	upgrader websocket.Upgrader

	mu      sync.Mutex
	battles map[string]*liveBattle
}

// liveBattle is one in-memory battle plus its stream subscribers. All
// engine access serializes on mu; the engine itself is single-threaded.
type liveBattle struct {
	id string

	mu     sync.Mutex
	b      *battle.Battle
	seq    int64 // stored action sets
	recSeq int64 // stored log records
	subs   map[chan battle.Record]struct{}
}

// Options configures the server.
type Options struct {
	Registry       *dex.Registry
	BatchWorkers   int
	ScriptTimeout  time.Duration
	RequestTimeout time.Duration
	Logger         *log.Logger
}

// NewServer creates an API server over the given replay store.
func NewServer(db *store.Store, opts Options) *Server {
	reg := opts.Registry
	if reg == nil {
		reg = dex.Gen9()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	runner := batch.NewRunner(opts.BatchWorkers)
	runner.SetScriptTimeout(opts.ScriptTimeout)
	return &Server{
		db:      db,
		reg:     reg,
		runner:  runner,
		logger:  logger,
		timeout: timeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		battles: map[string]*liveBattle{},
	}
}

// Routes sets up the HTTP routes.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/health"))
	r.Use(s.logRequests)

	r.Get("/health/live", s.handleHealthLive)
	r.Get("/health/ready", s.handleHealthReady)

	r.Route("/api/v1", func(r chi.Router) {
		// The stream endpoint holds its connection open, so the request
		// timeout applies to everything else.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(s.timeout))
			r.Post("/battles", s.handleCreateBattle)
			r.Get("/battles", s.handleListBattles)
			r.Get("/battles/{id}", s.handleGetBattle)
			r.Delete("/battles/{id}", s.handleDeleteBattle)
			r.Post("/battles/{id}/step", s.handleStep)
			r.Get("/battles/{id}/legal-actions", s.handleLegalActions)
			r.Get("/battles/{id}/log", s.handleLog)
			r.Post("/batch", s.handleBatch)
		})
		r.Get("/battles/{id}/stream", s.handleStream)
	})

	return r
}

func (s *Server) handleHealthLive(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHealthReady(w http.ResponseWriter, r *http.Request) {
	if _, err := s.db.ListBattles(r.Context(), 1, 0); err != nil {
		s.writeError(w, errs.Wrap(errs.CodeInternal, "store not ready", err))
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Printf("%s %s status=%d duration=%s request_id=%s",
			r.Method, r.URL.Path, ww.Status(), time.Since(start), middleware.GetReqID(r.Context()))
	})
}

// live returns the in-memory battle for an ID.
func (s *Server) live(id string) (*liveBattle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	lb, ok := s.battles[id]
	if !ok {
		return nil, errs.Newf(errs.CodeNotFound, "battle %s is not live", id)
	}
	return lb, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a coded error to the JSON error envelope.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errs.CodeOf(err)
	s.writeJSON(w, statusForCode(code), map[string]any{
		"error": map[string]any{
			"code":    string(code),
			"message": err.Error(),
		},
	})
}

func statusForCode(code errs.Code) int {
	switch code {
	case errs.CodeInvalidArgument:
		return http.StatusUnprocessableEntity
	case errs.CodeNotFound:
		return http.StatusNotFound
	case errs.CodeConflict:
		return http.StatusConflict
	case errs.CodeFailedPrecondition:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
