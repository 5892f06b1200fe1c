// Package mirror exposes the store's CRUD shape over HTTP, backed by a
// Redis slot. It is the network-facing twin of the in-process store: the
// same aggregate document, the same numbering and update-protection rules.
// When Redis is unreachable the API degrades to read-only answers from the
// seed dataset, exactly like the original deployment.
package mirror

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/meanval/meanval/internal/persist"
	"go.uber.org/zap"
)

type Server struct {
	slot *persist.RedisSlotStore
	log  *zap.Logger

	idMu         sync.Mutex
	lastIDMillis int64
}

func NewServer(slot *persist.RedisSlotStore, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{slot: slot, log: log}
}

// Handler returns the route table for all four entity groups.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/clients", s.listClients)
	mux.HandleFunc("POST /api/clients", s.createClient)
	mux.HandleFunc("GET /api/clients/{id}", s.getClient)
	mux.HandleFunc("PUT /api/clients/{id}", s.updateClient)
	mux.HandleFunc("DELETE /api/clients/{id}", s.deleteClient)

	mux.HandleFunc("GET /api/projects", s.listProjects)
	mux.HandleFunc("POST /api/projects", s.createProject)
	mux.HandleFunc("GET /api/projects/{id}", s.getProject)
	mux.HandleFunc("PUT /api/projects/{id}", s.updateProject)
	mux.HandleFunc("DELETE /api/projects/{id}", s.deleteProject)

	mux.HandleFunc("GET /api/proposals", s.listProposals)
	mux.HandleFunc("POST /api/proposals", s.createProposal)
	mux.HandleFunc("GET /api/proposals/{id}", s.getProposal)
	mux.HandleFunc("PUT /api/proposals/{id}", s.updateProposal)
	mux.HandleFunc("DELETE /api/proposals/{id}", s.deleteProposal)

	mux.HandleFunc("GET /api/contracts", s.listContracts)
	mux.HandleFunc("POST /api/contracts", s.createContract)
	mux.HandleFunc("GET /api/contracts/{id}", s.getContract)
	mux.HandleFunc("PUT /api/contracts/{id}", s.updateContract)
	mux.HandleFunc("DELETE /api/contracts/{id}", s.deleteContract)

	return mux
}

// load fetches the aggregate document, seeding the slot on first use.
// available is false when Redis is unreachable; the returned snapshot is
// then the read-only seed dataset and writes must be refused.
func (s *Server) load(ctx context.Context) (snap *persist.Snapshot, available bool) {
	if err := s.slot.Ping(ctx); err != nil {
		s.log.Warn("redis unavailable, serving seed data", zap.Error(err))
		return persist.DefaultSnapshot(), false
	}
	snap, err := s.slot.Load(ctx)
	if err != nil {
		s.log.Warn("loading mirror snapshot failed", zap.Error(err))
		return persist.DefaultSnapshot(), false
	}
	if snap == nil {
		snap = persist.DefaultSnapshot()
		if err := s.slot.Save(ctx, snap); err != nil {
			s.log.Warn("seeding mirror snapshot failed", zap.Error(err))
			return snap, false
		}
	}
	return snap, true
}

func (s *Server) save(ctx context.Context, w http.ResponseWriter, snap *persist.Snapshot) bool {
	if err := s.slot.Save(ctx, snap); err != nil {
		s.log.Error("saving mirror snapshot failed", zap.Error(err))
		s.fail(w, http.StatusInternalServerError, "failed to persist changes")
		return false
	}
	return true
}

// ── response envelope ────────────────────────────────────────────────────────

type envelope struct {
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Success bool   `json:"success"`
}

func (s *Server) reply(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(envelope{Data: data, Success: true}); err != nil {
		s.log.Error("encoding response failed", zap.Error(err))
	}
}

func (s *Server) replyMessage(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(envelope{Message: msg, Success: true})
}

func (s *Server) fail(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{Error: msg, Success: false})
}

func (s *Server) unavailable(w http.ResponseWriter) {
	s.fail(w, http.StatusServiceUnavailable, "database not available")
}

func decode[T any](r *http.Request) (T, error) {
	var v T
	err := json.NewDecoder(r.Body).Decode(&v)
	return v, err
}
