package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hashicorp/go-hclog"

	"github.com/jordanbenzacken/checkmysmartcontract/internal/engine"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/model"
	"github.com/jordanbenzacken/checkmysmartcontract/internal/store"
)

// Server is the thin HTTP wrapper around the analysis engine. The store
// is optional; when present, each analysis is persisted after the
// response data is computed, and a failed save only logs.
type Server struct {
	engine *engine.Engine
	store  *store.Store
	log    hclog.Logger
}

func New(eng *engine.Engine, st *store.Store, log hclog.Logger) *Server {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Server{engine: eng, store: st, log: log.Named("server")}
}

type analyzeRequest struct {
	SourceCode string `json:"sourceCode"`
	UserID     string `json:"userId"`
}

type analyzeResponse struct {
	Results []model.Finding `json:"results"`
}

type historyResponse struct {
	History []store.Record `json:"history"`
}

// Handler builds the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/analyze", s.handleAnalyze)
	mux.HandleFunc("GET /api/history", s.handleHistory)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return s.recoverer(mux)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.SourceCode == "" {
		writeError(w, http.StatusBadRequest, "sourceCode is required")
		return
	}

	result := s.engine.Analyze(req.SourceCode)
	writeJSON(w, http.StatusOK, analyzeResponse{Results: result.Findings})

	// Fire-and-forget persistence after the result is out the door.
	if s.store != nil {
		findings := result.Findings
		go func() {
			if _, err := s.store.Save(req.UserID, req.SourceCode, findings); err != nil {
				s.log.Error("failed to persist analysis", "user", req.UserID, "error", err)
			}
		}()
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "history is not enabled")
		return
	}
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId is required")
		return
	}
	records, err := s.store.ListHistory(userID, 0)
	if err != nil {
		s.log.Error("failed to list history", "user", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if records == nil {
		records = []store.Record{}
	}
	writeJSON(w, http.StatusOK, historyResponse{History: records})
}

func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("handler panicked", "path", r.URL.Path, "panic", rec)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{Addr: ":" + port, Handler: s.Handler()}

	s.log.Info("starting HTTP server", "port", port)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	s.log.Info("shutting down HTTP server")
	return srv.Shutdown(context.Background())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
