// Package server hosts one agent shell over HTTP: a POST /query endpoint and
// the agent card at the well-known discovery path. Each request is handled on
// its own goroutine by net/http; the hosted shell is stateless, so no
// synchronization is needed. A failing request never stops the process from
// serving the next one.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/germanamz/relay/pkg/agents"
	"github.com/germanamz/relay/pkg/agents/remote"
	"github.com/germanamz/relay/pkg/telemetry"
)

// Server hosts a single agent.
type Server struct {
	agent agents.Agent
	card  remote.Card
}

// New creates a Server for the given agent and card.
func New(agent agents.Agent, card remote.Card) *Server {
	return &Server{agent: agent, card: card}
}

// Handler returns the HTTP handler: the agent card on GET at the well-known
// path and queries on POST /query.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+remote.WellKnownCardPath, s.handleCard)
	mux.HandleFunc("POST /query", s.handleQuery)
	return mux
}

// ListenAndServe binds addr and serves until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	}
}

func (s *Server) handleCard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.card)
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var qr remote.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&qr); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	ctx := r.Context()
	if parent := r.Header.Get(remote.HeaderParentHop); parent != "" {
		ctx = telemetry.WithHop(ctx, parent)
	}

	response, err := s.agent.Handle(ctx, qr.Query)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, remote.QueryResponse{Response: response})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
