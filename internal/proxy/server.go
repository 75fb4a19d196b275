// Package proxy exposes the completion capability over HTTP so that the
// upstream credential stays on the server and clients only see this endpoint.
package proxy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/sant0-9/querylens/internal/llm"
	"github.com/sant0-9/querylens/internal/logx"
)

const (
	maxBodyBytes    = 64 << 10
	requestIDHeader = "X-Request-ID"
	shutdownTimeout = 5 * time.Second
)

// Server forwards completion requests to a single upstream provider.
type Server struct {
	provider llm.Provider
	// model, when set, overrides whatever model the client asks for.
	model string
	mux   *http.ServeMux
}

func NewServer(provider llm.Provider, model string) *Server {
	s := &Server{
		provider: provider,
		model:    model,
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("/healthz", s.handleHealth)
	s.mux.HandleFunc("/v1/complete", s.handleComplete)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()
	w.Header().Set(requestIDHeader, id)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	start := time.Now()
	s.mux.ServeHTTP(rec, r)

	logx.Info().
		Str("request_id", id).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", rec.status).
		Dur("elapsed", time.Since(start)).
		Msg("request")
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logx.Info().Str("addr", addr).Str("provider", s.provider.Name()).Msg("proxy listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req llm.CompletionRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		reject(w, err, "invalid request body")
		return
	}
	if err := validate(&req); err != nil {
		reject(w, err, err.Error())
		return
	}
	if s.model != "" {
		req.Model = s.model
	}

	resp, err := s.provider.Complete(r.Context(), &req)
	if err != nil {
		logx.Error().
			Err(err).
			Str("request_id", w.Header().Get(requestIDHeader)).
			Msg("upstream completion failed")
		writeError(w, upstreamStatus(err), "upstream completion failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func validate(req *llm.CompletionRequest) error {
	if len(req.Messages) == 0 {
		return errors.New("messages must not be empty")
	}
	for i, m := range req.Messages {
		switch m.Role {
		case llm.RoleSystem, llm.RoleUser, llm.RoleAssistant:
		default:
			return fmt.Errorf("message %d: unknown role %q", i, m.Role)
		}
	}
	if req.MaxTokens < 0 {
		return errors.New("max_tokens must not be negative")
	}
	return nil
}

// reject answers 400 and logs why the request was refused.
func reject(w http.ResponseWriter, err error, msg string) {
	logx.Warn().
		Err(err).
		Str("request_id", w.Header().Get(requestIDHeader)).
		Msg("rejected request")
	writeError(w, http.StatusBadRequest, msg)
}

func upstreamStatus(err error) int {
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
