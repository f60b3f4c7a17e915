// Package server exposes the income calculator as a small HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/theirongolddev/lifecost/internal/finance"
	"github.com/theirongolddev/lifecost/internal/model"
	"github.com/theirongolddev/lifecost/internal/pipeline"
)

var log = logrus.WithField("module", "server")

// Config controls the server runtime behavior.
type Config struct {
	Addr     string
	Profiles []model.Profile
}

// EstimateRequest is the body of POST /v1/estimate.
type EstimateRequest struct {
	Country string       `json:"country"`
	Values  model.Values `json:"values"`
}

// CountrySummary is one entry of GET /v1/countries.
type CountrySummary struct {
	Code           string   `json:"code"`
	Name           string   `json:"name"`
	CurrencySymbol string   `json:"currency_symbol"`
	Decimals       int      `json:"decimals"`
	Extras         []string `json:"extras,omitempty"`
}

// Status is served at /v1/status.
type Status struct {
	StartedAt     time.Time `json:"started_at"`
	Countries     int       `json:"countries"`
	RequestCount  int64     `json:"request_count"`
	EstimateCount int64     `json:"estimate_count"`
	LastError     string    `json:"last_error,omitempty"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Service provides the HTTP API. Estimates are computed per request; the
// only shared state is the request counters behind mu.
type Service struct {
	cfg Config

	mu            sync.RWMutex
	startedAt     time.Time
	requestCount  int64
	estimateCount int64
	lastError     string
}

// New returns a new service with the provided config.
func New(cfg Config) *Service {
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8788"
	}
	return &Service{
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// Handler returns the API routes wrapped in request logging.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	mux.HandleFunc("GET /v1/countries", s.handleCountries)
	mux.HandleFunc("GET /v1/countries/{code}", s.handleCountry)
	mux.HandleFunc("POST /v1/estimate", s.handleEstimate)
	return s.logRequests(mux)
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.WithField("addr", s.cfg.Addr).Info("listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		log.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	}
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.mu.Lock()
		s.requestCount++
		s.mu.Unlock()

		log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Debug("request")
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:     s.startedAt,
		Countries:     len(s.cfg.Profiles),
		RequestCount:  s.requestCount,
		EstimateCount: s.estimateCount,
		LastError:     s.lastError,
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshotStatus())
}

func (s *Service) handleCountries(w http.ResponseWriter, _ *http.Request) {
	out := make([]CountrySummary, 0, len(s.cfg.Profiles))
	for _, p := range s.cfg.Profiles {
		cs := CountrySummary{
			Code:           p.Code,
			Name:           p.Name,
			CurrencySymbol: p.CurrencySymbol,
			Decimals:       p.Decimals,
		}
		for _, x := range p.Extras {
			cs.Extras = append(cs.Extras, x.Category)
		}
		out = append(out, cs)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Service) handleCountry(w http.ResponseWriter, r *http.Request) {
	p, err := pipeline.FindProfile(s.cfg.Profiles, r.PathValue("code"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Service) handleEstimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, fmt.Errorf("%w: decoding request: %v", finance.ErrInvalidArgument, err))
		return
	}

	p, err := pipeline.FindProfile(s.cfg.Profiles, req.Country)
	if err != nil {
		s.writeError(w, err)
		return
	}

	est, err := pipeline.Estimate(p, req.Values)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.mu.Lock()
	s.estimateCount++
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, est)
}

func (s *Service) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)

	s.mu.Lock()
	s.lastError = err.Error()
	s.mu.Unlock()

	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("request failed")
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, pipeline.ErrUnknownCountry):
		return http.StatusNotFound
	case errors.Is(err, finance.ErrInvalidArgument):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
