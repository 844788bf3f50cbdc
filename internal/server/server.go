// Package server provides the HTTP REST API for job requirement matching.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jonathan/jobmatch/internal/integrations"
	"github.com/jonathan/jobmatch/internal/matching"
	"github.com/jonathan/jobmatch/internal/server/ratelimit"
	"github.com/jonathan/jobmatch/internal/session"
	"go.uber.org/zap"
)

// Searcher runs the index search passthrough.
type Searcher interface {
	Search(ctx context.Context) (*integrations.SearchResult, error)
}

// Generator produces a text result from a fixed prompt.
type Generator interface {
	Generate(ctx context.Context) (string, error)
}

// Querier runs the warehouse passthrough.
type Querier interface {
	Query(ctx context.Context) ([]map[string]any, error)
}

// Integrations are the outbound passthroughs. Nil members answer 503.
type Integrations struct {
	Search    Searcher
	Answer    Generator
	Embedding Generator
	Warehouse Querier
}

// IntegrationsFrom adapts a configured set, leaving unconfigured members nil.
func IntegrationsFrom(set *integrations.Set) Integrations {
	var out Integrations
	if set == nil {
		return out
	}
	if set.Search != nil {
		out.Search = set.Search
	}
	if set.Answer != nil {
		out.Answer = set.Answer
	}
	if set.Embedding != nil {
		out.Embedding = set.Embedding
	}
	if set.Warehouse != nil {
		out.Warehouse = set.Warehouse
	}
	return out
}

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	log          *zap.Logger
	environment  string
	evaluator    matching.Evaluator
	sessions     *session.Store
	integrations Integrations
	rateLimiter  *ratelimit.Limiter
	now          func() time.Time
}

// Config holds server configuration
type Config struct {
	Port        int
	Environment string
	// RateLimit overrides the environment-derived limits when set.
	RateLimit *ratelimit.Config
}

// New creates a new server instance. A nil evaluator evaluates without memoization.
func New(cfg Config, log *zap.Logger, evaluator matching.Evaluator, deps Integrations) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if evaluator == nil {
		evaluator = matching.EvaluatorFunc(matching.Evaluate)
	}

	rlConfig := cfg.RateLimit
	if rlConfig == nil {
		rlConfig = ratelimit.LoadConfig()
	}

	s := &Server{
		log:          log,
		environment:  cfg.Environment,
		evaluator:    evaluator,
		sessions:     session.NewStore(evaluator),
		integrations: deps,
		rateLimiter:  ratelimit.NewLimiter(rlConfig),
		now:          time.Now,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // outbound integrations may be slow
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the full middleware-wrapped router.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/info", s.handleInfo)

	// Stateless evaluation
	mux.HandleFunc("POST /evaluate", s.handleEvaluate)
	mux.HandleFunc("POST /simulations", s.handleSimulations)
	mux.HandleFunc("POST /recommendations", s.handleRecommendations)
	mux.HandleFunc("GET /requirements/default", s.handleDefaultRequirement)

	// Sessions
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("PUT /sessions/{id}", s.handleUpdateSession)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("POST /sessions/{id}/apply", s.handleApplyChanges)
	mux.HandleFunc("GET /sessions/{id}/export", s.handleExportSession)
	mux.HandleFunc("GET /sessions/{id}/summary", s.handleSessionSummary)

	// Catalogs
	mux.HandleFunc("GET /catalog/job-types", s.handleJobTypes)
	mux.HandleFunc("GET /catalog/locations", s.handleLocations)
	mux.HandleFunc("GET /catalog/skills", s.handleSkills)

	// Outbound integrations
	mux.HandleFunc("POST /api/azure-search", s.handleAzureSearch)
	mux.HandleFunc("POST /api/generate-answer", s.handleGenerateAnswer)
	mux.HandleFunc("POST /api/generate-embedding", s.handleGenerateEmbedding)
	mux.HandleFunc("POST /api/databricks-query", s.handleDatabricksQuery)

	return s.withRateLimit(s.withLogging(s.withCORS(mux)), mux)
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.rateLimiter.Stop()
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	s.rateLimiter.Stop()

	s.log.Info("server stopped")
	return nil
}

// Close stops background work without serving.
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware. routes resolves the request's route pattern
// so that requests to /sessions/{id} share a bucket.
func (s *Server) withRateLimit(next http.Handler, routes *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.AllowRoute(clientID, r.URL.Path, routePath(routes, r), r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, clientID, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// routePath returns the path part of the pattern routes would serve r with, or "" when no
// route matches.
func routePath(routes *http.ServeMux, r *http.Request) string {
	_, pattern := routes.Handler(r)
	if _, path, ok := strings.Cut(pattern, " "); ok {
		return path
	}
	return pattern
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For is not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, clientID string, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.log.Warn("rate limit exceeded",
		zap.String("client", clientID),
		zap.Int("limit", info.Limit),
		zap.Time("reset", info.ResetTime),
	)

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
