package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"ml-showcase/observability"
	"ml-showcase/services"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Monitor counts traffic and reports process health.
type Monitor interface {
	IncrRequests()
	IncrServerErrors()
	GetLatest() observability.MonitoringStats
}

type Config struct {
	AppName          string
	AppVersion       string
	Environment      string
	MaxContentLength int64
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
}

// Server exposes the showcase pages and the JSON API.
type Server struct {
	log       *slog.Logger
	config    Config
	sentiment services.ISentimentService
	chat      services.IChatService
	models    services.IModelService
	monitor   Monitor
	pages     *Pages
	debug     http.Handler
}

func NewServer(log *slog.Logger, config Config, sentiment services.ISentimentService,
	chat services.IChatService, models services.IModelService, monitor Monitor) *Server {
	return &Server{
		log:       log,
		config:    config,
		sentiment: sentiment,
		chat:      chat,
		models:    models,
		monitor:   monitor,
		pages:     NewPages(config.AppName, config.AppVersion),
	}
}

// WithDebug mounts h under /debug/transcripts.
func (s *Server) WithDebug(h http.Handler) *Server {
	s.debug = h
	return s
}

// Handler builds the routing table wrapped in the request middlewares.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/predict/sentiment", s.handlePredictSentiment)
	mux.HandleFunc("GET /api/models", s.handleListModels)
	mux.HandleFunc("POST /api/agent/{agentId}/chat", s.handleAgentChat)
	mux.HandleFunc("GET /api/agents", s.handleListAgents)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("/api/", s.handleAPINotFound)

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /gallery", s.handleGallery)
	mux.HandleFunc("GET /demo/sentiment", s.handleStaticPage(PageSentimentDemo, "Sentiment Analysis Demo"))
	mux.HandleFunc("GET /demo/image", s.handleStaticPage(PageImageDemo, "Image Classifier Demo"))
	mux.HandleFunc("GET /api_docs", s.handleStaticPage(PageAPIDocs, "API Documentation"))
	if s.debug != nil {
		mux.Handle("GET /debug/transcripts", s.debug)
	}
	mux.HandleFunc("/", s.handleNotFound)

	return s.logRequests(s.recoverPanics(mux))
}

// ListenAndServe serves until ctx is done, then drains in-flight requests
// for at most the shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:         address,
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
		close(errChan)
	}()

	select {
	case <-ctx.Done():
		s.log.Info("Shutting down HTTP server")
	case err, ok := <-errChan:
		if ok {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	return nil
}
