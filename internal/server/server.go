// Package server exposes the cleaners and the scraper over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"

	"github.com/jmylchreest/telugu-corpus/internal/logger"
	"github.com/jmylchreest/telugu-corpus/pkg/corpus"
	"github.com/jmylchreest/telugu-corpus/pkg/telugu"
)

// Defaults.
const (
	DefaultAddr      = ":3000"
	DefaultMaxUpload = 10 << 20 // 10 MiB
	DefaultMaxJSON   = 2 << 20  // 2 MiB
)

// Scraper is the part of *telugu.Scraper the handlers use.
type Scraper interface {
	Scrape(ctx context.Context, url string) (*telugu.Result, error)
	ScrapeRaw(ctx context.Context, url string) (string, error)
	Save(doc *corpus.Document) (string, error)
}

// Config holds server configuration.
type Config struct {
	Addr string
	// MaxUpload limits multipart uploads to /clean, in bytes.
	MaxUpload int64
	// MaxJSON limits JSON request bodies, in bytes.
	MaxJSON int64
	// SaveByDefault persists /scrape-clean results unless the request
	// sets "save": false.
	SaveByDefault bool
	// CORS allows cross-origin requests from any origin.
	CORS bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:          DefaultAddr,
		MaxUpload:     DefaultMaxUpload,
		MaxJSON:       DefaultMaxJSON,
		SaveByDefault: true,
	}
}

// Server is the HTTP boundary.
type Server struct {
	scraper  Scraper
	config   Config
	log      *slog.Logger
	validate *validator.Validate
}

// New creates a server around scraper.
func New(scraper Scraper, cfg Config) *Server {
	def := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.MaxUpload <= 0 {
		cfg.MaxUpload = def.MaxUpload
	}
	if cfg.MaxJSON <= 0 {
		cfg.MaxJSON = def.MaxJSON
	}
	return &Server{
		scraper:  scraper,
		config:   cfg,
		log:      logger.Component("server"),
		validate: validator.New(),
	}
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /clean", s.handleClean)
	mux.HandleFunc("POST /scrape", s.handleScrape)
	mux.HandleFunc("POST /scrape-clean", s.handleScrapeClean)

	var h http.Handler = mux
	if s.config.CORS {
		h = withCORS(h)
	}
	return s.withLogging(s.withRecovery(h))
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening",
			"addr", ln.Addr().String(),
			"max_upload", humanize.IBytes(uint64(s.config.MaxUpload)))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
