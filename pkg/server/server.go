// Package server exposes calendar rendering over HTTP.
//
// Routes:
//
//	GET /healthz
//	GET /api/v1/calendar?birth=YYYY-MM-DD&years=N&format=pdf&to_date=true&fade=false&name=Ana
//	GET /api/v1/weeks/{year}?birth=YYYY-MM-DD
//
// Every response carries an X-Request-ID header.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/lifeweeks/pkg/pipeline"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = ":8080"

// Server is the HTTP service.
type Server struct {
	Addr   string
	Runner *pipeline.Runner
	Logger *log.Logger

	mu     sync.Mutex
	srv    *http.Server
	ln     net.Listener
	closed bool
	done   chan error
	stop   chan struct{} // closed by Stop
	quit   chan struct{} // closed when the context watcher exits
}

// New returns a server that renders through runner.
func New(addr string, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	return &Server{Addr: addr, Runner: runner, Logger: logger}
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/calendar", s.handleCalendar)
		r.Get("/weeks/{year}", s.handleWeeks)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusNotFound, "NOT_FOUND", "no such route: "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeAPIError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})
	return r
}

// Start listens on Addr and serves in the background until ctx is
// cancelled or Stop is called.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return errors.New("server already stopped")
	}
	if s.srv != nil {
		return nil
	}

	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		s.srv = nil
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.ln = ln
	s.done = make(chan error, 1)
	s.stop = make(chan struct{})
	s.quit = make(chan struct{})

	go func(stop, quit chan struct{}) {
		defer close(quit)
		select {
		case <-ctx.Done():
			_ = s.Stop()
		case <-stop:
		}
	}(s.stop, s.quit)

	srv, done := s.srv, s.done
	go func() {
		err := srv.Serve(ln)
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			err = nil
		} else {
			s.Logger.Error("server stopped", "err", err)
		}
		done <- err
	}()

	s.Logger.Info("listening", "addr", ln.Addr().String())
	return nil
}

// ListenAddr returns the bound address, or "" before Start.
func (s *Server) ListenAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Run starts the server and blocks until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	return <-done
}

// Stop shuts the server down, waiting up to five seconds for in-flight
// requests.
func (s *Server) Stop() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.srv
	s.srv = nil
	if s.stop != nil {
		close(s.stop)
	}
	s.mu.Unlock()

	if srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
