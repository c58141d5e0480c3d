// Package server exposes the cycle solver over HTTP.
//
// Every request is independent: the only state shared between requests is
// the immutable default gas.
//
// @title brayton API
// @version 1.0
// @description Stateless ideal-gas Brayton cycle solver.
// @BasePath /api/v1
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/bft-labs/brayton/docs"
	"github.com/bft-labs/brayton/pkg/log"
)

// Server is the HTTP front end of the solver.
type Server struct {
	opts    options
	logger  log.Logger
	handler http.Handler
}

// New creates a Server with its routes registered.
func New(opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{opts: o, logger: o.logger}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/cycles", s.SolveCycle)
	mux.HandleFunc("POST /api/v1/diagrams/{kind}", s.RenderDiagram)
	mux.HandleFunc("GET /api/v1/gas", s.DefaultGas)
	mux.HandleFunc("GET /healthz", s.Health)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	s.handler = withAccessLog(o.logger, mux)
	return s
}

// Handler returns the root handler, for use with httptest or a custom server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully within shutdownTimeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("server listening", log.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// ListenAndServe listens on addr and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}
