// Package httpapi exposes the musicbox services over HTTP: account
// registration and login, session-gated catalog queries, and subscription
// management.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/okunev/musicbox/internal/logging"
)

type Server struct {
	address  string
	handlers *Handlers
	logger   logging.Logger
}

func NewServer(address string, handlers *Handlers, logger logging.Logger) *Server {
	return &Server{
		address:  address,
		handlers: handlers,
		logger:   logger.With("module", "http_server"),
	}
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.handlers.Routes(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
