// Storeboard - Storefront Console and Performance Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storeboard

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/storeboard/internal/logging"
)

// HTTPServer is the lifecycle subset of *http.Server the service drives.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServiceConfig configures an HTTPServerService.
type HTTPServiceConfig struct {
	// Name identifies the service in supervisor logs. Default: "http-server".
	Name string

	// Addr is logged when the server starts.
	Addr string

	// ShutdownTimeout bounds connection draining. Default: 10s.
	ShutdownTimeout time.Duration
}

// HTTPServerService runs an HTTP server under suture. ListenAndServe runs in
// a goroutine; cancelling the Serve context triggers a graceful Shutdown
// with a fresh deadline.
//
// Example usage:
//
//	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewHTTPServerService(server, services.HTTPServiceConfig{
//	    Addr:            server.Addr,
//	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
//	}))
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
	addr            string
	name            string
}

// NewHTTPServerService creates a new HTTP server service wrapper.
func NewHTTPServerService(server HTTPServer, cfg HTTPServiceConfig) *HTTPServerService {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	if cfg.Name == "" {
		cfg.Name = "http-server"
	}
	return &HTTPServerService{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		addr:            cfg.Addr,
		name:            cfg.Name,
	}
}

// Serve implements suture.Service.
//
// It returns ctx.Err() after a clean shutdown, the wrapped Shutdown error if
// draining fails, or the ListenAndServe error if the server stops on its
// own. http.ErrServerClosed is not treated as a failure.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logging.Info().Str("component", h.name).Str("addr", h.addr).Msg("HTTP server listening")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		start := time.Now()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		logging.Info().Str("component", h.name).Dur("drain", time.Since(start)).Msg("HTTP server stopped")
		return ctx.Err()
	}
}

// String implements fmt.Stringer; suture uses it in event logs.
func (h *HTTPServerService) String() string {
	return h.name
}
