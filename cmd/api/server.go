package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

func (app *application) serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", app.config.port))
	if err != nil {
		return fmt.Errorf("listen on port %d: %w", app.config.port, err)
	}

	return app.serveListener(ctx, ln)
}

// serveListener serves on ln until ctx is cancelled, then drains in-flight
// requests within the configured shutdown timeout.
func (app *application) serveListener(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      app.routes(ctx),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelError),
	}

	shutdownError := make(chan error, 1)

	go func() {
		<-ctx.Done()

		app.logger.Info("shutting down server", "addr", ln.Addr().String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.shutdownTimeout)
		defer cancel()

		shutdownError <- srv.Shutdown(shutdownCtx)
	}()

	port := app.config.port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}

	app.logger.Info("starting server",
		"addr", ln.Addr().String(),
		"port", port,
		"version", app.config.version,
		"env", app.config.env,
	)

	err := srv.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", ln.Addr().String())

	return nil
}
