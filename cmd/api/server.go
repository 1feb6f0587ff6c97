package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 20 * time.Second

func (app *application) serve() error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.port),
		Handler:           app.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       1 * time.Minute,
		ErrorLog:          log.New(app.logger, "", 0),
	}

	shutDownErr := make(chan error)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		s := <-quit
		app.logger.Info("shutting down server", map[string]string{
			"signal": s.String(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		shutDownErr <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", map[string]string{
		"addr":      srv.Addr,
		"env":       app.cfg.env,
		"base_path": app.cfg.basePath,
		"version":   version,
	})

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutDownErr
	if err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	app.logger.Info("stopped server", map[string]string{
		"addr": srv.Addr,
	})

	return nil
}
