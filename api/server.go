package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 5 * time.Second

func (app *Application) newServer(mux *http.ServeMux) *http.Server {
	return &http.Server{
		Addr:         app.Config.HTTPPort,
		Handler:      app.BuildRoutes(mux),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// Serve runs the API until SIGINT or SIGTERM, then drains in-flight requests
// and stops the daily palette scheduler.
func (app *Application) Serve(mux *http.ServeMux) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.serveUntil(ctx, app.newServer(mux))
}

func (app *Application) serveUntil(ctx context.Context, srv *http.Server) error {
	serveErr := make(chan error, 1)
	go func() {
		log.Printf("starting server on %s", srv.Addr)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("shutting down server on %s", srv.Addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if app.Scheduler != nil {
		app.Scheduler.Stop()
	}
	log.Printf("stopped server on %s", srv.Addr)
	return nil
}
