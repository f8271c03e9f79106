// Command cutout-server serves the mask cutout pipeline over HTTP.
//
// Configuration is read from CUTOUT_* environment variables; see the
// config package.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ironsheep/mask-cutout/internal/api"
	"github.com/ironsheep/mask-cutout/internal/config"
	"github.com/ironsheep/mask-cutout/internal/fetch"
)

// Version information - set by ldflags during build
var Version = "dev"

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	handler := api.NewHandler(fetch.NewClient(cfg.FetchOptions()), cfg.Settings, cfg.Debug)

	// Write timeout covers both downloads plus processing.
	srv := &http.Server{
		Handler:           handler.Router(),
		Addr:              cfg.Addr,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2*cfg.FetchTimeout + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("mask-cutout %s listening on %s (strategy %s)", Version, srv.Addr, cfg.Settings.Strategy)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
