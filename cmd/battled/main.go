// Command battled serves the deterministic battle engine over HTTP.
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

	"github.com/vgcsim/vgc-replay-go/internal/api"
	"github.com/vgcsim/vgc-replay-go/internal/config"
	"github.com/vgcsim/vgc-replay-go/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "[battled] ", log.LstdFlags)

	// "battled simulate match.yaml" runs a match file locally and prints
	// the record stream instead of serving HTTP.
	if len(os.Args) > 2 && os.Args[1] == "simulate" {
		if err := simulate(os.Args[2], os.Stdout); err != nil {
			logger.Fatalf("simulate failed: %v", err)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config load failed: %v", err)
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Fatalf("replay store open failed: %v", err)
	}
	defer db.Close()
	logger.Printf("replay store ready at %s", cfg.DBPath)

	server := api.NewServer(db, api.Options{
		BatchWorkers:   cfg.BatchWorkers,
		ScriptTimeout:  cfg.ScriptTimeout,
		RequestTimeout: cfg.RequestTimeout,
		Logger:         log.New(os.Stdout, "[api] ", log.LstdFlags),
	})

	httpServer := &http.Server{
		Addr:        cfg.ListenAddr,
		Handler:     server.Routes(),
		ReadTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("listening on %s", cfg.ListenAddr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server error: %v", err)
		}
	case <-ctx.Done():
		logger.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Printf("shutdown error: %v", err)
		}
	}

	logger.Println("stopped")
}
