package main

import (
	"collab-hub/auth"
	"collab-hub/bridge"
	"collab-hub/contract"
	"collab-hub/mention"
	"collab-hub/repositories"
	"collab-hub/runtime"
	"collab-hub/runtime/workers"
	"collab-hub/transport"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and owns the server lifecycle, so deferred
// cleanups run before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	slog.SetDefault(log)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Supervision & Orchestration
	sup := workers.NewSupervisor(log, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(log, sup, runtime.NewRegistry(config.MaxSnapshotUsers), runtime.Settings{
		NumberOfPartitions:  config.NumberOfPartitions,
		BufferSize:          config.BufferSize,
		NumberOfTaskWorkers: config.NumberOfTaskWorkers,
		TaskBufferSize:      config.TaskBufferSize,
		TaskTimeout:         config.TaskTimeout,
		StatsInterval:       config.StatsInterval,
	})
	publisher := bridge.NewPublisher(log, orchestrator.Router())

	extractor, err := mention.NewExtractor(log, suppressionStore(config, db),
		repositories.NewNotificationRepository(db, log), publisher)
	if err != nil {
		return fmt.Errorf("mention extractor failed to build: %w", err)
	}
	orchestrator.SetMentionProcessor(extractor)

	engineDone := make(chan struct{})
	go func() {
		defer close(engineDone)
		orchestrator.Start(ctx)
	}()

	// 5. HTTP Server Setup
	gatekeeper := auth.NewGatekeeper(log, []byte(config.JWTSecret), repositories.NewUserRepository(db))
	server := transport.NewServer(ctx, log, orchestrator, gatekeeper, transport.ConnectionConfig{
		BufferSize:      config.ConnectionBufferSize,
		MaxMessageBytes: config.MaxMessageBytes,
		PongWait:        config.PongWait,
		WriteTimeout:    config.WriteTimeout,
	})
	mux := http.NewServeMux()
	server.RegisterRoutes(mux)
	bridge.NewHandler(log, publisher, config.BridgeSecret).RegisterRoutes(mux)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	// Use an error channel to capture ListenAndServe issues
	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		stop()
		orchestrator.Stop()
		<-engineDone
		return err
	}

	// 7. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP server shutdown", "error", err)
	}
	server.Wait()
	orchestrator.Stop()
	<-engineDone
	log.Info("Program stopped cleanly")
	return nil
}

func suppressionStore(config Config, db *badger.DB) contract.ISuppressionStore {
	if config.SuppressionStore == "badger" {
		return repositories.NewSuppressionRepository(db, config.MentionWindow)
	}
	return mention.NewMemorySuppression(config.MentionWindow)
}
