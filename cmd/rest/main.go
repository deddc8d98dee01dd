package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"annotation-notes-be/internal/bootstrap"
	"annotation-notes-be/internal/config"
	"annotation-notes-be/internal/pkg/logger"
	"annotation-notes-be/internal/repository/localstore"
	"annotation-notes-be/internal/repository/memory"
	"annotation-notes-be/internal/repository/unitofwork"
	"annotation-notes-be/internal/server"
	"annotation-notes-be/internal/tracer"
	"annotation-notes-be/pkg/database"

	"golang.org/x/sync/errgroup"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	defer sysLogger.Sync()

	// 2. Tracing
	shutdownTracer := tracer.InitTracer(cfg.Tracing, sysLogger)
	defer shutdownTracer(context.Background())

	// 3. Storage
	uowFactory, closeStorage, err := newRepositoryFactory(cfg)
	if err != nil {
		log.Panicf("Unable to initialize storage: %v", err)
	}
	defer closeStorage()
	sysLogger.Info("BOOTSTRAP", "Storage ready", map[string]interface{}{"driver": cfg.Database.Driver})

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(uowFactory, cfg, sysLogger)
	defer container.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Start Background Services
	if err := container.StartBackground(ctx); err != nil {
		sysLogger.Error("BOOTSTRAP", "Activity consumer failed to start", map[string]interface{}{"error": err.Error()})
	}

	// 6. Serve until a signal arrives or the listener fails
	srv := server.New(cfg, container)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run()
	})

	g.Go(func() error {
		<-gCtx.Done()
		sysLogger.Info("HTTP", "Shutting down server...", nil)
		return srv.Shutdown()
	})

	if err := g.Wait(); err != nil {
		sysLogger.Error("HTTP", "Server stopped with error", map[string]interface{}{"error": err.Error()})
		return
	}
	sysLogger.Info("HTTP", "Server stopped successfully", nil)
}

func newRepositoryFactory(cfg *config.Config) (unitofwork.RepositoryFactory, func(), error) {
	switch cfg.Database.Driver {
	case config.StorageDriverMemory:
		return unitofwork.NewMemoryRepositoryFactory(memory.NewStore()), func() {}, nil

	case config.StorageDriverBolt:
		if err := os.MkdirAll(filepath.Dir(cfg.Database.BoltPath), 0o755); err != nil {
			return nil, nil, err
		}
		store, err := localstore.Open(cfg.Database.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		return unitofwork.NewLocalRepositoryFactory(store), func() { _ = store.Close() }, nil

	default:
		gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
		return unitofwork.NewRepositoryFactory(gormDB), closeDB, nil
	}
}
