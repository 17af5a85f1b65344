package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/prepdeck/prepdeck/internal/config"
	"github.com/prepdeck/prepdeck/internal/delivery/cli"
	"github.com/prepdeck/prepdeck/internal/infra/postgres"
	pgrepo "github.com/prepdeck/prepdeck/internal/infra/postgres/repository"
	"github.com/prepdeck/prepdeck/internal/logger"
	"github.com/prepdeck/prepdeck/internal/repository"
	"github.com/prepdeck/prepdeck/internal/service"
	"github.com/prepdeck/prepdeck/internal/storage"
)

func main() {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	l, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = l.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deckRepo, err := repository.NewDeckRepository(cfg.DeckPath)
	if err != nil {
		log.Fatal(err)
	}

	var progressRepo service.ProgressRepository
	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Storage.DB.URL, postgres.PoolConfig{
			MaxConns:        int32(cfg.Storage.DB.MaxConnections),
			MaxConnLifetime: cfg.Storage.DB.MaxConnLifetime,
		})
		if err != nil {
			log.Fatal(err)
		}
		defer pool.Close()
		progressRepo = pgrepo.NewProgressRepository(pool)
	default:
		progressRepo, err = storage.NewFileProgressRepository(cfg.Storage.Dir)
		if err != nil {
			log.Fatal(err)
		}
	}

	studyService := service.NewStudyService(
		progressRepo,
		cfg.Scheduling.SRSConfig(),
		cfg.Selection.SelectionConfig(),
	)
	sessionService := service.NewSessionService(storage.NewSessionStorage())

	handler := cli.NewHandler(deckRepo, studyService, sessionService, l)
	if err := handler.Root().ExecuteContext(ctx); err != nil {
		l.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
