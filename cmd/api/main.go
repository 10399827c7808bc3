package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/gops/agent"
	"github.com/joho/godotenv"

	"github.com/arcadia/zoo-api/internal/api"
	"github.com/arcadia/zoo-api/internal/core/service"
	"github.com/arcadia/zoo-api/internal/infrastructure/config"
	"github.com/arcadia/zoo-api/internal/infrastructure/db/postgres"
	redisdb "github.com/arcadia/zoo-api/internal/infrastructure/db/redis"
	"github.com/arcadia/zoo-api/internal/infrastructure/queue"
	"github.com/arcadia/zoo-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "zoo-api",
	})

	if cfg.GopsEnabled {
		if err := agent.Listen(agent.Options{ShutdownCleanup: true}); err != nil {
			log.Warn().Err(err).Msg("gops agent not started")
		}
		defer agent.Close()
	}

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.Postgres.URL, MaxConns: cfg.Postgres.MaxConns})
	if err != nil {
		return errors.Join(errors.New("postgres connect failed"), err)
	}
	defer pool.Close()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return errors.Join(errors.New("redis connect failed"), err)
	}
	defer rdb.Close()

	tokens, err := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}

	accounts := postgres.NewAccountRepository(pool)
	animals := postgres.NewAnimalRepository(pool)
	clicks := redisdb.NewClickCounter(rdb)

	// Workers outlive the request context; they stop with the process.
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	dispatcher := queue.NewClickDispatcher(cfg.ClickWorkers, clicks, log)
	dispatcher.Start(workerCtx)

	e := api.NewRouter(api.Deps{
		Log:         log,
		Tokens:      tokens,
		Auth:        service.NewAuthService(accounts, service.NewBcryptHasher(cfg.Auth.BcryptCost), tokens, log),
		Animals:     service.NewAnimalService(animals, clicks, dispatcher, log),
		Habitats:    service.NewHabitatService(postgres.NewHabitatRepository(pool)),
		ZooServices: service.NewZooServiceService(postgres.NewZooServiceRepository(pool)),
		Reviews:     service.NewReviewService(postgres.NewReviewRepository(pool)),
		VetReports:  service.NewVetReportService(postgres.NewVetReportRepository(pool), animals),
		DB:          pool,
		Redis:       rdb,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.Env).Msg("listening")
		srvErr <- server.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		stopWorkers()
		dispatcher.Wait()
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}

	// In-flight requests are done; let the workers flush what is queued.
	stopWorkers()
	dispatcher.Wait()

	log.Info().Msg("shutdown completed")
	return nil
}
