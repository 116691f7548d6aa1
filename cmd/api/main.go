package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/auth"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/config"
	cacheAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/cache/adapter"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/database"
	queueAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/queue/adapter"
	"github.com/AnastasiaYuhimenko/simple-messanger/internal/infrastructure/realtime"
	applog "github.com/AnastasiaYuhimenko/simple-messanger/internal/log"
	chatTask "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/chat/application/task"
	groupTask "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/group/application/task"
	identityUsecase "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/application/usecase"
	identityAdapter "github.com/AnastasiaYuhimenko/simple-messanger/internal/pkg/identity/persistence/repository/adapter"

	v1 "github.com/AnastasiaYuhimenko/simple-messanger/cmd/api/router/v1"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg(".env file not found or could not be loaded")
	}

	cfg := config.Load()
	applog.Init(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	pool, err := database.Connect(connectCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()

	if err := database.Migrate(connectCtx, pool); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	cache, err := cacheAdapter.NewRedisAdapter(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer cache.Close()

	queueClient, err := queueAdapter.NewAsynqClient(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create queue client")
	}
	defer queueClient.Close()

	queueServer, err := queueAdapter.NewAsynqServer(cfg.RedisURL, 4)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create queue server")
	}

	tokens, err := auth.NewTokenService(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTokenTTLMinutes)*time.Minute,
		time.Duration(cfg.RefreshTokenTTLDays)*24*time.Hour,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("token service misconfigured")
	}

	registry := realtime.NewRegistry()
	defer registry.Close()
	fanout := realtime.NewFanout(registry)

	users := identityAdapter.NewPgUserRepository(pool)
	resolver := identityUsecase.NewResolveIdentityUseCase(users, cache)

	chatTask.RegisterSendDirectMessageTask(queueServer, pool, fanout)
	groupTask.RegisterSendGroupMessageTask(queueServer, pool, fanout)
	go func() {
		if err := queueServer.Run(ctx); err != nil {
			log.Error().Err(err).Msg("queue server stopped")
		}
	}()

	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	v1.RegisterRoutes(r, v1.Deps{
		Pool:     pool,
		Queue:    queueClient,
		Registry: registry,
		Fanout:   fanout,
		Tokens:   tokens,
		Resolver: resolver,
		Env:      cfg.Env,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := queueServer.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("queue shutdown")
	}
}
