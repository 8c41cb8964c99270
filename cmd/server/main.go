// Command server runs the Kusina HTTP API.
//
// @title                       Kusina API
// @version                     1.0
// @description                 Accounts, favorites and the admin recipe collection for Kusina.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BaylaDeLemos/kusina-live-server/internal/api"
	"github.com/BaylaDeLemos/kusina-live-server/internal/api/handler"
	"github.com/BaylaDeLemos/kusina-live-server/internal/core/service"
	"github.com/BaylaDeLemos/kusina-live-server/internal/infrastructure/auth"
	mongodb "github.com/BaylaDeLemos/kusina-live-server/internal/infrastructure/db/mongo"
	redisdb "github.com/BaylaDeLemos/kusina-live-server/internal/infrastructure/db/redis"
	"github.com/BaylaDeLemos/kusina-live-server/internal/pkg/config"
	"github.com/BaylaDeLemos/kusina-live-server/pkg/logger"
)

const (
	serviceName     = "kusina-api"
	shutdownTimeout = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad(ctx)

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	users := mongodb.NewUserRepository(db)
	recipes := mongodb.NewRecipeRepository(db)
	if err := mongodb.EnsureIndexes(ctx, users, recipes); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}
	recipeCache := redisdb.NewRecipeCache(rdb, cfg.Redis.RecipeCacheTTL)

	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token service init failed")
	}
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	// --- Services ---
	accounts := service.NewAccountService(users, hasher, tokens, logger.Component("account"))
	userSvc := service.NewUserService(users, logger.Component("user"))
	adminSvc := service.NewAdminService(users, recipes, recipeCache, logger.Component("admin"))

	e := api.NewRouter(api.Deps{
		Accounts: accounts,
		Users:    userSvc,
		Admin:    adminSvc,
		Tokens:   tokens,
		Health: map[string]handler.Pinger{
			"mongodb": handler.MongoPinger(db),
			"redis":   handler.RedisPinger(rdb),
		},
		Logger:       logger.Component("http"),
		ClientOrigin: cfg.ClientOrigin,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
