package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"stayfront/internal/adapters/observability"
	redisad "stayfront/internal/adapters/redis"
	"stayfront/internal/adapters/resapi"
	"stayfront/internal/adapters/vault"
	"stayfront/internal/adapters/webshell"
	"stayfront/internal/app"
	"stayfront/internal/domain"
	"stayfront/internal/session"
	"stayfront/internal/shared"
)

func main() {
	_ = godotenv.Load()
	cfg := shared.Load()

	logger := observability.NewLogger(cfg.AppEnv)
	log.Logger = logger

	v, err := vault.New(cfg.StateDir)
	if err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.StateDir).Msg("session state dir unusable")
	}

	// The client reads the token through the store; the store is the only
	// writer. A 401 anywhere logs the session out, and the next page load
	// lands on the login screen via the route guards.
	var store *session.Store
	api := resapi.New(cfg.APIBase, func() string { return store.Token() }, 10)
	api.SetTimeout(cfg.HTTPTimeout)
	store = session.NewStore(api, v, logger)
	api.OnUnauthorized(store.Logout)
	store.OnChange(func(s domain.Session) {
		if s.Authenticated() {
			logger.Info().Str("user", s.User.Username).Msg("session established")
			return
		}
		logger.Info().Msg("session cleared")
	})

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	store.Init(initCtx)
	cancel()

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	queries := app.NewQueryService(api, cache, cfg.CacheTTL)
	commands := app.NewCommandService(api, api, cache)

	srv := webshell.New()
	srv.Mount("/metrics", observability.MetricsHandler(observability.InitRegistry()))
	observability.Serve() // optional side listener on METRICS_ADDR
	srv.MountHandlers(&webshell.Handlers{
		Sessions:  store,
		Queries:   queries,
		Commands:  commands,
		API:       api,
		Admin:     api,
		Uploads:   api,
		MediaBase: cfg.MediaBase,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Str("api", cfg.APIBase).Msg("shell listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("shell server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown incomplete")
	}
}
