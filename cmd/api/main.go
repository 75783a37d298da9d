package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kobiowuquadri/book-traker/internal/config"
	apphttp "github.com/kobiowuquadri/book-traker/internal/http"
	"github.com/kobiowuquadri/book-traker/internal/httpx"
	"github.com/kobiowuquadri/book-traker/internal/logger"
	"github.com/kobiowuquadri/book-traker/internal/platform/googlebooks"
	"github.com/kobiowuquadri/book-traker/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("bookshelf-api", "info", false)
		bootLog.Fatal().Err(err).Msg("loading config")
	}

	log := logger.New("bookshelf-api", cfg.App.LogLevel, cfg.App.IsDev())

	dbPool := mustOpenDB(log, cfg.DB)
	defer dbPool.Close()

	userRepository := store.NewUserPG(dbPool)
	shelfRepository := store.NewShelfPG(dbPool)
	catalog := googlebooks.NewClient(cfg.GoogleBooks.BaseURL, cfg.GoogleBooks.APIKey, cfg.GoogleBooks.Timeout, cfg.GoogleBooks.RPS)

	bookHandler := apphttp.NewBookHandler(catalog)
	shelfHandler := apphttp.NewShelfHandler(shelfRepository, userRepository)
	authHandler := apphttp.NewAuthHandler(userRepository, cfg.JWT.Secret, cfg.JWT.TTL)

	router := apphttp.NewRouter(bookHandler, shelfHandler, authHandler, cfg.JWT.Secret)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	defer rateLimit.Stop()
	handler := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.CORSMiddleware(cfg.HTTP.AllowedOrigins),
		httpx.SecurityHeadersMiddleware,
		httpx.RequestSizeLimitMiddleware(cfg.HTTP.MaxBodyBytes),
		rateLimit.Middleware,
	)

	httpServer := &http.Server{
		Addr:         cfg.App.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.App.Addr).Msg("starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

func mustOpenDB(log zerolog.Logger, cfg config.DBConfig) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create db pool")
	}
	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatal().Err(err).Str("dsn", redactDSN(cfg.DSN)).Msg("cannot ping database")
	}
	log.Info().Msg("database connection OK")
	return pool
}

func redactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
