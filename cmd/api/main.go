package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"github.com/hallgrim/bokat/internal/adapter/handler"
	"github.com/hallgrim/bokat/internal/adapter/repository/flatfile"
	"github.com/hallgrim/bokat/internal/adapter/repository/relational"
	"github.com/hallgrim/bokat/internal/core/locale"
	"github.com/hallgrim/bokat/internal/core/ports"
	"github.com/hallgrim/bokat/internal/core/services"
	"github.com/hallgrim/bokat/internal/platform/database"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// openStore selects exactly one backend for the process; the flat-file
// and relational stores are never live at the same time.
func openStore() (ports.Store, func(), error) {
	backend := env("BOKAT_BACKEND", "sqlite")

	switch backend {
	case "csv":
		store, err := flatfile.NewStore(env("BOKAT_DATA_DIR", "data"))
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil

	case "sqlite":
		db, err := database.NewSQLiteDB(env("BOKAT_DB_PATH", "bokat.db"))
		if err != nil {
			return nil, nil, err
		}
		if err := relational.CreateSchema(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		return relational.NewStore(db), func() { db.Close() }, nil

	case "postgres":
		db, err := database.NewPostgresDB(database.Config{
			Host:     env("DB_HOST", "localhost"),
			Port:     env("DB_PORT", "5432"),
			User:     env("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   env("DB_NAME", "bokat"),
		})
		if err != nil {
			return nil, nil, err
		}
		if err := relational.CreateSchema(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
		return relational.NewStore(db), func() { db.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", backend)
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using process environment")
	}

	store, closeStore, err := openStore()
	if err != nil {
		slog.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	var cache *redis.Client
	if host := os.Getenv("REDIS_HOST"); host != "" {
		cache = redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%s", host, env("REDIS_PORT", "6379")),
			DB:   0,
		})

		if err := cache.Ping(context.Background()).Err(); err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		slog.Info("redis connected")
	}

	loc := locale.Match(env("BOKAT_LOCALE", "sv"))

	svc := services.NewBookingService(store, cache, loc)

	mux := http.NewServeMux()
	handler.NewBookingHandler(svc).Register(mux)

	server := &http.Server{
		Addr:         ":" + env("PORT", "8080"),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server startup failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited")
}
