package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"bookcatalog/internal/auth"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/config"
	apphttp "bookcatalog/internal/http"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg := config.Load()

	users, err := config.LoadUsers(cfg.UsersFile)
	if err != nil {
		log.Fatalf("cannot load users: %v", err)
	}
	directory := auth.NewDirectory(users)

	repo := mustOpenRepository(cfg)
	service := catalog.NewService(repo)

	bookHandler := apphttp.NewBookHandler(service)
	authHandler := apphttp.NewAuthHandler(directory)

	router := http.NewServeMux()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("/login", authHandler.Login)

	booksMux := http.NewServeMux()
	booksMux.HandleFunc("/books", bookHandler.Collection)
	booksMux.HandleFunc("/books/", bookHandler.Item)
	protectedBooks := httpx.AuthMiddleware(directory)(booksMux)
	router.Handle("/books", protectedBooks)
	router.Handle("/books/", protectedBooks)

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(1 << 20)(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s (backend=%s)", cfg.Addr, cfg.StorageBackend)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func mustOpenRepository(cfg config.Config) catalog.Repository {
	switch cfg.StorageBackend {
	case "json":
		repo, err := store.NewBookJSON(cfg.StoragePath)
		if err != nil {
			log.Fatalf("cannot open json store at %s: %v", cfg.StoragePath, err)
		}
		return repo
	case "memory":
		return store.NewBookMemory()
	case "postgres":
		dbPool := mustOpenDB(cfg.DatabaseDSN)
		repo := store.NewBookPG(dbPool)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("cannot ensure schema: %v", err)
		}
		return repo
	default:
		log.Fatalf("unknown storage backend: %s", cfg.StorageBackend)
		return nil
	}
}

func mustOpenDB(dsn string) *pgxpool.Pool {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		log.Fatalf("cannot ping database (%s): %v", redactDSN(dsn), err)
	}
	log.Println("database connection OK")
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
