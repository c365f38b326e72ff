// Articlehub is a small REST backend: user sign-up and sign-in with bearer
// tokens, article CRUD with ownership checks, and a redis-backed cache-aside
// item endpoint. This file wires configuration, the database pool, the redis
// client, services, and handlers together with explicit constructors, sets up
// the HTTP router and middleware, and runs the server with graceful shutdown.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/user/articlehub-go/articles"
	"github.com/user/articlehub-go/auth"
	"github.com/user/articlehub-go/cache"
	"github.com/user/articlehub-go/config"
	"github.com/user/articlehub-go/db"
	"github.com/user/articlehub-go/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := cache.NewRedisClient(cfg.Cache)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	// Explicit constructor composition: every component receives its
	// collaborators as arguments.
	hasher := auth.NewPasswordHasher(cfg.Auth.PasswordSecret)
	issuer := auth.NewTokenIssuer(cfg.Auth)
	requireAuth := auth.RequireAuth(issuer)

	authService := auth.NewAuthService(pool, hasher, issuer)
	authHandlers := auth.NewHandlers(authService)

	articleService := articles.NewService(articles.NewPgxRepository(pool))
	articleHandler := articles.NewHandler(articleService)

	cacheService := cache.NewService(cache.NewRedisStore(redisClient))
	itemsHandler := cache.NewItemsHandler(cacheService, cfg.Cache.ItemTTL)

	userService := users.NewUserService(pool)
	userHandlers := users.NewUserHandlers(userService)

	r := chi.NewRouter()

	// Global middleware; chi requires these before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/sign-up", authHandlers.HandleSignUp())
		r.Post("/sign-in", authHandlers.HandleSignIn())
	})

	r.Route("/article", func(r chi.Router) {
		articleHandler.RegisterRoutes(r, requireAuth)
	})

	r.Route("/items", func(r chi.Router) {
		itemsHandler.RegisterRoutes(r)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/me", userHandlers.HandleGetProfile())
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
