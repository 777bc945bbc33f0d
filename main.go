package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/andrewpaige1/nodebook-local/config"
	"github.com/andrewpaige1/nodebook-local/handlers"
	"github.com/andrewpaige1/nodebook-local/library"
	"github.com/andrewpaige1/nodebook-local/middleware"
	"github.com/andrewpaige1/nodebook-local/utils"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := utils.NewLogger(env.LogLevel, env.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	lib, err := library.Open(ctx, env, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open library")
	}
	authMiddleware, err := middleware.EnsureValidToken(env, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to configure token validation")
	}

	libraryHandler := &handlers.LibraryHandler{
		Library:    lib,
		Log:        logger.With().Str("component", "handlers").Logger(),
		AllowClear: env.IsDevelopment,
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", authMiddleware(libraryHandler.Routes()))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   env.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(middleware.RequestLogger(logger)(mux))

	server := &http.Server{
		Addr:              "0.0.0.0:" + env.Port,
		Handler:           corsHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	logger.Info().Str("addr", server.Addr).Str("backend", env.StorageBackend).Msg("Listening")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Server failed")
	}
}
