package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lovesync-backend/internal/config"
	"lovesync-backend/internal/handlers"
	"lovesync-backend/internal/kvstore"
	"lovesync-backend/internal/middleware"
	"lovesync-backend/internal/models"
	"lovesync-backend/internal/repository"
	"lovesync-backend/internal/services"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Run() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Log.Level)

	// Open the key-value store
	store, closeStore, err := openStore(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to open store")
	}
	defer closeStore()
	log.Info().Str("driver", cfg.Storage.Driver).Msg("Store opened")

	keys := repository.Keys{Prefix: cfg.Storage.KeyPrefix}
	clock := services.RealClock()

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(store, keys)
	pointerRepo := repository.NewPointerRepository(store, keys)
	postRepo := repository.NewCollection[models.Post](store, keys, repository.CollectionPosts)
	albumRepo := repository.NewCollection[models.AlbumPhoto](store, keys, repository.CollectionAlbum)
	goalRepo := repository.NewCollection[models.Goal](store, keys, repository.CollectionGoals)

	// Initialize services
	pairService := services.NewPairService(sessionRepo, pointerRepo, clock)
	feedService := services.NewFeedService(postRepo, clock)
	albumService := services.NewAlbumService(albumRepo, clock)
	goalService := services.NewGoalService(goalRepo)

	// Initialize handlers
	pairHandler := handlers.NewPairHandler(pairService)
	postHandler := handlers.NewPostHandler(feedService)
	albumHandler := handlers.NewAlbumHandler(albumService)
	goalHandler := handlers.NewGoalHandler(goalService)
	homeHandler := handlers.NewHomeHandler(clock)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(corsMiddleware)

	// Routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes: onboarding and logout
		r.Post("/sessions", pairHandler.CreateSession)
		r.Post("/sessions/join", pairHandler.JoinSession)
		r.Post("/logout", pairHandler.Logout)

		// Routes that need a resolved login
		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionMiddleware(pairService))
			r.Get("/session", pairHandler.GetSession)
			r.Put("/profile", pairHandler.UpdateProfile)
			r.Get("/home", homeHandler.GetHome)
			r.Get("/posts", postHandler.GetPosts)
			r.Post("/posts", postHandler.CreatePost)
			r.Post("/posts/{post_id}/like", postHandler.LikePost)
			r.Delete("/posts/{post_id}", postHandler.DeletePost)
			r.Get("/album", albumHandler.GetAlbum)
			r.Post("/album/photos", albumHandler.UploadPhotos)
			r.Delete("/album/photos/{photo_id}", albumHandler.DeletePhoto)
			r.Get("/goals", goalHandler.GetGoals)
			r.Post("/goals", goalHandler.CreateGoal)
			r.Patch("/goals/{goal_id}/progress", goalHandler.UpdateProgress)
			r.Delete("/goals/{goal_id}", goalHandler.DeleteGoal)
		})
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("host", cfg.Server.Host).
			Int("port", cfg.Server.Port).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// openStore builds the configured key-value backend
func openStore(cfg config.StorageConfig) (kvstore.Store, func(), error) {
	switch cfg.Driver {
	case "memory":
		return kvstore.NewMemoryStore(), func() {}, nil
	case "file":
		store, err := kvstore.NewFileStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case "sqlite":
		store, err := kvstore.NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	case "postgres":
		store, err := kvstore.NewPostgresStore(context.Background(), cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// setupLogger configures zerolog logger
func setupLogger(level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// corsMiddleware handles CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
