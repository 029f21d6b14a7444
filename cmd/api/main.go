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
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/studyshare/campus-portal/internal/api"
	"github.com/studyshare/campus-portal/internal/core/ports"
	"github.com/studyshare/campus-portal/internal/core/service"
	"github.com/studyshare/campus-portal/internal/infrastructure/config"
	"github.com/studyshare/campus-portal/internal/infrastructure/db/memory"
	mongodb "github.com/studyshare/campus-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/studyshare/campus-portal/internal/infrastructure/db/redis"
	"github.com/studyshare/campus-portal/internal/infrastructure/queue"
	"github.com/studyshare/campus-portal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Campus Portal API
// @version         1.0
// @description     Course file sharing portal: authenticated students upload,
// @description     browse, and download course files and maintain their profiles.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Record store ---
	var (
		users       ports.UserRepository
		files       ports.FileRepository
		courses     ports.CourseRepository
		mongoDB     *mongo.Database
		mongoClient *mongo.Client
	)
	switch cfg.StoreDriver {
	case "mongo":
		var db *mongo.Database
		mongoClient, db, err = mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		mongoDB = db

		userRepo := mongodb.NewUserRepository(db)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index creation failed")
		}
		users = userRepo
		files = mongodb.NewFileRepository(db)
		courses = mongodb.NewCourseRepository(db)
	default:
		store, err := memory.NewSeededStore()
		if err != nil {
			log.Fatal().Err(err).Msg("seeding in-memory store failed")
		}
		users = store.Users()
		files = store.Files()
		courses = store.Courses()
	}

	// --- Session store (Redis when configured, in-memory otherwise) ---
	var (
		sessions    ports.SessionStore
		redisClient *redis.Client
	)
	if cfg.Redis.Addr != "" {
		redisClient, err = redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		sessions = redisdb.NewSessionStore(redisClient)
	} else {
		sessions = memory.NewSessionStore()
	}

	// --- Services ---
	authService := service.NewAuthService(users, sessions, cfg.EmailDomain, cfg.JWTSecret, cfg.SessionTTL, log)
	cache := service.NewFileCache(cfg.CacheSize, cfg.CacheTTL)
	fileService := service.NewFileService(files, users, cache, log)
	courseService := service.NewCourseService(courses)

	// --- Download-command dispatcher ---
	dispatcher := queue.NewDispatcher(cfg.DownloadWorkers, fileService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(api.Dependencies{
		AuthService:   authService,
		FileService:   fileService,
		CourseService: courseService,
		Dispatcher:    dispatcher,
		JWTSecret:     cfg.JWTSecret,
		MaxUploadSize: cfg.MaxUploadBytes,
		Mongo:         mongoDB,
		Redis:         redisClient,
		Logger:        log,
	})

	go func() {
		log.Info().
			Str("port", cfg.Port).
			Str("store_driver", cfg.StoreDriver).
			Msg("campus portal starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}

	log.Info().Msg("campus portal stopped")
}
