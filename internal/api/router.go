package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/studyshare/campus-portal/docs"
	"github.com/studyshare/campus-portal/internal/api/handler"
	"github.com/studyshare/campus-portal/internal/api/middleware"
	"github.com/studyshare/campus-portal/internal/core/ports"
)

// Dependencies carries everything the router needs to register routes.
// Mongo and Redis are optional; they are only used by the readiness probe
// when the respective driver is active.
type Dependencies struct {
	AuthService   ports.AuthService
	FileService   ports.FileService
	CourseService ports.CourseService
	Dispatcher    handler.DownloadDispatcher
	JWTSecret     string
	MaxUploadSize int64
	Mongo         *mongo.Database
	Redis         *redis.Client
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	profileHandler := handler.NewProfileHandler(deps.AuthService)
	fileHandler := handler.NewFileHandler(deps.FileService, deps.Dispatcher, deps.MaxUploadSize)
	courseHandler := handler.NewCourseHandler(deps.CourseService)
	authMiddleware := middleware.Auth(deps.JWTSecret)

	// --- Auth routes (no token required) ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMiddleware)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/me", profileHandler.Me)
	v1.PUT("/me", profileHandler.Update)
	v1.GET("/files", fileHandler.Browse)
	v1.POST("/files", fileHandler.Upload)
	v1.POST("/files/batch", fileHandler.UploadBatch)
	v1.GET("/files/:id", fileHandler.Get)
	v1.POST("/files/:id/download", fileHandler.Download)
	v1.GET("/courses", courseHandler.List)
	v1.GET("/courses/:code", courseHandler.Get)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
