package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	applicationapp "github.com/sap-portal/backend/internal/application/application"
	bulletinapp "github.com/sap-portal/backend/internal/application/bulletin"
	dashboardapp "github.com/sap-portal/backend/internal/application/dashboard"
	identityapp "github.com/sap-portal/backend/internal/application/identity"
	mediaapp "github.com/sap-portal/backend/internal/application/media"
	officeapp "github.com/sap-portal/backend/internal/application/office"
	"github.com/sap-portal/backend/internal/infrastructure/auth"
	"github.com/sap-portal/backend/internal/infrastructure/config"
	"github.com/sap-portal/backend/internal/infrastructure/event"
	"github.com/sap-portal/backend/internal/infrastructure/logger"
	"github.com/sap-portal/backend/internal/infrastructure/persistence"
	"github.com/sap-portal/backend/internal/infrastructure/storage"
	"github.com/sap-portal/backend/internal/interfaces/http/handler"
	"github.com/sap-portal/backend/internal/interfaces/http/middleware"
	"github.com/sap-portal/backend/internal/interfaces/http/router"
)

const (
	roleStaff    = "staff"
	roleDirector = "director"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync(log) }()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database with zap-backed gorm logger
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLogger := logger.NewGormLogger(log, gormLogLevel)
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	// Initialize repositories
	appRepo := persistence.NewGormApplicationRepository(db.DB)
	docRepo := persistence.NewGormDocumentRepository(db.DB)
	officeRepo := persistence.NewGormOfficeRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	announcementRepo := persistence.NewGormAnnouncementRepository(db.DB)
	reminderRepo := persistence.NewGormReminderRepository(db.DB)
	upcomingRepo := persistence.NewGormUpcomingDateRepository(db.DB)

	// Initialize event bus and subscribe handlers
	eventBus := event.NewInMemoryEventBus(log)
	reminderHandler := bulletinapp.NewInterviewReminderHandler(reminderRepo, log)
	eventBus.Subscribe(reminderHandler, reminderHandler.EventTypes()...)

	ctx := context.Background()
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := eventBus.Stop(stopCtx); err != nil {
			log.Error("Failed to stop event bus", zap.Error(err))
		}
	}()

	// Initialize JWT service and token blacklist
	jwtService := auth.NewJWTService(cfg.JWT)
	tokenBlacklist := newTokenBlacklist(cfg, log)

	// Initialize object storage for requirement documents and photos
	objectStorage, err := storage.NewS3ObjectStorage(&cfg.Storage,
		storage.WithLogger(log),
		storage.WithPresignExpiration(cfg.Storage.PresignExpiry),
	)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}

	bucketCtx, bucketCancel := context.WithTimeout(ctx, 10*time.Second)
	if err := objectStorage.EnsureBucket(bucketCtx); err != nil {
		log.Warn("Failed to ensure storage bucket, uploads may fail", zap.Error(err))
	}
	bucketCancel()

	// Initialize application services
	applicationService := applicationapp.NewApplicationService(appRepo, docRepo, officeRepo, eventBus, log)
	documentService := applicationapp.NewDocumentService(appRepo, docRepo, objectStorage, eventBus, log)
	officeService := officeapp.NewOfficeService(officeRepo, appRepo, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, tokenBlacklist, log)
	userService := identityapp.NewUserService(userRepo, log)
	bulletinService := bulletinapp.NewBulletinService(announcementRepo, reminderRepo, upcomingRepo, log)
	dashboardService := dashboardapp.NewDashboardService(appRepo, officeRepo, log)
	photoService := mediaapp.NewPhotoService(objectStorage, cfg.Media, log)

	// Initialize HTTP handlers
	applicationHandler := handler.NewApplicationHandler(applicationService)
	documentHandler := handler.NewDocumentHandler(documentService)
	officeHandler := handler.NewOfficeHandler(officeService)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	bulletinHandler := handler.NewBulletinHandler(bulletinService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	mediaHandler := handler.NewMediaHandler(photoService)
	systemHandler := handler.NewSystemHandler()

	// Set up gin
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.HTTP.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	}
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(limiter))
	}

	engine.GET("/health", healthHandler(db, log))

	// Set up versioned API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: tokenBlacklist,
		Logger:         log,
		SkipPaths: []string{
			"/health",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
			"/api/v1/applications/new",
			"/api/v1/applications/renewal",
			"/api/v1/offices",
			"/api/v1/offices/capacity",
			"/api/v1/bulletin",
			"/api/v1/photos/process",
			"/api/v1/system/ping",
			"/api/v1/system/info",
		},
		SkipPathPrefixes: []string{
			"/api/v1/applications/track",
			"/api/v1/offices/capacity/",
		},
	}
	r.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Applications: the submission and tracking endpoints are public, the
	// processing endpoints require a signed-in account
	applications := router.NewDomainGroup("applications", "/applications")
	applications.POST("/new", applicationHandler.SubmitNew)
	applications.POST("/renewal", applicationHandler.SubmitRenewal)
	applications.GET("/track/:student_number", applicationHandler.Track)
	applications.GET("", applicationHandler.List)
	applications.GET("/interviews", applicationHandler.ListInterviews)
	applications.GET("/:id", applicationHandler.GetByID)
	applications.PUT("/:id/status", applicationHandler.UpdateStatus)
	applications.DELETE("/:id", middleware.RequireRole(roleDirector), applicationHandler.Delete)
	applications.POST("/:id/documents/initiate", documentHandler.InitiateUpload)
	applications.POST("/:id/documents/confirm", documentHandler.ConfirmUpload)
	applications.GET("/:id/documents", documentHandler.List)
	applications.DELETE("/:id/documents/:document_id", documentHandler.Delete)

	// Offices: the registry listing and capacity views are public, the
	// registry itself is managed by the director
	offices := router.NewDomainGroup("offices", "/offices")
	offices.GET("", officeHandler.List)
	offices.GET("/capacity", officeHandler.Capacity)
	offices.GET("/capacity/:name", officeHandler.CapacityByName)
	offices.GET("/:id", officeHandler.GetByID)
	offices.POST("", middleware.RequireRole(roleDirector), officeHandler.Create)
	offices.PUT("/:id", middleware.RequireRole(roleDirector), officeHandler.Update)
	offices.DELETE("/:id", middleware.RequireRole(roleDirector), officeHandler.Deactivate)
	offices.POST("/:id/reactivate", middleware.RequireRole(roleDirector), officeHandler.Reactivate)

	// Bulletin: the board is public, posting requires a signed-in account
	bulletinGroup := router.NewDomainGroup("bulletin", "/bulletin")
	bulletinGroup.GET("", bulletinHandler.Board)
	bulletinGroup.POST("/announcements", bulletinHandler.CreateAnnouncement)
	bulletinGroup.POST("/announcements/:id/unpublish", bulletinHandler.UnpublishAnnouncement)
	bulletinGroup.DELETE("/announcements/:id", bulletinHandler.DeleteAnnouncement)
	bulletinGroup.POST("/reminders", bulletinHandler.CreateReminder)
	bulletinGroup.DELETE("/reminders/:id", bulletinHandler.DeleteReminder)
	bulletinGroup.POST("/upcoming-dates", bulletinHandler.CreateUpcomingDate)
	bulletinGroup.DELETE("/upcoming-dates/:id", bulletinHandler.DeleteUpcomingDate)

	// Auth
	authGroup := router.NewDomainGroup("auth", "/auth")
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authGroup.POST("/login", middleware.RateLimit(authLimiter), authHandler.Login)
	} else {
		authGroup.POST("/login", authHandler.Login)
	}
	authGroup.POST("/refresh", authHandler.RefreshToken)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.GetCurrentUser)
	authGroup.POST("/password", authHandler.ChangePassword)

	// Account management is restricted to the director
	users := router.NewDomainGroup("users", "/users")
	users.Use(middleware.RequireRole(roleDirector))
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.GetByID)
	users.DELETE("/:id", userHandler.Deactivate)

	// Dashboards
	dashboards := router.NewDomainGroup("dashboard", "/dashboard")
	dashboards.GET("/staff", middleware.RequireAnyRole(roleStaff, roleDirector), dashboardHandler.Staff)
	dashboards.GET("/director", middleware.RequireRole(roleDirector), dashboardHandler.Director)

	// Media: applicant photo processing used by the public forms
	photos := router.NewDomainGroup("photos", "/photos")
	photos.POST("/process", mediaHandler.ProcessPhoto)

	// System
	system := router.NewDomainGroup("system", "/system")
	system.GET("/ping", systemHandler.Ping)
	system.GET("/info", systemHandler.GetSystemInfo)

	r.Register(applications).
		Register(offices).
		Register(bulletinGroup).
		Register(authGroup).
		Register(users).
		Register(dashboards).
		Register(photos).
		Register(system).
		Setup()

	// Start HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// newTokenBlacklist connects to Redis for token revocation. Outside of
// production a failed connection falls back to the in-memory blacklist so
// the server can run without a Redis instance.
func newTokenBlacklist(cfg *config.Config, log *zap.Logger) auth.TokenBlacklist {
	blacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		if cfg.App.Env == "production" {
			log.Fatal("Failed to connect to Redis token blacklist", zap.Error(err))
		}
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		return auth.NewInMemoryTokenBlacklist()
	}

	log.Info("Redis token blacklist connected",
		zap.String("host", cfg.Redis.Host),
		zap.Int("port", cfg.Redis.Port),
	)
	return blacklist
}

func healthHandler(db *persistence.Database, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			log.Error("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}
