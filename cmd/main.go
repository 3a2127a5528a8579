package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "homeservices-backend/docs"
	"homeservices-backend/internal/config"
	"homeservices-backend/internal/database"
	"homeservices-backend/internal/handlers"
	"homeservices-backend/internal/middleware"
	"homeservices-backend/internal/models"
	"homeservices-backend/internal/repository"
	"homeservices-backend/internal/routes"
	"homeservices-backend/internal/services"
	"homeservices-backend/internal/translate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

// @title Home Services API
// @version 1.0
// @description Multilingual content API for the marketing site and admin dashboard.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @host localhost:8020
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load environment variables
	loadEnvFile()

	// Load configuration
	cfg := config.Load()

	// Setup logger
	log := setupLogger()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Warnf("Configuration validation warning: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	redisClient := connectRedis(cfg.Redis, log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	minioService, err := services.NewMinIOService(&cfg.MinIO, log)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}

	translator := translate.NewClient(
		cfg.Translate.BaseURL,
		cfg.Translate.APIKey,
		cfg.Translate.SourceLang,
		cfg.Translate.HTTPTimeout,
		log,
	)

	langRepo := repository.NewLanguageRepository(db)
	registry, err := services.NewLanguageRegistry(context.Background(), langRepo)
	if err != nil {
		log.Fatalf("Failed to load language registry: %v", err)
	}

	serviceRepo := repository.NewReplicatedRepository[models.Service](db, "slug")
	blogRepo := repository.NewReplicatedRepository[models.Blog](db, "slug")
	commentRepo := repository.NewReplicatedRepository[models.Comment](db, "comment_id")
	reviewRepo := repository.NewReplicatedRepository[models.Review](db, "review_id")
	faqRepo := repository.NewReplicatedRepository[models.FAQ](db, "faq_id")
	statRepo := repository.NewReplicatedRepository[models.Stat](db, "stat_id")
	contactRepo := repository.NewReplicatedRepository[models.ContactSubmission](db, "contact_id")
	aboutRepo := repository.NewReplicatedRepository[models.AboutUs](db, "about_key")
	adminRepo := repository.NewAdminRepository(db)

	serviceService := services.NewServiceService(
		serviceRepo,
		services.NewReplicator(serviceRepo, registry, translator, log, "service"),
		minioService, log,
	)
	blogService := services.NewBlogService(
		blogRepo, commentRepo,
		services.NewReplicator(blogRepo, registry, translator, log, "blog"),
		minioService, log,
	)
	commentService := services.NewCommentService(
		commentRepo, blogRepo,
		services.NewReplicator(commentRepo, registry, translator, log, "comment"),
		log,
	)
	reviewService := services.NewReviewService(
		services.NewReplicator(reviewRepo, registry, translator, log, "review"), log,
	)
	faqService := services.NewFAQService(
		services.NewReplicator(faqRepo, registry, translator, log, "faq"), log,
	)
	statService := services.NewStatService(
		services.NewReplicator(statRepo, registry, translator, log, "stat"), log,
	)
	contactService := services.NewContactService(
		services.NewReplicator(contactRepo, registry, translator, log, "contact"), log,
	)
	aboutService := services.NewAboutService(
		services.NewReplicator(aboutRepo, registry, translator, log, "about"),
		minioService, log,
	)
	authService := services.NewAuthService(adminRepo, redisClient, cfg.Auth, log)

	if err := authService.SeedAdmin(context.Background()); err != nil {
		log.Warnf("Could not seed admin account: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Home Services API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app, routes.Handlers{
		Auth:     handlers.NewAuthHandler(authService, cfg.Auth, log),
		Language: handlers.NewLanguageHandler(registry),
		Service:  handlers.NewServiceHandler(serviceService, log),
		Blog:     handlers.NewBlogHandler(blogService, commentService, log),
		Review:   handlers.NewReviewHandler(reviewService, log),
		FAQ:      handlers.NewFAQHandler(faqService, log),
		Stat:     handlers.NewStatHandler(statService, log),
		Contact:  handlers.NewContactHandler(contactService, log),
		About:    handlers.NewAboutHandler(aboutService, log),
		Upload:   handlers.NewUploadHandler(minioService, log),
	},
		middleware.RequireAuth(authService, cfg.Auth.CookieName),
		middleware.OptionalAuth(authService, cfg.Auth.CookieName),
	)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Home Services API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func connectRedis(cfg config.RedisConfig, log *logrus.Logger) *redis.Client {
	if cfg.URL == "" {
		log.Warn("REDIS_URL not set, login rate limiting disabled")
		return nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		log.Warnf("Invalid REDIS_URL, login rate limiting disabled: %v", err)
		return nil
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warnf("Redis unreachable, login rate limiting disabled: %v", err)
		client.Close()
		return nil
	}

	return client
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// Credentialed CORS cannot use a wildcard origin, so the site origin must
	// be configured explicitly.
	origins := os.Getenv("CORS_ALLOW_ORIGINS")
	if origins == "" {
		origins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "homeservices-backend",
			"version":   "1.0.0",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
