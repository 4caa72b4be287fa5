// Package bootstrap wires configuration, infrastructure, services and
// handlers into a runnable application.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	httpHandler "github.com/HaqueArif/shine-on-server/internal/handler/http"
	mongopersistence "github.com/HaqueArif/shine-on-server/internal/infra/persistence/mongo"
	"github.com/HaqueArif/shine-on-server/internal/infra/setup"
	"github.com/HaqueArif/shine-on-server/internal/service"
)

// Names of the database and collections, fixed by the deployed frontend.
const (
	databaseName       = "reliefGoods"
	usersCollection    = "users"
	supplyCollection   = "supply"
	donationCollection = "donation"
	commentsCollection = "comments"
)

// Config holds process-wide settings loaded once at startup.
type Config struct {
	MongoURI          string
	MongoDatabase     string
	ServerPort        string
	JWTSecret         string
	JWTExpiry         time.Duration
	LogLevel          string
	AppEnv            string
	CORSAllowedOrigin string
}

// LoadConfig reads configuration from the environment, with an optional
// .env file for local development.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // environment variables alone are fine

	cfg := &Config{
		MongoURI:          os.Getenv("MONGODB_URI"),
		MongoDatabase:     os.Getenv("MONGODB_DB"),
		ServerPort:        os.Getenv("PORT"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		AppEnv:            os.Getenv("APP_ENV"),
		CORSAllowedOrigin: os.Getenv("CORS_ALLOWED_ORIGIN"),
		JWTExpiry:         24 * time.Hour,
	}

	if expiresIn := os.Getenv("EXPIRES_IN"); expiresIn != "" {
		d, err := time.ParseDuration(expiresIn)
		if err != nil || d <= 0 {
			logrus.Warnf("Invalid EXPIRES_IN '%s', using default 24h", expiresIn)
		} else {
			cfg.JWTExpiry = d
		}
	}

	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = databaseName
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "5000"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = "development"
	}
	if cfg.CORSAllowedOrigin == "" {
		cfg.CORSAllowedOrigin = "https://relief-goods.web.app"
	}
	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("environment variable MONGODB_URI must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET must be set")
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logrus.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", cfg.LogLevel)
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// App contains the application's components.
type App struct {
	Config      *Config
	Log         *logrus.Logger
	MongoClient *mongo.Client
	HttpServer  *http.Server
}

// NewApp creates and wires all application components.
func NewApp() (*App, error) {
	// 1. Configuration
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}

	// 2. Logger
	log := logrus.New()
	if cfg.AppEnv == "production" {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, ForceColors: true})
	}
	logLevel, _ := logrus.ParseLevel(cfg.LogLevel) // validated in LoadConfig
	log.SetLevel(logLevel)
	log.SetOutput(os.Stdout)
	log.Info("Configuration loaded successfully")

	// 3. Infrastructure
	log.Info("Connecting to MongoDB...")
	client, err := setup.InitMongo(cfg.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to init MongoDB: %w", err)
	}
	log.Info("Connected to MongoDB")
	db := client.Database(cfg.MongoDatabase)

	// 4. Repositories
	userRepo := mongopersistence.NewMongoUserRepository(db.Collection(usersCollection))
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ensure user indexes: %w", err)
	}
	supplyRepo := mongopersistence.NewMongoSupplyRepository(db.Collection(supplyCollection))
	donationRepo := mongopersistence.NewMongoDonationRepository(db.Collection(donationCollection))
	commentRepo := mongopersistence.NewMongoCommentRepository(db.Collection(commentsCollection))
	log.Info("Repositories initialized")

	// 5. Services
	authService, err := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to create AuthService: %w", err)
	}
	supplyService := service.NewSupplyService(supplyRepo)
	donationService := service.NewDonationService(donationRepo, time.Now)
	commentService := service.NewCommentService(commentRepo, time.Now)
	log.Info("Services initialized")

	// 6. Handlers
	authHandler := httpHandler.NewAuthHandler(authService)
	supplyHandler := httpHandler.NewSupplyHandler(supplyService)
	donationHandler := httpHandler.NewDonationHandler(donationService)
	commentHandler := httpHandler.NewCommentHandler(commentService)
	log.Info("Handlers initialized")

	// 7. Gin engine and routes
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(corsMiddleware(cfg.CORSAllowedOrigin))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Server is running smoothly",
			"timestamp": time.Now(),
		})
	})

	api := router.Group("/api")
	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		// Historical route layout: the CRUD surface lives under /auth even
		// though no route checks a token.
		authRoutes.GET("/all-supplies", supplyHandler.List)
		authRoutes.POST("/all-supplies", supplyHandler.Create)
		authRoutes.PUT("/all-supplies/:id", supplyHandler.Update)
		authRoutes.DELETE("/all-supplies/:id", supplyHandler.Delete)
		authRoutes.GET("/donate", donationHandler.Report)
		authRoutes.POST("/donate", donationHandler.Create)
		authRoutes.GET("/comments", commentHandler.List)
		authRoutes.POST("/comments", commentHandler.Create)
	}
	log.Info("Router setup complete")

	// 8. HTTP server
	httpServer := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	return &App{
		Config:      cfg,
		Log:         log,
		MongoClient: client,
		HttpServer:  httpServer,
	}, nil
}

// Start runs the HTTP server in a background goroutine.
func (a *App) Start() {
	go func() {
		a.Log.Infof("HTTP server starting to listen on %s", a.HttpServer.Addr)
		if err := a.HttpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Log.Fatalf("Failed to start HTTP server: %v", err)
		}
		a.Log.Info("HTTP server stopped listening.")
	}()
}

// Shutdown gracefully stops the HTTP server and closes the MongoDB client.
func (a *App) Shutdown() {
	a.Log.Info("Shutting down application...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.HttpServer.Shutdown(ctx); err != nil {
		a.Log.Errorf("Error shutting down HTTP server: %v", err)
	} else {
		a.Log.Info("HTTP server shut down gracefully.")
	}

	if a.MongoClient != nil {
		if err := a.MongoClient.Disconnect(ctx); err != nil {
			a.Log.Errorf("Error disconnecting MongoDB client: %v", err)
		} else {
			a.Log.Info("MongoDB connection closed.")
		}
	}

	a.Log.Info("Application shutdown complete.")
}

// corsMiddleware allows the deployed frontend origin.
func corsMiddleware(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// LoggerMiddleware logs every request with status, latency and client info.
func LoggerMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()
		latency := time.Since(startTime)
		statusCode := c.Writer.Status()
		path := c.Request.URL.Path
		if c.Request.URL.RawQuery != "" {
			path = path + "?" + c.Request.URL.RawQuery
		}
		errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String()

		entry := log.WithFields(logrus.Fields{
			"status_code": statusCode,
			"latency_ms":  latency.Milliseconds(),
			"client_ip":   c.ClientIP(),
			"method":      c.Request.Method,
			"path":        path,
		})

		if errorMessage != "" {
			entry.Error(errorMessage)
		} else if statusCode >= 500 {
			entry.Error("Server error")
		} else if statusCode >= 400 {
			entry.Warn("Client error")
		} else {
			entry.Info("Request handled")
		}
	}
}
