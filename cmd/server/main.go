package main

import (
	"fmt"
	"log"
	"net/http"

	"fretedash/internal/config"
	"fretedash/internal/handlers"
	"fretedash/internal/middleware"
	"fretedash/internal/repositories/mongodb"
	"fretedash/internal/services"
	"fretedash/pkg/cache"
	"fretedash/pkg/cep"
	"fretedash/pkg/database"
	"fretedash/pkg/logger"
	"fretedash/pkg/storage"
	"fretedash/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: "json",
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.Config{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	// Redis only backs the CEP cache; the server runs without it.
	var cepCache cep.Cache
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Warn("Redis indisponível, consultas de CEP não serão cacheadas")
	} else {
		defer redisCache.Close()
		cepCache = redisCache
	}

	storageProvider, err := newStorageProvider(cfg.Storage)
	if err != nil {
		appLogger.Fatalf("Failed to initialize storage provider: %v", err)
	}

	solicitacaoRepo := mongodb.NewSolicitacaoRepository(db.Database)
	corridaRepo := mongodb.NewCorridaRepository(db.Database)
	motoristaRepo := mongodb.NewMotoristaRepository(db.Database)

	mediaService := services.NewMediaService(storageProvider, appLogger)
	corridaService := services.NewCorridaService(solicitacaoRepo, corridaRepo, motoristaRepo, mediaService, db, appLogger)
	solicitacaoService := services.NewSolicitacaoService(solicitacaoRepo, corridaRepo)
	motoristaService := services.NewMotoristaService(motoristaRepo, mediaService, appLogger)
	dashboardService := services.NewDashboardService(corridaRepo, motoristaRepo, appLogger)
	cepClient := cep.NewClientWithBaseURL(cfg.CEP.BaseURL, cepCache, cfg.CEP.CacheTTL)

	solicitacaoHandler := handlers.NewSolicitacaoHandler(solicitacaoService)
	corridaHandler := handlers.NewCorridaHandler(corridaService)
	motoristaHandler := handlers.NewMotoristaHandler(motoristaService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	cepHandler := handlers.NewCEPHandler(cepClient)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		appLogger.Fatalf("Invalid trusted proxies: %v", err)
	}
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthRequired(cfg.Security.JWTSecret))
	{
		routes.SetupCorridaRoutes(v1, solicitacaoHandler, corridaHandler)
		routes.SetupMotoristaRoutes(v1, motoristaHandler)
		routes.SetupDashboardRoutes(v1, dashboardHandler)
		routes.SetupCEPRoutes(v1, cepHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting %s on %s", cfg.App.Name, addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("Server stopped: %v", err)
	}
}

func newStorageProvider(cfg *config.StorageConfig) (storage.StorageProvider, error) {
	switch cfg.Provider {
	case "s3":
		return storage.NewAWSS3Storage(cfg.AWS.Region, cfg.AWS.Bucket, cfg.AWS.CDNDomain)
	case "gcs":
		return storage.NewGCPStorage(cfg.GCP.Bucket, cfg.GCP.CredentialsFile, cfg.GCP.CDNDomain)
	case "local":
		return storage.NewLocalStorage(cfg.Local.BasePath, cfg.Local.BaseURL)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}
