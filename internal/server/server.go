package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"townkit/internal/config"
	"townkit/internal/database"
	"townkit/internal/email"
	"townkit/internal/handlers"
	"townkit/internal/repositories"
	"townkit/internal/routes"
	"townkit/internal/services"
)

type Server struct {
	HTTP *http.Server
	pool *pgxpool.Pool
}

// New wires the whole dependency graph: config, pool, migrations, redis,
// email provider, repositories, services, handlers, routes.
func New() (*Server, error) {
	cfg := config.Load()

	pool, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(pool); err != nil {
		pool.Close()
		return nil, err
	}

	// Redis is optional; without it requirement reads go straight to
	// the store.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("failed to connect to Redis at %s, caching disabled: %v", cfg.RedisAddr, err)
			rdb = nil
		} else {
			log.Println("Connected to Redis successfully")
		}
	}

	provider, err := email.NewProvider(cfg.EmailProvider, cfg.EmailAPIKey)
	if err != nil {
		pool.Close()
		return nil, err
	}
	dispatcher := email.NewDispatcher(provider, cfg.EmailFrom)

	// Dependency injection
	cityRepo := repositories.NewCityRepository(pool)
	projectRepo := repositories.NewProjectRepository(pool)
	contractorRepo := repositories.NewContractorRepository(pool)
	leadRepo := repositories.NewLeadRepository(pool)
	matchRepo := repositories.NewMatchRepository(pool)
	requirementRepo := repositories.NewPermitRequirementRepository(pool)
	cacheRepo := repositories.NewCacheRepository(rdb)

	leadService := services.NewLeadService(cityRepo, projectRepo, leadRepo, contractorRepo, matchRepo, dispatcher)
	catalogService := services.NewCatalogService(cityRepo, projectRepo, requirementRepo, cacheRepo)

	leadHandler := handlers.NewLeadHandler(leadService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	calculatorHandler := handlers.NewCalculatorHandler()

	// Initialize Gin router
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router, leadHandler, catalogHandler, calculatorHandler)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return &Server{
		HTTP: httpServer,
		pool: pool,
	}, nil
}

// Close releases the connection pool. Called after the HTTP server has
// shut down.
func (s *Server) Close() {
	if s.pool != nil {
		s.pool.Close()
		log.Println("Database connection pool closed")
	}
}
