package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"tienda-api/internal/config"
	custommiddleware "tienda-api/internal/middleware"
	"tienda-api/internal/repository"
	"tienda-api/internal/service"
	"tienda-api/internal/storage"
	"tienda-api/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
	db     *sql.DB
}

// NewServer assembles the router over the given record store. db may be
// nil when the file backend is in use; it is closed with the server.
func NewServer(cfg *config.Config, logger *zap.Logger, store storage.RecordStore, db *sql.DB) *Server {
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(nil, cfg.Server.Env != "production"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		router.Use(custommiddleware.RateLimitMiddleware(redisClient, custommiddleware.RateLimitConfig{
			RequestsPerWindow: cfg.Redis.RequestsPerMinute,
			Window:            time.Minute,
			KeyPrefix:         "ratelimit",
		}, logger))
	}

	router.Get("/", welcomeHandler)

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Initialize repositories
	productRepo := repository.NewProductRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	userRepo := repository.NewUserRepository(store)

	// Initialize services
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(productRepo, orderRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers and register routes
	transport.NewProductHandler(productService, logger).RegisterRoutes(router)
	transport.NewOrderHandler(orderService, logger).RegisterRoutes(router)
	transport.NewUserHandler(userService, logger).RegisterRoutes(router)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
		db:     db,
	}

	return server
}

func welcomeHandler(w http.ResponseWriter, r *http.Request) {
	custommiddleware.RespondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Bienvenido a la API de Tienda Web",
		"version": "1.0.0",
		"endpoints": map[string]any{
			"productos": map[string]string{
				"listar":     "GET /api/productos",
				"obtener":    "GET /api/productos/{id}",
				"crear":      "POST /api/productos",
				"actualizar": "PUT /api/productos/{id}",
				"eliminar":   "DELETE /api/productos/{id}",
			},
			"pedidos": map[string]string{
				"listar":  "GET /api/pedidos",
				"obtener": "GET /api/pedidos/{id}",
				"crear":   "POST /api/pedidos",
			},
			"usuarios": map[string]string{
				"registro": "POST /api/usuarios/registro",
				"login":    "POST /api/usuarios/login",
			},
		},
	})
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.logger.Error("Failed to close database connection", zap.Error(err))
		}
	}

	s.logger.Sync()
	return nil
}
