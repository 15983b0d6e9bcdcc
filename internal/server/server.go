// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/bkerti/lycka-siteweb-sub000/internal/cache"
	"github.com/bkerti/lycka-siteweb-sub000/internal/config"
	"github.com/bkerti/lycka-siteweb-sub000/internal/database"
	"github.com/bkerti/lycka-siteweb-sub000/internal/middleware"
	"github.com/bkerti/lycka-siteweb-sub000/internal/models"
	"github.com/bkerti/lycka-siteweb-sub000/internal/repository"
	"github.com/bkerti/lycka-siteweb-sub000/internal/service"
	"github.com/bkerti/lycka-siteweb-sub000/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	tokenIssuer   = "lycka-api"
	tokenAudience = "lycka-client"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo        repository.UserRepository
	projectRepo     repository.ProjectRepository
	serviceRepo     repository.ServiceRepository
	homeModelRepo   repository.HomeModelRepository
	blogRepo        repository.BlogRepository
	testimonialRepo repository.TestimonialRepository

	engagementService *service.EngagementService
	analyticsService  *service.AnalyticsService
	uploadService     *service.UploadService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	blobStore, err := storage.NewS3BlobStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("blob store initialization failed: %w", err)
	}

	return NewServerWithDeps(cfg, db, redisClient, blobStore)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis/storage.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, blobStore storage.BlobStore) (*Server, error) {
	prom := middleware.InitMetrics("lycka-api")

	server := &Server{
		config:          cfg,
		db:              db,
		redis:           redisClient,
		promMiddleware:  prom,
		userRepo:        repository.NewUserRepository(db),
		projectRepo:     repository.NewProjectRepository(db),
		serviceRepo:     repository.NewServiceRepository(db),
		homeModelRepo:   repository.NewHomeModelRepository(db),
		blogRepo:        repository.NewBlogRepository(db),
		testimonialRepo: repository.NewTestimonialRepository(db),
	}

	server.engagementService = service.NewEngagementService(repository.NewEngagementRepository(db))
	server.analyticsService = service.NewAnalyticsService(repository.NewVisitRepository(db))
	server.uploadService = service.NewUploadService(blobStore)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and claims
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Distributed tracing
	app.Use(middleware.TracingMiddleware())

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware runs before middlewares that can short-circuit (e.g.
	// limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (120 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	adminRoles := []string{models.RoleAdmin, models.RoleSuperAdmin}

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Lycka Backend Metrics Dashboard",
	}))

	// Auth
	api.Post("/auth/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Projects
	projects := api.Group("/projects")
	projects.Get("/", s.GetProjects)
	projects.Get("/:id", s.GetProject)
	projects.Post("/", s.AuthRequired(), s.RequireRoles(adminRoles...), s.CreateProject)
	projects.Put("/:id", s.AuthRequired(), s.RequireRoles(adminRoles...), s.UpdateProject)
	projects.Delete("/:id", s.AuthRequired(), s.RequireRoles(adminRoles...), s.DeleteProject)

	// Services
	services := api.Group("/services")
	services.Get("/", s.GetServices)
	services.Get("/:id", s.GetService)
	services.Post("/", s.AuthRequired(), s.RequireRoles(adminRoles...), s.CreateService)
	services.Put("/:id", s.AuthRequired(), s.RequireRoles(adminRoles...), s.UpdateService)
	services.Delete("/:id", s.AuthRequired(), s.RequireRoles(adminRoles...), s.DeleteService)

	// Home models
	homeModels := api.Group("/homemodels")
	homeModels.Get("/", s.GetHomeModels)
	homeModels.Get("/:id", s.GetHomeModel)
	homeModels.Post("/", s.AuthRequired(), s.RequireRoles(adminRoles...), s.CreateHomeModel)
	homeModels.Put("/:id", s.AuthRequired(), s.RequireRoles(adminRoles...), s.UpdateHomeModel)
	homeModels.Delete("/:id", s.AuthRequired(), s.RequireRoles(adminRoles...), s.DeleteHomeModel)

	// Blog (legacy path name kept for the deployed client)
	blog := api.Group("/lycka-blog")
	blog.Get("/", s.GetBlogArticles)
	// Specific /:id/:resource routes before generic /:id
	blog.Get("/:id/comments", s.GetBlogComments)
	blog.Post("/:id/comments", middleware.RateLimit(
		s.redis, 5, time.Minute, "blog_comment"), s.CreateBlogComment)
	blog.Get("/:id", s.GetBlogArticle)
	blog.Post("/", s.AuthRequired(), s.RequireRoles(adminRoles...), s.CreateBlogArticle)
	blog.Put("/:id", s.AuthRequired(), s.RequireRoles(adminRoles...), s.UpdateBlogArticle)
	blog.Delete("/:id", s.AuthRequired(), s.RequireRoles(adminRoles...), s.DeleteBlogArticle)
	blog.Delete("/comments/:commentId", s.AuthRequired(), s.RequireRoles(adminRoles...), s.DeleteBlogComment)

	// Testimonials
	testimonials := api.Group("/testimonials")
	testimonials.Get("/", s.GetTestimonials)
	testimonials.Post("/submit", middleware.RateLimit(
		s.redis, 3, 5*time.Minute, "testimonial_submit"), s.SubmitTestimonial)
	testimonials.Get("/:id", s.GetTestimonial)
	testimonials.Post("/", s.AuthRequired(), s.RequireRoles(adminRoles...), s.CreateTestimonial)
	testimonials.Put("/:id", s.AuthRequired(), s.RequireRoles(adminRoles...), s.UpdateTestimonial)
	testimonials.Delete("/:id", s.AuthRequired(), s.RequireRoles(adminRoles...), s.DeleteTestimonial)

	// Media engagement
	media := api.Group("/media")
	media.Get("/interactions", s.AuthRequired(), s.RequireRoles(adminRoles...), s.GetAllInteractions)
	media.Delete("/comments/:commentId", s.AuthRequired(), s.RequireRoles(adminRoles...), s.DeleteMediaComment)
	media.Get("/:mediaId/comments", s.GetMediaComments)
	media.Post("/:mediaId/comments", middleware.RateLimit(
		s.redis, 5, time.Minute, "media_comment"), s.CreateMediaComment)
	media.Get("/:mediaId/reactions", s.GetMediaReactions)
	media.Post("/:mediaId/reactions", middleware.RateLimit(
		s.redis, 30, time.Minute, "media_reaction"), s.CreateMediaReaction)
	media.Get("/:mediaId/interactions", s.GetMediaInteractions)

	// Analytics
	api.Post("/visits", s.RecordVisit)
	api.Get("/analytics/visits-summary", s.AuthRequired(), s.RequireRoles(adminRoles...), s.GetVisitsSummary)

	// Upload
	api.Post("/upload", s.AuthRequired(), s.RequireRoles(adminRoles...), s.UploadFile)

	// Dev-only schema reset; never registered in production.
	if !s.config.IsProduction() {
		api.Post("/dev/reset", s.DevReset)
	}
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Redis only backs rate limiting; readiness tolerates its absence.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. A missing token is
// 401; a token that is present but fails any check (signature, expiry,
// issuer, audience) is 403.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Invalid token audience"))
		}

		username, _ := claims["username"].(string)
		role, _ := claims["role"].(string)
		if username == "" || role == "" {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Invalid token claims"))
		}

		c.Locals("username", username)
		c.Locals("role", role)
		ctx := context.WithValue(c.UserContext(), middleware.UsernameKey, username)
		ctx = context.WithValue(ctx, middleware.RoleKey, role)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// RequireRoles returns middleware that rejects callers whose token role is
// not in the given list. Membership is literal; super_admin gets nothing
// implicitly and must be listed wherever it should pass. Must be placed
// after AuthRequired.
func (s *Server) RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if !slices.Contains(roles, role) {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Insufficient role"))
		}
		return c.Next()
	}
}

// NewApp builds the fiber app with the shared config: body limit for
// uploads and an error handler that keeps unhandled errors on the JSON
// error shape.
func (s *Server) NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:   "Lycka Siteweb API",
		BodyLimit: 50 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := s.NewApp()
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
