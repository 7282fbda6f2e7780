package container

import (
	"context"
	"fmt"
	"time"

	"github.com/edumgt/eden-api/internal/config"
	infraAuth "github.com/edumgt/eden-api/internal/infrastructure/auth"
	infraCache "github.com/edumgt/eden-api/internal/infrastructure/cache"
	"github.com/edumgt/eden-api/internal/infrastructure/database"
	"github.com/edumgt/eden-api/internal/infrastructure/graph"
	"github.com/edumgt/eden-api/pkg/cache"
	"github.com/edumgt/eden-api/pkg/jwt"
	"github.com/edumgt/eden-api/pkg/logger"

	"github.com/edumgt/eden-api/internal/domains/card"
	cardHandler "github.com/edumgt/eden-api/internal/domains/card/handler"
	cardRepo "github.com/edumgt/eden-api/internal/domains/card/repository"
	cardService "github.com/edumgt/eden-api/internal/domains/card/service"
	"github.com/edumgt/eden-api/internal/domains/cart"
	cartHandler "github.com/edumgt/eden-api/internal/domains/cart/handler"
	cartRepo "github.com/edumgt/eden-api/internal/domains/cart/repository"
	cartService "github.com/edumgt/eden-api/internal/domains/cart/service"
	"github.com/edumgt/eden-api/internal/domains/comment"
	commentHandler "github.com/edumgt/eden-api/internal/domains/comment/handler"
	commentRepo "github.com/edumgt/eden-api/internal/domains/comment/repository"
	commentService "github.com/edumgt/eden-api/internal/domains/comment/service"
	"github.com/edumgt/eden-api/internal/domains/product"
	productHandler "github.com/edumgt/eden-api/internal/domains/product/handler"
	productRepo "github.com/edumgt/eden-api/internal/domains/product/repository"
	productService "github.com/edumgt/eden-api/internal/domains/product/service"
	"github.com/edumgt/eden-api/internal/domains/user"
	userHandler "github.com/edumgt/eden-api/internal/domains/user/handler"
	userRepo "github.com/edumgt/eden-api/internal/domains/user/repository"
	userService "github.com/edumgt/eden-api/internal/domains/user/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	GraphClient graph.Client

	UserRepo          user.Repository
	ProductRepo       product.Repository
	UsageTimeRepo     product.UsageTimeRepository
	ConditionTypeRepo product.ConditionTypeRepository
	CartRepo          cart.Repository
	CommentRepo       comment.Repository
	CardRepo          card.Repository

	UserService    user.Service
	ProductService product.Service
	CartService    cart.Service
	CommentService comment.Service
	CardService    card.Service

	UserHandler    *userHandler.Handler
	ProductHandler *productHandler.Handler
	CartHandler    *cartHandler.Handler
	CommentHandler *commentHandler.Handler
	CardHandler    *cardHandler.Handler
}

// NewContainer builds the dependency graph in order:
// config -> infrastructure -> repositories -> services -> handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// ========================================
	// STEP 1: CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	// ========================================
	// STEP 2: DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// ========================================
	// STEP 3: CACHE
	// ========================================
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	// Redis is non-critical; a failed ping degrades to cache misses.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			logger.Warn("redis connection failed (non-critical)", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: OUTBOUND CLIENTS
	// ========================================
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	if cfg.Graph.Mode == "mock" {
		c.GraphClient = graph.NewMockClient()
	} else {
		c.GraphClient = graph.NewHTTPClient(cfg.Graph.BaseURL, cfg.Graph.Timeout)
	}

	// ========================================
	// STEP 5: REPOSITORIES
	// ========================================
	pool := db.Pool
	c.UserRepo = userRepo.NewPostgresRepository(pool)
	c.ProductRepo = productRepo.NewPostgresRepository(pool, c.Cache)
	c.UsageTimeRepo = productRepo.NewUsageTimeRepository(pool)
	c.ConditionTypeRepo = productRepo.NewConditionTypeRepository(pool)
	c.CartRepo = cartRepo.NewPostgresRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresRepository(pool)
	c.CardRepo = cardRepo.NewPostgresRepository(pool)

	// ========================================
	// STEP 6: SERVICES
	// ========================================
	hasher := infraAuth.NewBcryptHasher()

	c.UserService = userService.NewUserService(
		c.UserRepo,
		c.ProductRepo,
		c.CartRepo,
		hasher,
		c.JWTManager,
		c.GraphClient,
	)
	c.ProductService = productService.NewProductService(
		c.ProductRepo,
		c.UsageTimeRepo,
		c.ConditionTypeRepo,
		c.UserRepo,
	)
	c.CartService = cartService.NewCartService(c.CartRepo)
	c.CommentService = commentService.NewCommentService(c.CommentRepo, c.ProductRepo, c.UserRepo)
	c.CardService = cardService.NewCardService(c.CardRepo, c.UserRepo)

	// ========================================
	// STEP 7: HANDLERS
	// ========================================
	c.UserHandler = userHandler.NewHandler(c.UserService)
	c.ProductHandler = productHandler.NewHandler(c.ProductService)
	c.CartHandler = cartHandler.NewHandler(c.CartService)
	c.CommentHandler = commentHandler.NewHandler(c.CommentService)
	c.CardHandler = cardHandler.NewHandler(c.CardService)

	logger.Info("container initialized", nil)
	return c, nil
}

// Cleanup releases held resources, called during graceful shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Warn("failed to close redis", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	logger.Info("container cleanup completed", nil)
}
