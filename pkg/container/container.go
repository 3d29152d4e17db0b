package container

import (
	"context"
	"fmt"
	"time"

	"reviews-backend/internal/config"
	infraCache "reviews-backend/internal/infrastructure/cache"
	"reviews-backend/internal/infrastructure/database"
	"reviews-backend/pkg/cache"
	"reviews-backend/pkg/jwt"
	"reviews-backend/pkg/logger"

	companyHandler "reviews-backend/internal/domains/company/handler"
	companyRepo "reviews-backend/internal/domains/company/repository"
	companyService "reviews-backend/internal/domains/company/service"
	reviewHandler "reviews-backend/internal/domains/review/handler"
	reviewRepo "reviews-backend/internal/domains/review/repository"
	reviewService "reviews-backend/internal/domains/review/service"
	reviewerHandler "reviews-backend/internal/domains/reviewer/handler"
	reviewerRepo "reviews-backend/internal/domains/reviewer/repository"
	reviewerService "reviews-backend/internal/domains/reviewer/service"
)

// Container wires the whole dependency graph: infrastructure first,
// then repositories, services, handlers. Everything is a singleton for
// the process lifetime.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	ReviewerRepo reviewerRepo.Repository
	CompanyRepo  companyRepo.CompanyRepository
	ReviewRepo   reviewRepo.ReviewRepository

	ReviewerService reviewerService.Service
	CompanyService  companyService.CompanyService
	ReviewService   reviewService.Service

	ReviewerHandler *reviewerHandler.ReviewerHandler
	CompanyHandler  *companyHandler.CompanyHandler
	ReviewHandler   *reviewHandler.ReviewHandler
}

// NewContainer builds the dependency graph in initialization order.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("config loaded", map[string]interface{}{"environment": cfg.App.Environment})

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
	c.DB = db
	logger.Info("database connected", nil)

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(context.Background()); err != nil {
		// Cache is an optimization; the repositories fall back to the
		// database when it is unreachable.
		logger.Error("redis connection failed (non-critical)", err)
	} else {
		logger.Info("redis connected", nil)
	}
	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TokenExpiry)*time.Hour)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ReviewerRepo = reviewerRepo.NewPostgresRepository(pool)
	c.CompanyRepo = companyRepo.NewPostgresCompanyRepository(pool, c.Cache)
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(pool)
}

func (c *Container) initServices() {
	c.ReviewerService = reviewerService.NewReviewerService(c.ReviewerRepo)
	c.CompanyService = companyService.NewCompanyService(c.CompanyRepo)

	// The reviewer repository doubles as the profile resolver: reviews
	// are owned through the caller's profile.
	c.ReviewService = reviewService.NewReviewService(c.ReviewRepo, c.ReviewerRepo)
}

func (c *Container) initHandlers() {
	c.ReviewerHandler = reviewerHandler.NewReviewerHandler(c.ReviewerService, c.JWTManager)
	c.CompanyHandler = companyHandler.NewCompanyHandler(c.CompanyService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
}

// Cleanup releases infrastructure connections.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	logger.Info("container cleanup complete", nil)
}
