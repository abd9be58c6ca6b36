package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/6ogunt48/class-manager/domain"
	"github.com/6ogunt48/class-manager/internal/config"
	"github.com/6ogunt48/class-manager/internal/infrastructure/auth"
	"github.com/6ogunt48/class-manager/internal/infrastructure/cache"
	"github.com/6ogunt48/class-manager/internal/infrastructure/database"
	"github.com/6ogunt48/class-manager/internal/infrastructure/repositories"
	"github.com/6ogunt48/class-manager/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	// Repositories
	UserRepo       domain.UserRepository
	CourseRepo     domain.CourseRepository
	EnrollmentRepo domain.EnrollmentRepository
	AssignmentRepo domain.AssignmentRepository
	SubmissionRepo domain.SubmissionRepository
	MarkRepo       domain.MarkRepository

	// Services
	PasswordSvc   domain.PasswordService
	TokenSvc      domain.TokenService
	ListingCache  domain.ListingCache
	AuthSvc       domain.AuthService
	CourseSvc     domain.CourseService
	AssignmentSvc domain.AssignmentService
	MarkSvc       domain.MarkService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	if err := container.initRedis(); err != nil {
		return nil, err
	}

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}

	c.DB = db
	c.Casbin = cas
	return nil
}

func (c *Container) initRedis() error {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.CourseRepo = repositories.NewCourseRepository(c.DB)
	c.EnrollmentRepo = repositories.NewEnrollmentRepository(c.DB)
	c.AssignmentRepo = repositories.NewAssignmentRepository(c.DB)
	c.SubmissionRepo = repositories.NewSubmissionRepository(c.DB)
	c.MarkRepo = repositories.NewMarkRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.AccessTTL)
	c.ListingCache = cache.NewListingCache(c.RedisClient, c.Config.CacheTTL)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.Config.AccessTTL)
	c.CourseSvc = services.NewCourseService(c.CourseRepo, c.EnrollmentRepo)
	c.AssignmentSvc = services.NewAssignmentService(c.AssignmentRepo, c.CourseRepo, c.EnrollmentRepo, c.SubmissionRepo, c.ListingCache)
	c.MarkSvc = services.NewMarkService(c.MarkRepo, c.AssignmentRepo, c.UserRepo, c.EnrollmentRepo, c.SubmissionRepo, c.ListingCache)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
