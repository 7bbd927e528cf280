package di

import (
	"fmt"

	"gorm.io/gorm"

	"questgen/application/serviceimpl"
	"questgen/domain/ports"
	"questgen/domain/repositories"
	"questgen/domain/services"
	"questgen/infrastructure/ai"
	"questgen/infrastructure/postgres"
	redispkg "questgen/infrastructure/redis"
	"questgen/interfaces/api/handlers"
	"questgen/pkg/config"
	"questgen/pkg/logger"
)

// Container ถือ shared client state ทั้งหมด (DB pool, AI client, Redis)
// เปิดครั้งเดียวตอน boot ปิดตอน shutdown, ไม่มี global ลอยๆ
type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redispkg.Client
	Generator   ports.TaskGeneratorPort

	// Repositories
	CategoryRepository repositories.CategoryRepository
	TaskRepository     repositories.TaskRepository
	UserRepository     repositories.UserRepository
	UserTaskRepository repositories.UserTaskRepository

	// Services
	CategoryService services.CategoryService
	TaskService     services.TaskService
	UserService     services.UserService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	c.initRepositories()
	c.initServices()

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initInfrastructure() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	c.DB = db
	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)

	// Redis เป็น backing store ของ rate limiter (ต่อไม่ได้ = จำกัดไม่ได้ แต่ boot ต่อ)
	redisClient, err := redispkg.NewClient(&c.Config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, rate limiting disabled", "error", err)
	} else {
		c.RedisClient = redisClient
	}

	generator, err := ai.NewGeminiClient(c.Config.Gemini.APIKey, c.Config.Gemini.Model)
	if err != nil {
		return fmt.Errorf("failed to init gemini client: %w", err)
	}
	c.Generator = generator

	return nil
}

func (c *Container) initRepositories() {
	c.CategoryRepository = postgres.NewCategoryRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.UserTaskRepository = postgres.NewUserTaskRepository(c.DB)
}

func (c *Container) initServices() {
	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository)
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.UserTaskRepository)
	c.TaskService = serviceimpl.NewTaskService(
		c.TaskRepository,
		c.CategoryRepository,
		c.UserRepository,
		c.UserTaskRepository,
		c.Generator,
		c.Config.Gemini.Timeout,
	)
}

// GetHandlerServices รวม services ที่ handlers ต้องใช้
func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		CategoryService: c.CategoryService,
		TaskService:     c.TaskService,
		UserService:     c.UserService,
	}
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// Cleanup ปิด connection ทั้งหมดตอน shutdown
func (c *Container) Cleanup() error {
	var firstErr error

	if c.Generator != nil {
		if err := c.Generator.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
