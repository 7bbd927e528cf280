package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Gemini    GeminiConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	CORS      CORSConfig
}

type AppConfig struct {
	Name string
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig สำหรับ rate limiter backing store
type RedisConfig struct {
	URL      string // redis://localhost:6379
	Password string
	DB       int
}

// GeminiConfig สำหรับ text-generation API
type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration // timeout ต่อ 1 generation call
}

// RateLimitConfig จำกัดจำนวน request ต่อ key ต่อ window
// ใช้กับ endpoint ที่เรียก AI เพื่อคุมค่าใช้จ่าย external API
type RateLimitConfig struct {
	Max    int64
	Window time.Duration
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int    // จำนวน backup files
	MaxAge     int    // วัน
	Compress   bool   // บีบอัด backup
}

type CORSConfig struct {
	AllowOrigins string
}

func LoadConfig() (*Config, error) {
	// ไม่ error ถ้าไม่มี .env file (ใช้ environment variables แทน)
	_ = godotenv.Load()

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	geminiTimeout, _ := strconv.Atoi(getEnv("GEMINI_TIMEOUT_SECONDS", "30"))

	rateLimitMax, _ := strconv.ParseInt(getEnv("RATE_LIMIT_MAX", "10"), 10, 64)
	rateLimitWindow, _ := strconv.Atoi(getEnv("RATE_LIMIT_WINDOW_SECONDS", "60"))

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	logCompress := getEnv("LOG_COMPRESS", "true") == "true"

	config := &Config{
		App: AppConfig{
			Name: getEnv("APP_NAME", "Questgen API"),
			Port: getEnv("APP_PORT", "8080"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "questgen"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout: time.Duration(geminiTimeout) * time.Second,
		},
		RateLimit: RateLimitConfig{
			Max:    rateLimitMax,
			Window: time.Duration(rateLimitWindow) * time.Second,
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "both"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   logCompress,
		},
		CORS: CORSConfig{
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
