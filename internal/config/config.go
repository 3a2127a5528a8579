package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	MinIO     MinIOConfig
	Translate TranslateConfig
	Auth      AuthConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

type RedisConfig struct {
	URL string
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
	PublicURL       string
}

type TranslateConfig struct {
	BaseURL     string
	APIKey      string
	SourceLang  string
	HTTPTimeout time.Duration
}

type AuthConfig struct {
	JWTSecret       string
	TokenTTL        time.Duration
	CookieName      string
	MaxAttempts     int
	LockoutDuration time.Duration
	AdminEmail      string
	AdminPassword   string
	AdminName       string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8020"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "homeservices_db"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			URL: getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		},
		MinIO: MinIOConfig{
			Endpoint:        getEnvOrDefault("AWS_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnvOrDefault("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("AWS_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("AWS_BUCKET", "homeservices"),
			Region:          getEnvOrDefault("AWS_DEFAULT_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("AWS_USE_SSL", true),
			PublicURL:       getEnvOrDefault("AWS_URL", "https://localhost:9000/homeservices"),
		},
		Translate: TranslateConfig{
			BaseURL:     getEnvOrDefault("TRANSLATE_BASE_URL", "http://localhost:5000"),
			APIKey:      os.Getenv("TRANSLATE_API_KEY"),
			SourceLang:  getEnvOrDefault("TRANSLATE_SOURCE_LANG", "en"),
			HTTPTimeout: getDurationOrDefault("TRANSLATE_HTTP_TIMEOUT", 30*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret:       os.Getenv("JWT_SECRET"),
			TokenTTL:        getDurationOrDefault("JWT_TOKEN_TTL", 24*time.Hour),
			CookieName:      getEnvOrDefault("AUTH_COOKIE_NAME", "admin_token"),
			MaxAttempts:     getIntOrDefault("AUTH_MAX_LOGIN_ATTEMPTS", 5),
			LockoutDuration: getDurationOrDefault("AUTH_LOCKOUT_DURATION", 15*time.Minute),
			AdminEmail:      getEnvOrDefault("ADMIN_EMAIL", ""),
			AdminPassword:   getEnvOrDefault("ADMIN_PASSWORD", ""),
			AdminName:       getEnvOrDefault("ADMIN_NAME", "Administrator"),
		},
	}
}

// GetDSN returns PostgreSQL connection string
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Translate.BaseURL == "" {
		return fmt.Errorf("TRANSLATE_BASE_URL is required")
	}
	if c.MinIO.AccessKeyID == "" {
		return fmt.Errorf("AWS_ACCESS_KEY_ID is required for MinIO")
	}
	if c.MinIO.SecretAccessKey == "" {
		return fmt.Errorf("AWS_SECRET_ACCESS_KEY is required for MinIO")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
