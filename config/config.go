package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port  string
	DBUrl string
	// Discrete database settings, used when DATABASE_URL is empty
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBMaxConns int

	PublicDir  string
	BcryptCost int

	// Redis configuration. An empty URL disables the job list cache.
	RedisURL      string
	RedisPassword string
	JobCacheTTL   time.Duration

	// Optional admin account created at boot
	AdminEmail    string
	AdminPassword string
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally; ignored when the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "3000"),
		DBUrl:      getEnv("DATABASE_URL", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "job_portal"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBMaxConns: getEnvInt("DB_MAX_CONNS", 10),

		PublicDir:  getEnv("PUBLIC_DIR", "public"),
		BcryptCost: getEnvInt("BCRYPT_COST", 10),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		JobCacheTTL:   time.Duration(getEnvInt("JOB_CACHE_TTL_SECONDS", 30)) * time.Second,

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	if cfg.DBUrl == "" && cfg.DBPassword == "" {
		log.Println("WARNING: neither DATABASE_URL nor DB_PASSWORD is set. Application may fail to connect.")
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Job list caching is disabled.")
	}

	return cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a postgres URL built from the DB_* settings.
func (c *Config) DSN() string {
	if c.DBUrl != "" {
		return c.DBUrl
	}
	u := url.URL{
		Scheme:   "postgres",
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", url.QueryEscape(c.DBSSLMode)),
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
