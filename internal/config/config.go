package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// devJWTSecret signs tokens in development only.
const devJWTSecret = "change-me"

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisURL string

	MeiliSearchHost string
	MeiliMasterKey  string

	CloudinaryCloudName    string
	CloudinaryUploadFolder string

	JWTSecret   string
	JWTTokenTTL time.Duration

	AdminEmail    string
	AdminPassword string

	GitHubUsername string
	GitHubBaseURL  string

	ExportRateLimit time.Duration

	PruneSchedule        string
	ReindexSchedule      string
	ContributionSchedule string
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:5000"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: os.Getenv("DB_PASS"),
		DBName: getEnv("DB_NAME", "lebenslauf"),

		RedisURL: os.Getenv("REDIS_URL"),

		MeiliSearchHost: os.Getenv("MEILISEARCH_HOST"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "lebenslauf"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		GitHubUsername: getEnv("GITHUB_USERNAME", "Codelisk"),
		GitHubBaseURL:  getEnv("GITHUB_BASE_URL", "https://github.com"),

		PruneSchedule:   getEnv("CRON_PRUNE_SCHEDULE", "0 3 * * *"),
		ReindexSchedule: getEnv("CRON_REINDEX_SCHEDULE", "30 3 * * *"),

		// Empty keeps the seeded graph; the sync job then only runs on demand.
		ContributionSchedule: os.Getenv("CRON_CONTRIBUTION_SCHEDULE"),
	}

	var err error
	cfg.ExportRateLimit, err = parseDuration(getEnv("EXPORT_RATE_LIMIT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXPORT_RATE_LIMIT: %w", err)
	}

	minutes, err := strconv.Atoi(getEnv("JWT_TTL_MINUTES", "60"))
	if err != nil || minutes <= 0 {
		return nil, fmt.Errorf("invalid JWT_TTL_MINUTES: %q", os.Getenv("JWT_TTL_MINUTES"))
	}
	cfg.JWTTokenTTL = time.Duration(minutes) * time.Minute

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("JWT_SECRET must be set when APP_ENV is %q", cfg.AppEnv)
		}
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// DSN builds the postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPass, c.DBName, c.DBPort,
	)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}
