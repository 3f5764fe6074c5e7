package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogStatic = "static"
	CatalogMongo  = "mongo"
)

type Config struct {
	Env                string
	ServerAddr         string
	FrontendOrigins    []string
	CatalogSource      string
	MongoURI           string
	MongoDB            string
	RedisURL           string
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	CacheTTLSeconds    int
	RateLimitReviews   int
	RateLimitWindowSec int
	BrevoAPIKey        string
	BrevoSenderEmail   string
	BrevoSenderName    string
	BrevoSandbox       bool
	ReviewsInbox       string
	LogLevel           slog.Level
	TUILogPath         string
	Timezone           *time.Location
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return fallback
}

// Load reads the environment. Values from .env never override variables that are already set.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	loc, err := time.LoadLocation(getEnv("TZ", "Europe/Moscow"))
	if err != nil {
		return nil, fmt.Errorf("config: timezone: %w", err)
	}

	source := strings.ToLower(getEnv("CATALOG_SOURCE", CatalogStatic))
	if source != CatalogStatic && source != CatalogMongo {
		return nil, fmt.Errorf("config: CATALOG_SOURCE must be %q or %q, got %q", CatalogStatic, CatalogMongo, source)
	}

	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017/botscope")
	mongoDB := getEnv("MONGO_DB", "")
	if mongoDB == "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "botscope"
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		ServerAddr:         getEnv("SERVER_ADDR", ":8080"),
		FrontendOrigins:    splitList(getEnv("FRONTEND_ORIGIN", "http://localhost:3000")),
		CatalogSource:      source,
		MongoURI:           mongoURI,
		MongoDB:            mongoDB,
		RedisURL:           getEnv("REDIS_URL", ""),
		RedisAddr:          getEnv("REDIS_ADDR", ""),
		RedisPassword:      getEnv("REDIS_PASSWORD", ""),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds:    getEnvInt("CACHE_TTL_SECONDS", 60),
		RateLimitReviews:   getEnvInt("RATE_LIMIT_REVIEWS", 5),
		RateLimitWindowSec: getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),
		BrevoAPIKey:        getEnv("BREVO_API_KEY", ""),
		BrevoSenderEmail:   getEnv("BREVO_SENDER_EMAIL", ""),
		BrevoSenderName:    getEnv("BREVO_SENDER_NAME", "BotScope"),
		BrevoSandbox:       getEnvBool("BREVO_SANDBOX", false),
		ReviewsInbox:       getEnv("REVIEWS_INBOX", ""),
		LogLevel:           level,
		TUILogPath:         getEnv("BOTSCOPE_TUI_LOG", ""),
		Timezone:           loc,
	}

	if cfg.RateLimitReviews < 1 {
		return nil, fmt.Errorf("config: RATE_LIMIT_REVIEWS must be positive, got %d", cfg.RateLimitReviews)
	}
	if cfg.RateLimitWindowSec < 1 {
		return nil, fmt.Errorf("config: RATE_LIMIT_WINDOW_SEC must be positive, got %d", cfg.RateLimitWindowSec)
	}
	if cfg.CacheTTLSeconds < 0 {
		return nil, fmt.Errorf("config: CACHE_TTL_SECONDS must not be negative, got %d", cfg.CacheTTLSeconds)
	}

	return cfg, nil
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSec) * time.Second
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// only the first path segment names the database
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
