package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Chat     ChatConfig
	GigaChat GigaChatConfig
	Gemini   GeminiConfig
	Site     SiteConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level       string
	Development bool
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SiteConfig struct {
	BaseURL     string
	StaticDir   string
	StaticIndex string
}

type ChatConfig struct {
	Provider        string // "gemini", "gigachat" or empty to disable chat
	Timeout         time.Duration
	HistoryMaxTurns int
	SessionTTL      time.Duration
	ContextTables   []string
	ContextMaxRows  uint64
	SnapshotRefresh time.Duration // 0 keeps the start-up snapshot
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	Model              string
	InsecureSkipVerify bool
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work as well.
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "60"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	historyTurns, _ := strconv.Atoi(getEnv("CHAT_HISTORY_MAX_TURNS", "20"))
	contextRows, _ := strconv.ParseUint(getEnv("CHAT_CONTEXT_MAX_ROWS", "2000"), 10, 64)
	if contextRows == 0 {
		contextRows = 2000
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "feiras"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(maxConns),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
		},
		Chat: ChatConfig{
			Provider:        strings.ToLower(getEnv("CHAT_PROVIDER", "")),
			Timeout:         getDuration("CHAT_TIMEOUT", 30*time.Second),
			HistoryMaxTurns: historyTurns,
			SessionTTL:      getDuration("CHAT_SESSION_TTL", 24*time.Hour),
			ContextTables:   splitList(getEnv("CHAT_CONTEXT_TABLES", "feiras,feiras_livres")),
			ContextMaxRows:  contextRows,
			SnapshotRefresh: getDuration("CHAT_SNAPSHOT_REFRESH", 0),
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			Model:              getEnv("GIGACHAT_MODEL", "GigaChat"),
			InsecureSkipVerify: getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "false") == "true",
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Site: SiteConfig{
			BaseURL:     strings.TrimRight(getEnv("SITE_BASE_URL", "http://localhost:8080"), "/"),
			StaticDir:   getEnv("STATIC_DIR", "web/static"),
			StaticIndex: getEnv("STATIC_INDEX", "index.html"),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnv("APP_ENV", "production") == "development",
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration accepts Go durations ("90s", "5m") or plain seconds.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
