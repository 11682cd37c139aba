package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mack42/weekly-uptime-status-report/pkg/util"
)

// Config aggregates runtime configuration for a report run.
type Config struct {
	App     AppConfig
	Source  SourceConfig
	Catalog CatalogConfig
	Jira    JiraConfig
	LLM     LLMConfig
	Redis   RedisConfig
	Logger  LoggerConfig
}

// AppConfig controls run level behavior.
type AppConfig struct {
	Name  string
	Env   string
	UseAI bool
}

// SourceConfig locates the outage ledger.
type SourceConfig struct {
	CSVPath string
}

// CatalogConfig locates the optional service catalog file.
type CatalogConfig struct {
	Path string
}

// JiraConfig holds ticketing system connection values.
type JiraConfig struct {
	BaseURL        string
	Email          string
	Token          string
	TimeoutSeconds int
	Concurrency    int
}

// LLMConfig holds the chat-completion endpoint values.
type LLMConfig struct {
	URL            string
	Model          string
	TimeoutSeconds int
}

// RedisConfig holds the optional enrichment cache connection values.
// An empty Addr disables the cache entirely.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// Load reads configuration from environment variables, applying defaults
// where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, util.NewConfigurationError("invalid REDIS_DB", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:  getEnv("APP_NAME", "weekly-uptime-status-report"),
			Env:   getEnv("APP_ENV", "development"),
			UseAI: getEnvAsBool("USE_AI", true),
		},
		Source: SourceConfig{
			CSVPath: getEnv("OUTAGES_CSV_PATH", "outages.csv"),
		},
		Catalog: CatalogConfig{
			Path: os.Getenv("SERVICE_CATALOG_PATH"),
		},
		Jira: JiraConfig{
			BaseURL:        getEnv("JIRA_BASE_URL", "https://sugarcrm.atlassian.net"),
			Email:          os.Getenv("JIRA_EMAIL"),
			Token:          os.Getenv("JIRA_TOKEN"),
			TimeoutSeconds: getEnvAsInt("JIRA_TIMEOUT_SECONDS", 15),
			Concurrency:    getEnvAsInt("JIRA_LOOKUP_CONCURRENCY", 4),
		},
		LLM: LLMConfig{
			URL:            getEnv("LM_STUDIO_URL", "http://localhost:1234/v1/chat/completions"),
			Model:          getEnv("LM_STUDIO_MODEL", "local-model"),
			TimeoutSeconds: getEnvAsInt("LM_STUDIO_TIMEOUT_SECONDS", 300),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
			TTL:      time.Duration(getEnvAsInt("TICKET_CACHE_TTL_HOURS", 168)) * time.Hour,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

// Enabled reports whether ticket enrichment can be attempted at all.
func (j JiraConfig) Enabled() bool {
	return j.BaseURL != "" && j.Token != ""
}

// Timeout returns the per-lookup timeout duration.
func (j JiraConfig) Timeout() time.Duration {
	if j.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(j.TimeoutSeconds) * time.Second
}

// Timeout returns the completion request timeout duration.
func (l LLMConfig) Timeout() time.Duration {
	if l.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(l.TimeoutSeconds) * time.Second
}

// Enabled reports whether the enrichment cache is configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}
