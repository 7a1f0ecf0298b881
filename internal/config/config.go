package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	JSearchBaseURL string
	JSearchAPIKey  string
	JSearchHost    string
	JSearchTimeout time.Duration

	SearchTerms     []string
	SearchLocation  string
	PollingInterval time.Duration
	MaxResults      int

	NATSURL         string
	NATSConnTimeout time.Duration

	ClickHouseDSN          string
	ClickHouseMaxOpenConns int
	ClickHouseMaxIdleConns int
	ClickHouseConnMaxLife  time.Duration
	ClickHouseUsername     string
	ClickHousePassword     string
	ClickHouseDatabase     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	BindAddr       string
	ListLimit      int
	TrackCapacity  int
	RequestTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	config := &Config{
		JSearchBaseURL: getEnvString("JSEARCH_BASE_URL", "https://jsearch.p.rapidapi.com"),
		JSearchAPIKey:  getEnvString("RAPIDAPI_KEY", ""),
		JSearchHost:    getEnvString("JSEARCH_API_HOST", "jsearch.p.rapidapi.com"),
		JSearchTimeout: getEnvDuration("JSEARCH_TIMEOUT", 30*time.Second),

		SearchTerms:     splitAndTrim(getEnvString("SEARCH_TERMS", "Software Engineer,QA Engineer,Data Scientist")),
		SearchLocation:  getEnvString("SEARCH_LOCATION", ""),
		PollingInterval: getEnvDuration("POLLING_INTERVAL", 6*time.Hour),
		MaxResults:      getEnvInt("MAX_RESULTS", 20),

		NATSURL:         getEnvString("NATS_URL", "nats://localhost:4222"),
		NATSConnTimeout: getEnvDuration("NATS_CONN_TIMEOUT", 10*time.Second),

		ClickHouseDSN:          getEnvString("CLICKHOUSE_DSN", "localhost:9000"),
		ClickHouseMaxOpenConns: getEnvInt("CLICKHOUSE_MAX_OPEN_CONNS", 10),
		ClickHouseMaxIdleConns: getEnvInt("CLICKHOUSE_MAX_IDLE_CONNS", 5),
		ClickHouseConnMaxLife:  getEnvDuration("CLICKHOUSE_CONN_MAX_LIFE", time.Hour),
		ClickHouseUsername:     getEnvString("CLICKHOUSE_USERNAME", "default"),
		ClickHousePassword:     getEnvString("CLICKHOUSE_PASSWORD", ""),
		ClickHouseDatabase:     getEnvString("CLICKHOUSE_DATABASE", "relocationjobs"),

		RedisAddr:     getEnvString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvString("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CacheTTL:      getEnvDuration("CACHE_TTL", 24*time.Hour),

		BindAddr:       getEnvString("API_BIND_ADDR", "0.0.0.0:8080"),
		ListLimit:      getEnvInt("API_LIST_LIMIT", 50),
		TrackCapacity:  getEnvInt("TRACK_CAPACITY", 500),
		RequestTimeout: getEnvDuration("API_REQUEST_TIMEOUT", 15*time.Second),
	}

	if config.ListLimit <= 0 {
		return nil, fmt.Errorf("API_LIST_LIMIT must be positive")
	}
	if config.MaxResults <= 0 {
		return nil, fmt.Errorf("MAX_RESULTS must be positive")
	}
	if config.TrackCapacity <= 0 {
		return nil, fmt.Errorf("TRACK_CAPACITY must be positive")
	}
	if len(config.SearchTerms) == 0 {
		return nil, fmt.Errorf("SEARCH_TERMS must contain at least one term")
	}

	return config, nil
}

// IngestEnabled reports whether the external job API can be called.
// Without an API key browsing stored jobs still works; only ingestion is
// disabled.
func (c *Config) IngestEnabled() bool {
	return c.JSearchAPIKey != ""
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
