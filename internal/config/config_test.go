package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "https://jsearch.p.rapidapi.com", cfg.JSearchBaseURL)
	require.Equal(t, []string{"Software Engineer", "QA Engineer", "Data Scientist"}, cfg.SearchTerms)
	require.Equal(t, 6*time.Hour, cfg.PollingInterval)
	require.Equal(t, 20, cfg.MaxResults)
	require.Equal(t, "relocationjobs", cfg.ClickHouseDatabase)
	require.Equal(t, "0.0.0.0:8080", cfg.BindAddr)
	require.Equal(t, 50, cfg.ListLimit)
	require.Equal(t, 500, cfg.TrackCapacity)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RAPIDAPI_KEY", "test-key")
	t.Setenv("SEARCH_TERMS", "DevOps Engineer, Product Manager ,")
	t.Setenv("POLLING_INTERVAL", "30m")
	t.Setenv("API_LIST_LIMIT", "25")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "test-key", cfg.JSearchAPIKey)
	require.Equal(t, []string{"DevOps Engineer", "Product Manager"}, cfg.SearchTerms)
	require.Equal(t, 30*time.Minute, cfg.PollingInterval)
	require.Equal(t, 25, cfg.ListLimit)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Run("list limit must be positive", func(t *testing.T) {
		t.Setenv("API_LIST_LIMIT", "0")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("max results must be positive", func(t *testing.T) {
		t.Setenv("MAX_RESULTS", "-1")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("search terms must not be empty", func(t *testing.T) {
		t.Setenv("SEARCH_TERMS", " , ")
		_, err := LoadConfig()
		require.Error(t, err)
	})
}

func TestIngestEnabled(t *testing.T) {
	cfg := &Config{}
	require.False(t, cfg.IngestEnabled())

	cfg.JSearchAPIKey = "key"
	require.True(t, cfg.IngestEnabled())
}

func TestBadEnvValuesFallBack(t *testing.T) {
	t.Setenv("POLLING_INTERVAL", "not-a-duration")
	t.Setenv("MAX_RESULTS", "lots")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 6*time.Hour, cfg.PollingInterval)
	require.Equal(t, 20, cfg.MaxResults)
}
