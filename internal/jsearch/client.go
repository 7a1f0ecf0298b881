package jsearch

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Tanim1993/RelocationJobxyz/common/cache"
	"github.com/Tanim1993/RelocationJobxyz/common/cache/redis"
	"github.com/Tanim1993/RelocationJobxyz/common/telemetry"
	"github.com/Tanim1993/RelocationJobxyz/internal/config"
	"github.com/Tanim1993/RelocationJobxyz/internal/errors"
	"github.com/Tanim1993/RelocationJobxyz/internal/models"
	"github.com/Tanim1993/RelocationJobxyz/internal/relocation"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("relocationjobs/jsearch")

// Client issues one search request against the external job API. There is
// no retry or partial-result path: any failure surfaces as an error and an
// empty result set.
type Client interface {
	Search(ctx context.Context, jobType, location string) ([]models.RawJob, error)
}

type client struct {
	http   *http.Client
	logger *zap.Logger
	config *config.Config
	cache  cache.Cache
}

func NewClient(logger *zap.Logger, cfg *config.Config) Client {
	cacheOpts := cache.Options{
		RedisURL:      cfg.RedisAddr,
		RedisPassword: cfg.RedisPassword,
		RedisDB:       cfg.RedisDB,
		DefaultTTL:    cfg.CacheTTL,
	}

	return &client{
		http: &http.Client{
			Timeout: cfg.JSearchTimeout,
		},
		logger: logger,
		config: cfg,
		cache:  redis.New(cacheOpts),
	}
}

func (c *client) Search(ctx context.Context, jobType, location string) ([]models.RawJob, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()

	if !c.config.IngestEnabled() {
		return nil, errors.Unavailable("no API key configured, ingestion disabled", nil)
	}

	query := relocation.SearchQuery(jobType)
	cacheKey := searchCacheKey(query, location)

	var cached models.SearchResults
	err := c.cache.Get(ctx, cacheKey, &cached)
	if err == nil {
		span.SetAttributes(telemetry.String("cache.result", "hit"))
		c.logger.Debug("cache hit for job search", zap.String("query", query))
		return cached.Jobs, nil
	} else if err != cache.ErrNotFound {
		span.SetAttributes(telemetry.String("cache.result", "error"))
		span.RecordError(err)
		c.logger.Warn("cache error for job search", zap.Error(err))
	} else {
		span.SetAttributes(telemetry.String("cache.result", "miss"))
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("page", "1")
	params.Set("num_pages", "3")
	params.Set("employment_types", "FULLTIME")
	if location != "" {
		params.Set("location", location)
	} else {
		params.Set("country", "us")
	}

	searchURL := fmt.Sprintf("%s/search?%s", c.config.JSearchBaseURL, params.Encode())
	c.logger.Debug("cache miss, searching jobs", zap.String("query", query))
	span.SetAttributes(telemetry.String("http.url", c.config.JSearchBaseURL+"/search"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Internal("creating request", err)
	}
	req.Header.Set("X-RapidAPI-Key", c.config.JSearchAPIKey)
	req.Header.Set("X-RapidAPI-Host", c.config.JSearchHost)

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		c.logger.Error("failed to execute search request", zap.Error(err))
		return nil, errors.Internal("executing request", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("failed to close response body", zap.Error(cerr))
		}
	}()

	span.SetAttributes(
		telemetry.Int("http.status_code", resp.StatusCode),
		telemetry.String("http.method", http.MethodGet),
	)

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, errors.RateLimit("job API rate limit exceeded", nil)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("unexpected status code", zap.Int("status_code", resp.StatusCode))
		return nil, errors.Internal(fmt.Sprintf("unexpected status code: %d", resp.StatusCode), nil)
	}

	var searchResult struct {
		Data []models.RawJob `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&searchResult); err != nil {
		c.logger.Error("failed to decode search response", zap.Error(err))
		return nil, errors.Internal("decoding response", err)
	}

	c.logger.Info("search response stats",
		zap.String("query", query),
		zap.Int("total_results", len(searchResult.Data)))

	if err := c.cache.Set(ctx, cacheKey, models.SearchResults{Jobs: searchResult.Data}, c.config.CacheTTL); err != nil {
		c.logger.Warn("failed to cache search results", zap.Error(err))
	}

	return searchResult.Data, nil
}

func searchCacheKey(query, location string) string {
	sum := sha1.Sum([]byte(query + "|" + location))
	return "jsearch:search:" + hex.EncodeToString(sum[:])
}
