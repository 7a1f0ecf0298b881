package track

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Tanim1993/RelocationJobxyz/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const reportsKey = "track:reports"

// Report is one client-submitted click or exception record, keyed by its
// timestamp for manual inspection.
type Report struct {
	Kind    string    `json:"kind"` // "click" or "exception"
	Message string    `json:"message"`
	Page    string    `json:"page"`
	At      time.Time `json:"at"`
}

// listStore is the subset of redis list commands the tracker uses.
// *redis.Client satisfies it.
type listStore interface {
	LPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	LTrim(ctx context.Context, key string, start, stop int64) *redis.StatusCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// Tracker stores recent reports in a redis list trimmed to a fixed
// capacity, so the log cannot grow without bound.
type Tracker struct {
	store    listStore
	logger   *zap.Logger
	capacity int64
}

func NewTracker(store listStore, logger *zap.Logger, capacity int) *Tracker {
	if capacity <= 0 {
		capacity = 500
	}
	return &Tracker{
		store:    store,
		logger:   logger,
		capacity: int64(capacity),
	}
}

// Record appends a report and trims the list back to capacity.
func (t *Tracker) Record(ctx context.Context, report Report) error {
	if report.Kind != "click" && report.Kind != "exception" {
		return errors.InvalidInput("kind must be click or exception", nil)
	}
	if report.At.IsZero() {
		report.At = time.Now().UTC()
	}

	data, err := json.Marshal(report)
	if err != nil {
		return errors.Internal("marshal report", err)
	}

	if err := t.store.LPush(ctx, reportsKey, data).Err(); err != nil {
		t.logger.Error("failed to store report", zap.Error(err))
		return errors.Internal("store report", err)
	}
	if err := t.store.LTrim(ctx, reportsKey, 0, t.capacity-1).Err(); err != nil {
		t.logger.Error("failed to trim report log", zap.Error(err))
		return errors.Internal("trim report log", err)
	}

	return nil
}

// Recent returns up to limit reports, newest first. The limit is clamped
// to the list capacity.
func (t *Tracker) Recent(ctx context.Context, limit int) ([]Report, error) {
	if limit <= 0 || int64(limit) > t.capacity {
		limit = int(t.capacity)
	}

	values, err := t.store.LRange(ctx, reportsKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, errors.Internal("read reports", err)
	}

	reports := make([]Report, 0, len(values))
	for _, value := range values {
		var report Report
		if err := json.Unmarshal([]byte(value), &report); err != nil {
			t.logger.Warn("skipping malformed report", zap.Error(err))
			continue
		}
		reports = append(reports, report)
	}

	return reports, nil
}
