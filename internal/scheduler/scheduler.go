package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/Tanim1993/RelocationJobxyz/common/telemetry"
	"github.com/Tanim1993/RelocationJobxyz/internal/config"
	"github.com/Tanim1993/RelocationJobxyz/internal/errors"
	"github.com/Tanim1993/RelocationJobxyz/internal/ingest"
	"github.com/Tanim1993/RelocationJobxyz/internal/jsearch"
	"github.com/Tanim1993/RelocationJobxyz/internal/messaging"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("relocationjobs/scheduler")

// JobScheduler periodically queries the external API for each configured
// search term and publishes relocation-friendly raw results for the
// processing service to store.
type JobScheduler struct {
	client    jsearch.Client
	publisher messaging.Publisher
	logger    *zap.Logger
	config    *config.Config
	mutex     sync.Mutex
	isActive  bool
}

func NewJobScheduler(client jsearch.Client, publisher messaging.Publisher, logger *zap.Logger, config *config.Config) *JobScheduler {
	return &JobScheduler{
		client:    client,
		publisher: publisher,
		logger:    logger,
		config:    config,
	}
}

func (s *JobScheduler) Start(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "JobScheduler.Start")
	defer span.End()

	if !s.config.IngestEnabled() {
		return errors.Unavailable("no API key configured, ingestion disabled", nil)
	}

	s.mutex.Lock()
	if s.isActive {
		s.mutex.Unlock()
		return nil
	}
	s.isActive = true
	s.mutex.Unlock()

	ticker := time.NewTicker(s.config.PollingInterval)
	defer ticker.Stop()

	if err := s.fetchAll(ctx); err != nil {
		s.logger.Error("initial fetch failed", zap.Error(err))
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.fetchAll(ctx); err != nil {
				s.logger.Error("periodic fetch failed", zap.Error(err))
			}
		}
	}
}

func (s *JobScheduler) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.isActive = false
}

func (s *JobScheduler) fetchAll(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "JobScheduler.fetchAll")
	defer span.End()

	var firstErr error
	published := 0

	for _, term := range s.config.SearchTerms {
		results, err := s.client.Search(ctx, term, s.config.SearchLocation)
		if err != nil {
			span.RecordError(err)
			s.logger.Error("search failed, skipping term",
				zap.String("term", term),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		for _, raw := range ingest.FilterRelocationJobs(results) {
			if err := s.publisher.PublishRawJob(ctx, raw); err != nil {
				span.RecordError(err)
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			published++
		}
	}

	span.SetAttributes(telemetry.Int("jobs.published", published))
	s.logger.Info("completed fetch cycle",
		zap.Int("terms", len(s.config.SearchTerms)),
		zap.Int("published", published))

	return firstErr
}
