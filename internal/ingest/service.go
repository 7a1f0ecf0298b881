package ingest

import (
	"context"

	"github.com/Tanim1993/RelocationJobxyz/common/telemetry"
	"github.com/Tanim1993/RelocationJobxyz/internal/jsearch"
	"github.com/Tanim1993/RelocationJobxyz/internal/models"
	"github.com/Tanim1993/RelocationJobxyz/internal/processor"
	"github.com/Tanim1993/RelocationJobxyz/internal/relocation"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("relocationjobs/ingest")

// Service is the synchronous ingestion path: one search request, map the
// relocation-friendly results, upsert them, return the count. Used by the
// HTTP search endpoint. On API failure the whole operation aborts with
// zero rows; there is no partial-result or retry path.
type Service struct {
	client     jsearch.Client
	store      processor.JobWriter
	logger     *zap.Logger
	maxResults int
}

func NewService(client jsearch.Client, store processor.JobWriter, logger *zap.Logger, maxResults int) *Service {
	return &Service{
		client:     client,
		store:      store,
		logger:     logger,
		maxResults: maxResults,
	}
}

func (s *Service) Run(ctx context.Context, jobType, location string) (int, error) {
	ctx, span := tracer.Start(ctx, "Ingest.Run")
	defer span.End()

	results, err := s.client.Search(ctx, jobType, location)
	if err != nil {
		span.RecordError(err)
		s.logger.Error("job search failed",
			zap.String("job_type", jobType),
			zap.String("location", location),
			zap.Error(err))
		return 0, err
	}

	saved := 0
	for _, raw := range results {
		if saved >= s.maxResults {
			break
		}
		if !relocation.HasRelocationSupport(raw.Title, raw.Description) {
			continue
		}

		posting := processor.MapRawJob(raw, jobType)
		if err := s.store.Upsert(ctx, posting); err != nil {
			span.RecordError(err)
			return saved, err
		}
		saved++
	}

	span.SetAttributes(
		telemetry.Int("jobs.fetched", len(results)),
		telemetry.Int("jobs.saved", saved),
	)
	s.logger.Info("ingestion run complete",
		zap.String("job_type", jobType),
		zap.Int("fetched", len(results)),
		zap.Int("saved", saved))

	return saved, nil
}

// FilterRelocationJobs keeps only results mentioning a relocation keyword
// in the title or description.
func FilterRelocationJobs(results []models.RawJob) []models.RawJob {
	kept := make([]models.RawJob, 0, len(results))
	for _, raw := range results {
		if relocation.HasRelocationSupport(raw.Title, raw.Description) {
			kept = append(kept, raw)
		}
	}
	return kept
}
