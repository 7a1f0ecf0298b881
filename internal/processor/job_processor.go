package processor

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Tanim1993/RelocationJobxyz/common/telemetry"
	"github.com/Tanim1993/RelocationJobxyz/internal/errors"
	"github.com/Tanim1993/RelocationJobxyz/internal/models"
	"github.com/Tanim1993/RelocationJobxyz/internal/relocation"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("relocationjobs/processor")

// JobWriter is the slice of the store the processor needs.
type JobWriter interface {
	Upsert(ctx context.Context, posting *models.JobPosting) error
}

type JobProcessor struct {
	logger *zap.Logger
	store  JobWriter
}

func NewJobProcessor(logger *zap.Logger, store JobWriter) *JobProcessor {
	return &JobProcessor{
		logger: logger,
		store:  store,
	}
}

// ProcessRawJob handles one raw search result from the bus: map it to a
// posting, derive the benefit flags, and upsert by natural key.
func (p *JobProcessor) ProcessRawJob(ctx context.Context, rawData []byte) error {
	ctx, span := tracer.Start(ctx, "ProcessRawJob")
	defer span.End()

	var raw models.RawJob
	if err := json.Unmarshal(rawData, &raw); err != nil {
		p.logger.Error("failed to parse raw job", zap.Error(err))
		return errors.Internal("parse raw job", err)
	}

	posting := MapRawJob(raw, "")
	span.SetAttributes(telemetry.String("job.id", posting.ID))

	if err := p.store.Upsert(ctx, posting); err != nil {
		p.logger.Error("failed to store job posting",
			zap.String("id", posting.ID),
			zap.Error(err))
		return err
	}

	p.logger.Debug("stored job posting",
		zap.String("id", posting.ID),
		zap.String("title", posting.Title))
	return nil
}

// MapRawJob converts an external search result into a JobPosting. All
// relocation-benefit flags are derived here, once, from the description
// text; they are never re-derived afterwards.
func MapRawJob(raw models.RawJob, jobType string) *models.JobPosting {
	location := strings.TrimSpace(strings.Trim(raw.City+", "+raw.Country, ", "))
	description := raw.Description

	if jobType == "" {
		jobType = relocation.JobType(raw.Title)
	}

	now := time.Now().UTC()
	benefits := relocation.DetectBenefits(description)

	return &models.JobPosting{
		ID:                relocation.PostingID(raw.Title, raw.EmployerName, location),
		Title:             raw.Title,
		Company:           raw.EmployerName,
		Location:          location,
		RemoteFriendly:    raw.IsRemote,
		JobURL:            raw.ApplyLink,
		VisaSponsorship:   relocation.SponsorsVisa(description),
		HousingAssistance: relocation.AssistsHousing(description),
		MovingAllowance:   relocation.MovingAllowance(description),
		RelocationType:    relocation.RelocationType(description),
		RelocationPackage: relocation.PackageJSON(benefits),
		Description:       description,
		Requirements:      strings.Join(raw.RequiredSkills, ", "),
		SalaryRange:       relocation.FormatSalaryRange(raw.MinSalary, raw.MaxSalary),
		JobType:           jobType,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
