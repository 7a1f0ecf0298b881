package store

import (
	"context"
	"fmt"

	"github.com/Tanim1993/RelocationJobxyz/common/telemetry"
	"github.com/Tanim1993/RelocationJobxyz/internal/errors"
	"github.com/Tanim1993/RelocationJobxyz/internal/models"

	"github.com/ClickHouse/clickhouse-go/v2"
	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("relocationjobs/store")

// Filter narrows the listing query. Zero-valued fields are no-ops.
type Filter struct {
	JobType        string
	Location       string
	RelocationType string
	Limit          int
}

// FilterOptions are the distinct stored values offered as list filters.
type FilterOptions struct {
	JobTypes        []string `json:"job_types"`
	Locations       []string `json:"locations"`
	RelocationTypes []string `json:"relocation_types"`
}

type JobStore struct {
	db     clickhouse.Conn
	logger *zap.Logger
}

func NewJobStore(db clickhouse.Conn, logger *zap.Logger) *JobStore {
	return &JobStore{db: db, logger: logger}
}

const jobColumns = `id, title, company, location, remote_friendly, job_url,
	visa_sponsorship, housing_assistance, moving_allowance, relocation_type,
	relocation_package, hr_email, company_email, description, requirements,
	salary_range, job_type, created_at, updated_at`

// Upsert writes a posting row. The table is a ReplacingMergeTree keyed by
// the natural-key UUID, so inserting an existing id overwrites the stale
// copy instead of duplicating it.
func (s *JobStore) Upsert(ctx context.Context, posting *models.JobPosting) error {
	ctx, span := tracer.Start(ctx, "JobStore.Upsert")
	defer span.End()
	span.SetAttributes(telemetry.String("job.id", posting.ID))

	query := fmt.Sprintf(`INSERT INTO relocation_jobs (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, jobColumns)

	if err := s.db.Exec(ctx, query,
		posting.ID,
		posting.Title,
		posting.Company,
		posting.Location,
		posting.RemoteFriendly,
		posting.JobURL,
		posting.VisaSponsorship,
		posting.HousingAssistance,
		posting.MovingAllowance,
		posting.RelocationType,
		posting.RelocationPackage,
		posting.HREmail,
		posting.CompanyEmail,
		posting.Description,
		posting.Requirements,
		posting.SalaryRange,
		posting.JobType,
		posting.CreatedAt,
		posting.UpdatedAt,
	); err != nil {
		return errors.Internal("insert job posting", err)
	}

	return nil
}

// List returns stored postings matching the filter, newest first. Only
// rows with some relocation support are listed. Zero matches yield an
// empty slice, not an error.
func (s *JobStore) List(ctx context.Context, filter Filter) ([]models.JobPosting, error) {
	ctx, span := tracer.Start(ctx, "JobStore.List")
	defer span.End()

	where := `(visa_sponsorship OR housing_assistance OR moving_allowance != '')`
	args := make([]any, 0, 3)

	if filter.JobType != "" {
		where += ` AND positionCaseInsensitive(job_type, ?) > 0`
		args = append(args, filter.JobType)
	}
	if filter.Location != "" {
		where += ` AND positionCaseInsensitive(location, ?) > 0`
		args = append(args, filter.Location)
	}
	if filter.RelocationType != "" {
		where += ` AND relocation_type = ?`
		args = append(args, filter.RelocationType)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)

	query := fmt.Sprintf(`SELECT %s FROM relocation_jobs FINAL WHERE %s ORDER BY created_at DESC LIMIT ?`, jobColumns, where)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Internal("query job postings", err)
	}
	defer rows.Close()

	postings := make([]models.JobPosting, 0)
	for rows.Next() {
		posting, err := scanPosting(rows)
		if err != nil {
			span.RecordError(err)
			return nil, errors.Internal("scan job posting", err)
		}
		postings = append(postings, posting)
	}

	span.SetAttributes(telemetry.Int("jobs.count", len(postings)))
	return postings, nil
}

// Get fetches one posting by id.
func (s *JobStore) Get(ctx context.Context, id string) (*models.JobPosting, error) {
	ctx, span := tracer.Start(ctx, "JobStore.Get")
	defer span.End()
	span.SetAttributes(telemetry.String("job.id", id))

	query := fmt.Sprintf(`SELECT %s FROM relocation_jobs FINAL WHERE id = ? LIMIT 1`, jobColumns)

	rows, err := s.db.Query(ctx, query, id)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Internal("query job posting", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, errors.NotFound("job posting not found", nil)
	}

	posting, err := scanPosting(rows)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Internal("scan job posting", err)
	}

	return &posting, nil
}

// Options lists the distinct job types, locations, and relocation types
// present in the store.
func (s *JobStore) Options(ctx context.Context) (*FilterOptions, error) {
	ctx, span := tracer.Start(ctx, "JobStore.Options")
	defer span.End()

	opts := &FilterOptions{}
	for _, col := range []struct {
		name string
		dst  *[]string
	}{
		{"job_type", &opts.JobTypes},
		{"location", &opts.Locations},
		{"relocation_type", &opts.RelocationTypes},
	} {
		query := fmt.Sprintf(`SELECT DISTINCT %s FROM relocation_jobs WHERE %s != '' ORDER BY %s`, col.name, col.name, col.name)
		rows, err := s.db.Query(ctx, query)
		if err != nil {
			span.RecordError(err)
			return nil, errors.Internal("query filter options", err)
		}
		values := make([]string, 0)
		for rows.Next() {
			var v string
			if err := rows.Scan(&v); err != nil {
				rows.Close()
				return nil, errors.Internal("scan filter option", err)
			}
			values = append(values, v)
		}
		rows.Close()
		*col.dst = values
	}

	return opts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPosting(rows rowScanner) (models.JobPosting, error) {
	var p models.JobPosting
	err := rows.Scan(
		&p.ID,
		&p.Title,
		&p.Company,
		&p.Location,
		&p.RemoteFriendly,
		&p.JobURL,
		&p.VisaSponsorship,
		&p.HousingAssistance,
		&p.MovingAllowance,
		&p.RelocationType,
		&p.RelocationPackage,
		&p.HREmail,
		&p.CompanyEmail,
		&p.Description,
		&p.Requirements,
		&p.SalaryRange,
		&p.JobType,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}
