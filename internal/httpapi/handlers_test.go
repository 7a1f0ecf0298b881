package httpapi

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Tanim1993/RelocationJobxyz/internal/advisor"
	"github.com/Tanim1993/RelocationJobxyz/internal/errors"
	"github.com/Tanim1993/RelocationJobxyz/internal/models"
	"github.com/Tanim1993/RelocationJobxyz/internal/progress"
	"github.com/Tanim1993/RelocationJobxyz/internal/store"
	"github.com/Tanim1993/RelocationJobxyz/internal/track"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeJobStore struct {
	jobs       []models.JobPosting
	lastFilter store.Filter
}

func (s *fakeJobStore) List(ctx context.Context, filter store.Filter) ([]models.JobPosting, error) {
	s.lastFilter = filter
	matched := make([]models.JobPosting, 0)
	for _, job := range s.jobs {
		if filter.RelocationType != "" && job.RelocationType != filter.RelocationType {
			continue
		}
		matched = append(matched, job)
	}
	return matched, nil
}

func (s *fakeJobStore) Get(ctx context.Context, id string) (*models.JobPosting, error) {
	for _, job := range s.jobs {
		if job.ID == id {
			return &job, nil
		}
	}
	return nil, errors.NotFound("job posting not found", nil)
}

func (s *fakeJobStore) Options(ctx context.Context) (*store.FilterOptions, error) {
	return &store.FilterOptions{
		JobTypes:        []string{"QA Engineer", "Software Engineer"},
		Locations:       []string{"Berlin, Germany"},
		RelocationTypes: []string{"visa_sponsorship"},
	}, nil
}

type fakeTemplateStore struct {
	templates map[string]models.EmailTemplate
}

func (s *fakeTemplateStore) Get(ctx context.Context, name string) (*models.EmailTemplate, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return nil, errors.NotFound("email template not found", nil)
	}
	return &tmpl, nil
}

func (s *fakeTemplateStore) List(ctx context.Context) ([]models.EmailTemplate, error) {
	out := make([]models.EmailTemplate, 0, len(s.templates))
	for _, tmpl := range s.templates {
		out = append(out, tmpl)
	}
	return out, nil
}

type fakeSearcher struct {
	saved int
	err   error
}

func (s *fakeSearcher) Run(ctx context.Context, jobType, location string) (int, error) {
	return s.saved, s.err
}

type fakeReportLog struct {
	reports []track.Report
}

func (l *fakeReportLog) Record(ctx context.Context, report track.Report) error {
	if report.Kind != "click" && report.Kind != "exception" {
		return errors.InvalidInput("kind must be click or exception", nil)
	}
	l.reports = append(l.reports, report)
	return nil
}

func (l *fakeReportLog) Recent(ctx context.Context, limit int) ([]track.Report, error) {
	return l.reports, nil
}

func testRouter(t *testing.T, jobs *fakeJobStore, searcher *fakeSearcher) http.Handler {
	t.Helper()

	templates := &fakeTemplateStore{templates: map[string]models.EmailTemplate{
		"visa_inquiry": {
			Name:              "visa_inquiry",
			SubjectTemplate:   "Inquiry about Visa Sponsorship Process for {{.Title}}",
			BodyKind:          "application",
			RelocationFocused: true,
		},
	}}

	handler := NewHandler(
		zap.NewNop(),
		jobs,
		templates,
		searcher,
		advisor.NewCulturalScorer(rand.New(rand.NewSource(1))),
		progress.NewTracker(),
		&fakeReportLog{},
		50,
	)
	return Router(handler, time.Second)
}

func storedJob() models.JobPosting {
	return models.JobPosting{
		ID:              "8a6e0804-2bd0-5672-b79d-00c04fd430c8",
		Title:           "QA Engineer",
		Company:         "Acme Corp",
		Location:        "Berlin, Germany",
		JobType:         "QA Engineer",
		VisaSponsorship: true,
		RelocationType:  "visa_sponsorship",
		HREmail:         "talent@acme.example",
	}
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	router := testRouter(t, &fakeJobStore{}, &fakeSearcher{})
	rec := doRequest(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestListJobs(t *testing.T) {
	jobs := &fakeJobStore{jobs: []models.JobPosting{storedJob()}}
	router := testRouter(t, jobs, &fakeSearcher{})

	rec := doRequest(t, router, http.MethodGet, "/jobs?job_type=QA&location=Berlin", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Jobs  []models.JobPosting `json:"jobs"`
		Count int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	require.Equal(t, "QA", jobs.lastFilter.JobType)
	require.Equal(t, "Berlin", jobs.lastFilter.Location)
	require.Equal(t, 50, jobs.lastFilter.Limit)
}

func TestListJobsNoMatchesIsEmptyList(t *testing.T) {
	jobs := &fakeJobStore{jobs: []models.JobPosting{storedJob()}}
	router := testRouter(t, jobs, &fakeSearcher{})

	rec := doRequest(t, router, http.MethodGet, "/jobs?relocation_type=internal_transfer", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Jobs  []models.JobPosting `json:"jobs"`
		Count int                 `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 0, resp.Count)
	require.NotNil(t, resp.Jobs)
	require.Empty(t, resp.Jobs)
}

func TestGetJob(t *testing.T) {
	job := storedJob()
	router := testRouter(t, &fakeJobStore{jobs: []models.JobPosting{job}}, &fakeSearcher{})

	rec := doRequest(t, router, http.MethodGet, "/jobs/"+job.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.JobPosting
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, job.Title, got.Title)

	rec = doRequest(t, router, http.MethodGet, "/jobs/unknown-id", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobFilters(t *testing.T) {
	router := testRouter(t, &fakeJobStore{}, &fakeSearcher{})

	rec := doRequest(t, router, http.MethodGet, "/jobs/filters", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var opts store.FilterOptions
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opts))
	require.Contains(t, opts.JobTypes, "QA Engineer")
}

func TestGetJobEmail(t *testing.T) {
	job := storedJob()
	router := testRouter(t, &fakeJobStore{jobs: []models.JobPosting{job}}, &fakeSearcher{})

	rec := doRequest(t, router, http.MethodGet, "/jobs/"+job.ID+"/email", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var content struct {
		Subject        string `json:"subject"`
		Body           string `json:"body"`
		RecipientEmail string `json:"recipient_email"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &content))
	require.Contains(t, content.Subject, "QA Engineer")
	require.Equal(t, "talent@acme.example", content.RecipientEmail)

	rec = doRequest(t, router, http.MethodGet, "/jobs/"+job.ID+"/email?template=visa_inquiry", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &content))
	require.Equal(t, "Inquiry about Visa Sponsorship Process for QA Engineer", content.Subject)

	rec = doRequest(t, router, http.MethodGet, "/jobs/"+job.ID+"/email?template=nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchJobs(t *testing.T) {
	router := testRouter(t, &fakeJobStore{}, &fakeSearcher{saved: 7})

	rec := doRequest(t, router, http.MethodPost, "/jobs/search", `{"job_type":"QA Engineer","location":"Germany"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 7, resp["jobs_saved"])
}

func TestSearchJobsWithoutAPIKey(t *testing.T) {
	searcher := &fakeSearcher{err: errors.Unavailable("no API key configured, ingestion disabled", nil)}
	router := testRouter(t, &fakeJobStore{}, searcher)

	rec := doRequest(t, router, http.MethodPost, "/jobs/search", `{"job_type":"QA Engineer"}`)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSearchJobsRejectsUnknownFields(t *testing.T) {
	router := testRouter(t, &fakeJobStore{}, &fakeSearcher{})

	rec := doRequest(t, router, http.MethodPost, "/jobs/search", `{"job_type":"QA","pages":3}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLanguagePlanEndpoint(t *testing.T) {
	router := testRouter(t, &fakeJobStore{}, &fakeSearcher{})

	rec := doRequest(t, router, http.MethodPost, "/tools/language-plan",
		`{"target_language":"German","current_level":"intermediate","hours_per_week":6}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var plan advisor.LearningPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	require.Equal(t, "upper_intermediate", plan.TargetLevel)

	rec = doRequest(t, router, http.MethodPost, "/tools/language-plan",
		`{"target_language":"German","current_level":"native"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCulturalFitEndpoint(t *testing.T) {
	router := testRouter(t, &fakeJobStore{}, &fakeSearcher{})

	rec := doRequest(t, router, http.MethodPost, "/tools/cultural-fit",
		`{"home_country":"us","target_country":"jp","years_abroad":2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result advisor.FitResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.GreaterOrEqual(t, result.Score, 65)
	require.LessOrEqual(t, result.Score, 100)

	rec = doRequest(t, router, http.MethodPost, "/tools/cultural-fit", `{"home_country":"us"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCareerPathEndpoint(t *testing.T) {
	router := testRouter(t, &fakeJobStore{}, &fakeSearcher{})

	rec := doRequest(t, router, http.MethodPost, "/tools/career-path",
		`{"industry":"technology","goal":"leadership"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var advice advisor.PathAdvice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &advice))
	require.Equal(t, "Senior Software Engineer", advice.NextRole)
	require.Equal(t, "Engineering Manager", advice.ThenRole)
}

func TestProgressEndpoints(t *testing.T) {
	router := testRouter(t, &fakeJobStore{}, &fakeSearcher{})

	rec := doRequest(t, router, http.MethodPost, "/progress/events",
		`{"session_id":"abc","action":"email"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot progress.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	require.Equal(t, 25, snapshot.XP)

	rec = doRequest(t, router, http.MethodGet, "/progress/abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	require.Equal(t, 25, snapshot.XP)

	rec = doRequest(t, router, http.MethodPost, "/progress/events",
		`{"session_id":"abc","action":"teleport"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusForType(t *testing.T) {
	tests := []struct {
		errType errors.ErrorType
		want    int
	}{
		{errors.ErrTypeNotFound, http.StatusNotFound},
		{errors.ErrTypeInvalidInput, http.StatusBadRequest},
		{errors.ErrTypeUnavailable, http.StatusServiceUnavailable},
		{errors.ErrTypeRateLimit, http.StatusTooManyRequests},
		{errors.ErrTypeUnauthorized, http.StatusUnauthorized},
		{errors.ErrTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, statusForType(tt.errType), string(tt.errType))
	}
}

func TestTrackEndpoints(t *testing.T) {
	router := testRouter(t, &fakeJobStore{}, &fakeSearcher{})

	rec := doRequest(t, router, http.MethodPost, "/track/reports",
		`{"kind":"click","message":"apply-button","page":"/jobs"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/track/reports",
		`{"kind":"pageview","message":"x","page":"/"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/track/reports", "")
	require.Equal(t, http.StatusOK, rec.Code)
}
