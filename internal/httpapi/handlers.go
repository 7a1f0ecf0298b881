package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Tanim1993/RelocationJobxyz/internal/advisor"
	"github.com/Tanim1993/RelocationJobxyz/internal/emailgen"
	"github.com/Tanim1993/RelocationJobxyz/internal/models"
	"github.com/Tanim1993/RelocationJobxyz/internal/progress"
	"github.com/Tanim1993/RelocationJobxyz/internal/store"
	"github.com/Tanim1993/RelocationJobxyz/internal/track"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// JobFinder is the read side of the job store the handlers need.
type JobFinder interface {
	List(ctx context.Context, filter store.Filter) ([]models.JobPosting, error)
	Get(ctx context.Context, id string) (*models.JobPosting, error)
	Options(ctx context.Context) (*store.FilterOptions, error)
}

// TemplateFinder reads the seeded email templates.
type TemplateFinder interface {
	Get(ctx context.Context, name string) (*models.EmailTemplate, error)
	List(ctx context.Context) ([]models.EmailTemplate, error)
}

// Searcher runs one synchronous ingestion pass against the external API.
type Searcher interface {
	Run(ctx context.Context, jobType, location string) (int, error)
}

// ReportLog records and reads client-side click/exception reports.
type ReportLog interface {
	Record(ctx context.Context, report track.Report) error
	Recent(ctx context.Context, limit int) ([]track.Report, error)
}

type Handler struct {
	logger    *zap.Logger
	jobs      JobFinder
	templates TemplateFinder
	searcher  Searcher
	scorer    *advisor.CulturalScorer
	progress  *progress.Tracker
	reports   ReportLog
	listLimit int
}

func NewHandler(
	logger *zap.Logger,
	jobs JobFinder,
	templates TemplateFinder,
	searcher Searcher,
	scorer *advisor.CulturalScorer,
	tracker *progress.Tracker,
	reports ReportLog,
	listLimit int,
) *Handler {
	return &Handler{
		logger:    logger,
		jobs:      jobs,
		templates: templates,
		searcher:  searcher,
		scorer:    scorer,
		progress:  tracker,
		reports:   reports,
		listLimit: listLimit,
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	filter := store.Filter{
		JobType:        r.URL.Query().Get("job_type"),
		Location:       r.URL.Query().Get("location"),
		RelocationType: r.URL.Query().Get("relocation_type"),
		Limit:          h.listLimit,
	}

	jobs, err := h.jobs.List(r.Context(), filter)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

func (h *Handler) jobFilters(w http.ResponseWriter, r *http.Request) {
	options, err := h.jobs.Options(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, options)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, job)
}

// getJobEmail renders an application email for a stored posting. With no
// template parameter the default initial-application content is returned;
// otherwise the named seeded template drives subject and body kind.
func (h *Handler) getJobEmail(w http.ResponseWriter, r *http.Request) {
	job, err := h.jobs.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	templateName := r.URL.Query().Get("template")
	if templateName == "" {
		h.writeJSON(w, http.StatusOK, emailgen.Generate(*job))
		return
	}

	tmpl, err := h.templates.Get(r.Context(), templateName)
	if err != nil {
		h.writeError(w, err)
		return
	}

	content, err := emailgen.ForTemplate(*tmpl, *job)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, content)
}

func (h *Handler) listTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templates.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"templates": templates})
}

type searchRequest struct {
	JobType  string `json:"job_type"`
	Location string `json:"location"`
}

// searchJobs triggers a synchronous fetch from the external job API and
// stores the relocation-friendly results. Returns 503 when no API key is
// configured.
func (h *Handler) searchJobs(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	saved, err := h.searcher.Run(r.Context(), req.JobType, req.Location)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"jobs_saved": saved,
	})
}

func (h *Handler) languagePlan(w http.ResponseWriter, r *http.Request) {
	var req advisor.PlanRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	plan, err := advisor.BuildLearningPlan(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, plan)
}

func (h *Handler) culturalFit(w http.ResponseWriter, r *http.Request) {
	var req advisor.FitRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.scorer.Assess(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) careerPath(w http.ResponseWriter, r *http.Request) {
	var req advisor.PathRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	advice, err := advisor.PredictCareerPath(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, advice)
}

type progressEventRequest struct {
	SessionID string `json:"session_id"`
	Action    string `json:"action"`
}

func (h *Handler) recordProgress(w http.ResponseWriter, r *http.Request) {
	var req progressEventRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	snapshot, err := h.progress.Record(req.SessionID, req.Action)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.progress.Get(chi.URLParam(r, "sessionID")))
}

func (h *Handler) recordReport(w http.ResponseWriter, r *http.Request) {
	var report track.Report
	if err := decodeBody(r, &report); err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.reports.Record(r.Context(), report); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
}

func (h *Handler) recentReports(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	reports, err := h.reports.Recent(r.Context(), limit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"reports": reports})
}
