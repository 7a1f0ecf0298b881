package store

import (
	"context"

	"github.com/Tanim1993/RelocationJobxyz/common/telemetry"
	"github.com/Tanim1993/RelocationJobxyz/internal/errors"
	"github.com/Tanim1993/RelocationJobxyz/internal/models"

	"github.com/ClickHouse/clickhouse-go/v2"
	"go.uber.org/zap"
)

// TemplateStore reads the seeded email templates. There is no write path:
// templates are created by migration and never mutated at runtime.
type TemplateStore struct {
	db     clickhouse.Conn
	logger *zap.Logger
}

func NewTemplateStore(db clickhouse.Conn, logger *zap.Logger) *TemplateStore {
	return &TemplateStore{db: db, logger: logger}
}

const templateColumns = `name, subject_template, body_kind, relocation_focused`

func (s *TemplateStore) Get(ctx context.Context, name string) (*models.EmailTemplate, error) {
	ctx, span := tracer.Start(ctx, "TemplateStore.Get")
	defer span.End()
	span.SetAttributes(telemetry.String("template.name", name))

	rows, err := s.db.Query(ctx, `SELECT `+templateColumns+` FROM email_templates FINAL WHERE name = ? LIMIT 1`, name)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Internal("query email template", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, errors.NotFound("email template not found", nil)
	}

	var t models.EmailTemplate
	if err := rows.Scan(&t.Name, &t.SubjectTemplate, &t.BodyKind, &t.RelocationFocused); err != nil {
		span.RecordError(err)
		return nil, errors.Internal("scan email template", err)
	}

	return &t, nil
}

func (s *TemplateStore) List(ctx context.Context) ([]models.EmailTemplate, error) {
	ctx, span := tracer.Start(ctx, "TemplateStore.List")
	defer span.End()

	rows, err := s.db.Query(ctx, `SELECT `+templateColumns+` FROM email_templates FINAL ORDER BY name`)
	if err != nil {
		span.RecordError(err)
		return nil, errors.Internal("query email templates", err)
	}
	defer rows.Close()

	templates := make([]models.EmailTemplate, 0)
	for rows.Next() {
		var t models.EmailTemplate
		if err := rows.Scan(&t.Name, &t.SubjectTemplate, &t.BodyKind, &t.RelocationFocused); err != nil {
			return nil, errors.Internal("scan email template", err)
		}
		templates = append(templates, t)
	}

	return templates, nil
}
