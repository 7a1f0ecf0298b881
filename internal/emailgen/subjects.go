package emailgen

import (
	"strings"
	"text/template"

	"github.com/Tanim1993/RelocationJobxyz/internal/errors"
	"github.com/Tanim1993/RelocationJobxyz/internal/models"
)

// RenderSubject expands a seeded subject template against a posting.
// Templates only reference posting fields; anything else is a seed-data
// bug surfaced as an error.
func RenderSubject(subjectTemplate string, job models.JobPosting) (string, error) {
	tmpl, err := template.New("subject").Parse(subjectTemplate)
	if err != nil {
		return "", errors.Internal("parse subject template", err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, job); err != nil {
		return "", errors.Internal("render subject template", err)
	}
	return b.String(), nil
}

// ForTemplate builds the email body matching a seeded template's body
// kind. Unknown kinds fall back to the initial application body.
func ForTemplate(tmpl models.EmailTemplate, job models.JobPosting) (Content, error) {
	var content Content
	switch tmpl.BodyKind {
	case "follow_up":
		content = GenerateFollowUp(job)
	default:
		content = Generate(job)
	}

	subject, err := RenderSubject(tmpl.SubjectTemplate, job)
	if err != nil {
		return Content{}, err
	}
	content.Subject = subject
	content.RelocationFocused = tmpl.RelocationFocused
	return content, nil
}
