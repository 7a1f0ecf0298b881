package migrations

import "github.com/Tanim1993/RelocationJobxyz/common/database/schema"

var CreateEmailTemplatesTable = schema.Migration{
	Version:     2,
	Description: "Create and seed email templates table",
	Up: `
		CREATE TABLE IF NOT EXISTS email_templates (
			name LowCardinality(String),
			subject_template String,
			body_kind LowCardinality(String),
			relocation_focused Bool,
			created_at DateTime DEFAULT now(),
			PRIMARY KEY (name)
		) ENGINE = ReplacingMergeTree()
		ORDER BY (name)
	`,
	Down: `DROP TABLE IF EXISTS email_templates`,
}

var SeedEmailTemplates = schema.Migration{
	Version:     3,
	Description: "Seed default relocation email templates",
	Up: `
		INSERT INTO email_templates (name, subject_template, body_kind, relocation_focused) VALUES
		('initial_application', 'Application for {{.Title}} - International Candidate Seeking Relocation', 'application', true),
		('follow_up', 'Following up on {{.Title}} Application - Relocation Candidate', 'follow_up', true),
		('visa_inquiry', 'Inquiry about Visa Sponsorship Process for {{.Title}}', 'application', true),
		('relocation_package_inquiry', 'Questions about Relocation Package for {{.Title}}', 'application', true)
	`,
	Down: `TRUNCATE TABLE email_templates`,
}
