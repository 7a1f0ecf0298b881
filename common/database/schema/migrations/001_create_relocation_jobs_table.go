package migrations

import "github.com/Tanim1993/RelocationJobxyz/common/database/schema"

// The sorting key is the natural-key id alone. Timestamps are ingestion
// times and differ on every run, so they must not take part in duplicate
// collapse; updated_at only versions which copy the replacing merge keeps.
var CreateRelocationJobsTable = schema.Migration{
	Version:     1,
	Description: "Create relocation jobs table",
	Up: `
		CREATE TABLE IF NOT EXISTS relocation_jobs (
			id UUID,
			title String,
			company String,
			location String,
			remote_friendly Bool,
			job_url String,
			visa_sponsorship Bool,
			housing_assistance Bool,
			moving_allowance String,
			relocation_type LowCardinality(String),
			relocation_package String,
			hr_email String,
			company_email String,
			description String,
			requirements String,
			salary_range String,
			job_type LowCardinality(String),
			created_at DateTime,
			updated_at DateTime,
			PRIMARY KEY (id)
		) ENGINE = ReplacingMergeTree(updated_at)
		ORDER BY (id)
		SETTINGS index_granularity = 8192
	`,
	Down: `DROP TABLE IF EXISTS relocation_jobs`,
}
