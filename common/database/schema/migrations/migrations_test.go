package migrations

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelocationJobsDuplicateCollapseKey(t *testing.T) {
	up := CreateRelocationJobsTable.Up

	require.Contains(t, up, "ENGINE = ReplacingMergeTree(updated_at)")
	require.Contains(t, up, "ORDER BY (id)")

	// Ingestion timestamps differ on every run; if they enter the sorting
	// key (or split partitions), re-ingested postings stop collapsing.
	require.NotContains(t, up, "ORDER BY (id, created_at)")
	require.NotContains(t, up, "PARTITION BY")
}

func TestMigrationVersionsAreSequential(t *testing.T) {
	versions := []int{
		CreateRelocationJobsTable.Version,
		CreateEmailTemplatesTable.Version,
		SeedEmailTemplates.Version,
	}
	for i, version := range versions {
		require.Equal(t, i+1, version)
	}
}
