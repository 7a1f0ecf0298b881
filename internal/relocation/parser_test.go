package relocation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostingID(t *testing.T) {
	first := PostingID("QA Engineer", "Acme Corp", "Berlin, Germany")
	second := PostingID("QA Engineer", "Acme Corp", "Berlin, Germany")
	require.Equal(t, first, second)

	caseInsensitive := PostingID("qa engineer", "ACME CORP", "berlin, germany")
	require.Equal(t, first, caseInsensitive)

	padded := PostingID("  QA Engineer  ", "Acme Corp", "Berlin, Germany")
	require.Equal(t, first, padded)

	other := PostingID("QA Engineer", "Acme Corp", "Munich, Germany")
	require.NotEqual(t, first, other)
}

func TestHasRelocationSupport(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        bool
	}{
		{
			name:        "keyword in description",
			description: "We offer visa sponsorship and full benefits",
			want:        true,
		},
		{
			name:  "keyword in title",
			title: "Software Engineer (Relocation Package)",
			want:  true,
		},
		{
			name:        "mixed case",
			description: "VISA SPONSORSHIP available for the right candidate",
			want:        true,
		},
		{
			name:        "no keyword",
			title:       "Software Engineer",
			description: "Great team, competitive salary",
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, HasRelocationSupport(tt.title, tt.description))
		})
	}
}

func TestSponsorsVisa(t *testing.T) {
	require.True(t, SponsorsVisa("We offer Visa Sponsorship to qualified candidates"))
	require.True(t, SponsorsVisa("H1B transfer welcome"))
	require.False(t, SponsorsVisa("Must already be authorized to work"))
}

func TestMovingAllowance(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"Moving allowance of $5000", "Provided"},
		{"Relocation bonus on signing", "Provided"},
		{"Full relocation package included", "Package available"},
		{"No relocation support", ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, MovingAllowance(tt.description), tt.description)
	}
}

func TestRelocationType(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{"visa sponsorship available", "visa_sponsorship"},
		{"H1B candidates welcome", "visa_sponsorship"},
		{"internal transfer opportunities", "internal_transfer"},
		{"remote first, office visits quarterly", "remote_to_office"},
		{"relocation assistance provided", "general_relocation"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, RelocationType(tt.description), tt.description)
	}
}

func TestJobType(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Senior QA Engineer", "QA Engineer"},
		{"Quality Assurance Lead", "QA Engineer"},
		{"Senior Software Engineer", "Software Engineer"},
		{"Backend Developer", "Software Engineer"},
		{"Data Scientist II", "Data Scientist"},
		{"DevOps Specialist", "DevOps Engineer"},
		{"Product Manager, Growth", "Product Manager"},
		{"Solutions Architect", "Technology"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, JobType(tt.title), tt.title)
	}
}

func TestFormatSalaryRange(t *testing.T) {
	tests := []struct {
		name string
		min  float64
		max  float64
		want string
	}{
		{"both bounds", 120000, 150000, "$120,000 - $150,000"},
		{"min only", 90000, 0, "$90,000+"},
		{"neither", 0, 0, "Salary not specified"},
		{"small numbers", 900, 950, "$900 - $950"},
		{"millions", 1200000, 1500000, "$1,200,000 - $1,500,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatSalaryRange(tt.min, tt.max))
		})
	}
}

func TestDetectBenefits(t *testing.T) {
	benefits := DetectBenefits("Visa sponsorship, relocation bonus, and temporary accommodation provided")
	require.True(t, benefits.VisaSponsorship)
	require.True(t, benefits.RelocationBonus)
	require.True(t, benefits.HousingAssistance)
	require.False(t, benefits.ImmigrationSupport)
}

func TestSearchQuery(t *testing.T) {
	got := SearchQuery("QA Engineer")
	require.Equal(t, `QA Engineer "visa sponsorship" OR "relocation package" OR "relocation assistance"`, got)

	empty := SearchQuery("")
	require.Equal(t, `"visa sponsorship" OR "relocation package" OR "relocation assistance"`, empty)
}
