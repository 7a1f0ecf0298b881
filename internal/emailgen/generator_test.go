package emailgen

import (
	"strings"
	"testing"

	"github.com/Tanim1993/RelocationJobxyz/internal/models"

	"github.com/stretchr/testify/require"
)

func samplePosting() models.JobPosting {
	return models.JobPosting{
		ID:                "8a6e0804-2bd0-5672-b79d-00c04fd430c8",
		Title:             "QA Engineer",
		Company:           "Acme Corp",
		Location:          "Berlin, Germany",
		JobType:           "QA Engineer",
		VisaSponsorship:   true,
		HousingAssistance: false,
		MovingAllowance:   "Provided",
		RelocationPackage: `{"visa_sponsorship":true,"relocation_bonus":true}`,
		HREmail:           "talent@acme.example",
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	job := samplePosting()

	first := Generate(job)
	second := Generate(job)

	require.Equal(t, first.Subject, second.Subject)
	require.Equal(t, first.Body, second.Body)
	require.Equal(t, first.RecipientEmail, second.RecipientEmail)
}

func TestGenerateBenefitBullets(t *testing.T) {
	job := samplePosting()
	content := Generate(job)

	require.Contains(t, content.Body, "visa sponsorship program")
	require.Contains(t, content.Body, "relocation package support")
	require.NotContains(t, content.Body, "housing assistance offered")

	job.VisaSponsorship = false
	job.MovingAllowance = ""
	job.HousingAssistance = true
	content = Generate(job)

	require.NotContains(t, content.Body, "visa sponsorship program")
	require.NotContains(t, content.Body, "relocation package support")
	require.Contains(t, content.Body, "housing assistance offered")
}

func TestGeneratePackageDetails(t *testing.T) {
	job := samplePosting()
	content := Generate(job)

	require.Contains(t, content.Body, "**Regarding Your Relocation Package:**")
	require.Contains(t, content.Body, "- I understand you offer Relocation Bonus")
	require.Contains(t, content.Body, "- I understand you offer Visa Sponsorship")

	// Keys render in sorted order.
	bonusIdx := strings.Index(content.Body, "Relocation Bonus")
	visaIdx := strings.Index(content.Body, "you offer Visa Sponsorship")
	require.Less(t, bonusIdx, visaIdx)

	job.RelocationPackage = ""
	content = Generate(job)
	require.NotContains(t, content.Body, "Regarding Your Relocation Package")

	job.RelocationPackage = `{"visa_sponsorship":false}`
	content = Generate(job)
	require.NotContains(t, content.Body, "Regarding Your Relocation Package")
}

func TestRecipientFallback(t *testing.T) {
	tests := []struct {
		name         string
		hrEmail      string
		companyEmail string
		want         string
	}{
		{"hr email preferred", "talent@acme.example", "info@acme.example", "talent@acme.example"},
		{"company email second", "", "info@acme.example", "info@acme.example"},
		{"fallback", "", "", "hr@company.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := samplePosting()
			job.HREmail = tt.hrEmail
			job.CompanyEmail = tt.companyEmail
			require.Equal(t, tt.want, Generate(job).RecipientEmail)
		})
	}
}

func TestGenerateFollowUp(t *testing.T) {
	job := samplePosting()
	content := GenerateFollowUp(job)

	require.Equal(t, "Following up on QA Engineer Application - Relocation Candidate", content.Subject)
	require.Contains(t, content.Body, "follow up on my application for the QA Engineer position at Acme Corp")
	require.True(t, content.RelocationFocused)

	require.Equal(t, content.Body, GenerateFollowUp(job).Body)
}

func TestForTemplate(t *testing.T) {
	job := samplePosting()

	tmpl := models.EmailTemplate{
		Name:              "visa_inquiry",
		SubjectTemplate:   "Inquiry about Visa Sponsorship Process for {{.Title}}",
		BodyKind:          "application",
		RelocationFocused: true,
	}

	content, err := ForTemplate(tmpl, job)
	require.NoError(t, err)
	require.Equal(t, "Inquiry about Visa Sponsorship Process for QA Engineer", content.Subject)
	require.Equal(t, Generate(job).Body, content.Body)

	followUp := models.EmailTemplate{
		Name:            "follow_up",
		SubjectTemplate: "Following up on {{.Title}} Application - Relocation Candidate",
		BodyKind:        "follow_up",
	}

	content, err = ForTemplate(followUp, job)
	require.NoError(t, err)
	require.Equal(t, GenerateFollowUp(job).Body, content.Body)
}
