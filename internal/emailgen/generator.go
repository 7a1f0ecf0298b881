package emailgen

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/Tanim1993/RelocationJobxyz/internal/models"
)

// Content is a generated application email. Generation is a pure function
// of the posting: the same row always yields byte-identical output.
type Content struct {
	Subject           string `json:"subject"`
	Body              string `json:"body"`
	RecipientEmail    string `json:"recipient_email"`
	RelocationFocused bool   `json:"relocation_focused"`
}

const fallbackRecipient = "hr@company.com"

// Generate builds the initial application email for a posting. The body is
// a greeting, an interest section with one bullet per set benefit flag,
// the fixed background/timeline/next-steps sections, and the sorted
// relocation-package detail lines.
func Generate(job models.JobPosting) Content {
	subject := fmt.Sprintf("Application for %s - Experienced Professional Seeking Relocation Opportunity", job.Title)

	var b strings.Builder

	fmt.Fprintf(&b, `Dear Hiring Manager / HR Team,

I hope this email finds you well. I am writing to express my strong interest in the %s position at %s. As a professional actively seeking relocation opportunities, I am particularly drawn to this role due to your company's support for international talent and relocation assistance.

**Why I'm Interested in This Relocation Opportunity:**

- Your commitment to supporting international professionals aligns perfectly with my career goals
- The %s role represents an excellent opportunity to contribute my expertise while building a new life in %s
`, job.Title, job.Company, job.Title, job.Location)

	if job.VisaSponsorship {
		b.WriteString("- I greatly appreciate your company's visa sponsorship program, which demonstrates a commitment to global talent acquisition\n")
	}
	if job.HousingAssistance {
		b.WriteString("- The housing assistance offered would be invaluable during my relocation transition\n")
	}
	if job.MovingAllowance != "" {
		b.WriteString("- The relocation package support would significantly ease the financial aspects of international relocation\n")
	}

	jobType := job.JobType
	if jobType == "" {
		jobType = "technology"
	}

	fmt.Fprintf(&b, `
**My Background and Relocation Readiness:**

I am a skilled professional with extensive experience in %s and am fully prepared for international relocation. My qualifications include:

- Strong technical background with proven track record in similar roles
- Experience working in diverse, multicultural environments
- Full legal authorization to work upon visa approval
- Flexibility and adaptability essential for successful international relocation
- Commitment to long-term growth with companies that invest in their international employees

**Relocation Timeline and Logistics:**

I am prepared to begin the relocation process immediately upon offer acceptance and can:
- Start the visa application process without delay
- Coordinate with your relocation support team for smooth transition
- Commit to long-term employment in appreciation of the relocation investment
- Adapt quickly to new cultural and professional environments

**Next Steps:**

I would welcome the opportunity to discuss how my background aligns with your needs and to learn more about your relocation support process. I am available for interviews via video call across different time zones and can provide any additional documentation required for the visa sponsorship process.

Thank you for considering international candidates and for your commitment to supporting global talent. I look forward to the possibility of contributing to %s's success while building my career in %s.

Best regards,
[Your Name]
[Your Contact Information]
[Your Current Location]`, jobType, job.Company, job.Location)

	appendPackageDetails(&b, job.RelocationPackage)

	return Content{
		Subject:           subject,
		Body:              b.String(),
		RecipientEmail:    recipient(job),
		RelocationFocused: true,
	}
}

// GenerateFollowUp builds the follow-up email for a posting.
func GenerateFollowUp(job models.JobPosting) Content {
	subject := fmt.Sprintf("Following up on %s Application - Relocation Candidate", job.Title)

	var b strings.Builder
	fmt.Fprintf(&b, `Dear Hiring Team,

I hope this email finds you well. I wanted to follow up on my application for the %s position at %s.

As a candidate specifically seeking relocation opportunities, I remain very interested in this role and wanted to reiterate my enthusiasm for the position and your relocation support program.

**Quick Recap of My Interest:**
- Actively seeking international relocation with visa sponsorship
- Ready to commit long-term in appreciation of relocation investment
- Prepared for immediate visa application process upon offer

I understand that reviewing applications, especially for international candidates, takes time. Please let me know if there are any updates on the hiring timeline or if you need any additional information from me.

Thank you again for your time and consideration. I look forward to hearing from you.

Best regards,
[Your Name]`, job.Title, job.Company)

	return Content{
		Subject:           subject,
		Body:              b.String(),
		RecipientEmail:    recipient(job),
		RelocationFocused: true,
	}
}

func recipient(job models.JobPosting) string {
	if job.HREmail != "" {
		return job.HREmail
	}
	if job.CompanyEmail != "" {
		return job.CompanyEmail
	}
	return fallbackRecipient
}

// appendPackageDetails renders the raw package JSON as bullet lines. Keys
// are sorted so repeated generation stays byte-identical regardless of
// map iteration order.
func appendPackageDetails(b *strings.Builder, packageJSON string) {
	if packageJSON == "" {
		return
	}

	var details map[string]any
	if err := json.Unmarshal([]byte(packageJSON), &details); err != nil {
		details = map[string]any{"details": packageJSON}
	}

	keys := make([]string, 0, len(details))
	for key, value := range details {
		if truthy(value) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return
	}
	sort.Strings(keys)

	b.WriteString("\n\n**Regarding Your Relocation Package:**\n")
	for _, key := range keys {
		fmt.Fprintf(b, "- I understand you offer %s\n", humanize(key))
	}
}

func truthy(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case string:
		return value != ""
	case float64:
		return value != 0
	default:
		return v != nil
	}
}

func humanize(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
