package relocation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Keywords whose presence in a title or description marks a posting as
// relocation-friendly. The search query is also built from the first few
// of these.
var Keywords = []string{
	"visa sponsorship",
	"relocation package",
	"relocation assistance",
	"H1B sponsor",
	"work permit",
	"immigration support",
	"moving allowance",
	"relocation bonus",
	"international candidates",
}

var postingNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// PostingID derives the deterministic natural-key UUID for a posting. The
// same title/company/location always maps to the same row, which is what
// makes re-ingestion an overwrite instead of a duplicate.
func PostingID(title, company, location string) string {
	key := strings.ToLower(strings.TrimSpace(title)) + "|" +
		strings.ToLower(strings.TrimSpace(company)) + "|" +
		strings.ToLower(strings.TrimSpace(location))
	return uuid.NewSHA1(postingNamespace, []byte(key)).String()
}

// HasRelocationSupport reports whether any relocation keyword appears in
// the title or description, case-insensitively.
func HasRelocationSupport(title, description string) bool {
	title = strings.ToLower(title)
	description = strings.ToLower(description)
	for _, keyword := range Keywords {
		k := strings.ToLower(keyword)
		if strings.Contains(title, k) || strings.Contains(description, k) {
			return true
		}
	}
	return false
}

// Benefits holds the package details detected in a description. It is
// serialized as-is into the relocation_package column and never reconciled
// with the boolean row flags afterwards.
type Benefits struct {
	VisaSponsorship    bool `json:"visa_sponsorship,omitempty"`
	MovingAllowance    bool `json:"moving_allowance,omitempty"`
	HousingAssistance  bool `json:"housing_assistance,omitempty"`
	ImmigrationSupport bool `json:"immigration_support,omitempty"`
	RelocationBonus    bool `json:"relocation_bonus,omitempty"`
}

func DetectBenefits(description string) Benefits {
	d := strings.ToLower(description)
	return Benefits{
		VisaSponsorship:    strings.Contains(d, "visa sponsorship") || strings.Contains(d, "h1b"),
		MovingAllowance:    strings.Contains(d, "relocation package") || strings.Contains(d, "moving allowance"),
		HousingAssistance:  strings.Contains(d, "housing assistance") || strings.Contains(d, "temporary accommodation"),
		ImmigrationSupport: strings.Contains(d, "immigration support"),
		RelocationBonus:    strings.Contains(d, "relocation bonus"),
	}
}

// PackageJSON renders detected benefits for the raw-JSON column.
func PackageJSON(b Benefits) string {
	data, err := json.Marshal(b)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// SponsorsVisa is the visa flag rule: any mention of a visa or H1B counts,
// so every description carrying "visa sponsorship" in any case sets it.
func SponsorsVisa(description string) bool {
	d := strings.ToLower(description)
	return strings.Contains(d, "visa") || strings.Contains(d, "h1b")
}

func AssistsHousing(description string) bool {
	d := strings.ToLower(description)
	return strings.Contains(d, "housing") || strings.Contains(d, "accommodation")
}

// MovingAllowance classifies allowance wording into the coarse values the
// listing page shows.
func MovingAllowance(description string) string {
	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "moving allowance") || strings.Contains(d, "relocation bonus"):
		return "Provided"
	case strings.Contains(d, "relocation package"):
		return "Package available"
	default:
		return ""
	}
}

// RelocationType classifies the kind of relocation support offered.
func RelocationType(description string) string {
	d := strings.ToLower(description)
	switch {
	case strings.Contains(d, "visa sponsorship") || strings.Contains(d, "h1b"):
		return "visa_sponsorship"
	case strings.Contains(d, "internal transfer"):
		return "internal_transfer"
	case strings.Contains(d, "remote") && strings.Contains(d, "office"):
		return "remote_to_office"
	default:
		return "general_relocation"
	}
}

// JobType buckets a title into the coarse categories used as list filters.
func JobType(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "qa") || strings.Contains(t, "quality assurance"):
		return "QA Engineer"
	case strings.Contains(t, "software engineer") || strings.Contains(t, "developer"):
		return "Software Engineer"
	case strings.Contains(t, "data scientist"):
		return "Data Scientist"
	case strings.Contains(t, "devops"):
		return "DevOps Engineer"
	case strings.Contains(t, "product manager"):
		return "Product Manager"
	default:
		return "Technology"
	}
}

// FormatSalaryRange renders the min/max salary pair the way the listing
// page expects.
func FormatSalaryRange(min, max float64) string {
	switch {
	case min > 0 && max > 0:
		return fmt.Sprintf("$%s - $%s", formatThousands(min), formatThousands(max))
	case min > 0:
		return fmt.Sprintf("$%s+", formatThousands(min))
	default:
		return "Salary not specified"
	}
}

func formatThousands(v float64) string {
	n := int64(v)
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// SearchQuery builds the external API query: the job type plus the first
// three relocation keywords, quoted and OR-ed.
func SearchQuery(jobType string) string {
	quoted := make([]string, 0, 3)
	for _, keyword := range Keywords[:3] {
		quoted = append(quoted, `"`+keyword+`"`)
	}
	return strings.TrimSpace(jobType + " " + strings.Join(quoted, " OR "))
}
