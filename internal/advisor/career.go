package advisor

import (
	"strings"

	"github.com/Tanim1993/RelocationJobxyz/internal/errors"
)

type PathRequest struct {
	Industry string `json:"industry"`
	Goal     string `json:"goal"`
}

type PathAdvice struct {
	NextRole string   `json:"next_role"`
	ThenRole string   `json:"then_role"`
	Timeline string   `json:"timeline"`
	Skills   []string `json:"skills"`
	Advice   string   `json:"advice"`
}

// Career advice keyed by industry|goal (lowercased). Unrecognized pairs
// get the default record.
var careerPaths = map[string]PathAdvice{
	"technology|leadership": {
		NextRole: "Senior Software Engineer",
		ThenRole: "Engineering Manager",
		Timeline: "2-4 years",
		Skills:   []string{"System design", "Mentoring", "Cross-team communication", "Project planning"},
		Advice:   "Take ownership of team-wide initiatives and mentor junior engineers before moving into management.",
	},
	"technology|specialist": {
		NextRole: "Staff Engineer",
		ThenRole: "Principal Engineer",
		Timeline: "3-5 years",
		Skills:   []string{"Architecture", "Technical strategy", "Deep domain expertise"},
		Advice:   "Build visible technical depth: design documents, internal talks, and ownership of a hard subsystem.",
	},
	"finance|leadership": {
		NextRole: "Finance Manager",
		ThenRole: "Finance Director",
		Timeline: "3-5 years",
		Skills:   []string{"Financial planning", "Stakeholder management", "Regulatory knowledge"},
		Advice:   "Pair technical finance skills with cross-functional exposure; international postings accelerate the jump.",
	},
	"healthcare|specialist": {
		NextRole: "Senior Clinical Specialist",
		ThenRole: "Clinical Lead",
		Timeline: "4-6 years",
		Skills:   []string{"Specialized certification", "Research contribution", "Patient outcomes"},
		Advice:   "Credential recognition varies by country; start the licensing process before relocating.",
	},
	"marketing|leadership": {
		NextRole: "Marketing Manager",
		ThenRole: "Head of Marketing",
		Timeline: "2-4 years",
		Skills:   []string{"Campaign strategy", "Analytics", "Team leadership"},
		Advice:   "Own a measurable revenue line; numbers travel across borders better than titles do.",
	},
}

var defaultCareerPath = PathAdvice{
	NextRole: "Senior Professional",
	ThenRole: "Team Lead",
	Timeline: "2-5 years",
	Skills:   []string{"Communication", "Domain expertise", "Cross-cultural collaboration"},
	Advice:   "Grow depth in your current specialty while building the leadership record relocating employers look for.",
}

// PredictCareerPath looks up the canned advice for an industry/goal pair,
// falling back to the default record for unrecognized pairs.
func PredictCareerPath(req PathRequest) (*PathAdvice, error) {
	if req.Industry == "" || req.Goal == "" {
		return nil, errors.InvalidInput("industry and goal are required", nil)
	}

	key := strings.ToLower(strings.TrimSpace(req.Industry)) + "|" + strings.ToLower(strings.TrimSpace(req.Goal))
	if advice, ok := careerPaths[key]; ok {
		return &advice, nil
	}
	advice := defaultCareerPath
	return &advice, nil
}
