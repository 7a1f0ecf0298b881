package advisor

import (
	"math/rand"
	"strings"

	"github.com/Tanim1993/RelocationJobxyz/internal/errors"
)

type FitRequest struct {
	HomeCountry   string `json:"home_country"`
	TargetCountry string `json:"target_country"`
	YearsAbroad   int    `json:"years_abroad"`
}

type FitResult struct {
	HomeCountry   string   `json:"home_country"`
	TargetCountry string   `json:"target_country"`
	Score         int      `json:"score"`
	Level         string   `json:"level"`
	Differences   []string `json:"differences"`
	Tips          []string `json:"tips"`
}

// countryPair holds the canned content for one home→target pairing.
type countryPair struct {
	base        int
	differences []string
	tips        []string
}

const (
	defaultBaseScore   = 70
	maxExperienceBonus = 20
	randomSpread       = 15 // perturbation drawn from [0, 15)
)

// Pair content keyed by "home->target" (lowercase ISO-ish codes). Pairs
// not listed fall back to the default entry.
var countryPairs = map[string]countryPair{
	"us->jp": {
		base: 65,
		differences: []string{
			"Indirect, high-context communication over directness",
			"Consensus decision-making (nemawashi) before meetings",
			"Seniority-based hierarchy shapes who speaks first",
			"Longer working hours and after-work socializing",
		},
		tips: []string{
			"Let silence sit; it signals consideration, not disagreement",
			"Circulate proposals informally before the official meeting",
			"Invest in after-work gatherings early on",
		},
	},
	"us->de": {
		base: 78,
		differences: []string{
			"Blunt, task-focused feedback is normal",
			"Strict separation of work and private life",
			"Punctuality is treated as a hard commitment",
		},
		tips: []string{
			"Don't soften criticism; precision is read as respect",
			"Avoid scheduling outside agreed working hours",
			"Prepare thoroughly; improvisation reads as carelessness",
		},
	},
	"in->us": {
		base: 72,
		differences: []string{
			"Flat hierarchy: juniors are expected to challenge seniors",
			"Small talk precedes most business conversations",
			"Self-promotion is expected in reviews",
		},
		tips: []string{
			"State disagreement directly in meetings",
			"Keep a written record of your accomplishments",
			"Practice brief social openers for calls",
		},
	},
	"uk->au": {
		base: 85,
		differences: []string{
			"More informal workplace register",
			"Earlier start times and outdoor-oriented culture",
		},
		tips: []string{
			"Drop formal titles quickly",
			"Expect early meetings and plan around them",
		},
	},
}

var defaultPair = countryPair{
	base: defaultBaseScore,
	differences: []string{
		"Workplace communication norms may differ from home",
		"Hierarchy and decision-making speed vary by country",
		"Work-life balance expectations differ",
	},
	tips: []string{
		"Observe before asserting in your first month",
		"Find a local colleague willing to explain unwritten rules",
		"Ask your manager how feedback is usually given",
	},
}

// CulturalScorer computes a cultural-readiness score. The random
// perturbation is cosmetic variability carried over from the original
// product behavior; the rng is injectable so callers can pin it.
type CulturalScorer struct {
	rng *rand.Rand
}

func NewCulturalScorer(rng *rand.Rand) *CulturalScorer {
	return &CulturalScorer{rng: rng}
}

// Assess looks up the country-pair content and derives the score:
// pair base + experience bonus (4 per year abroad, capped at 20) +
// random 0-14.
func (s *CulturalScorer) Assess(req FitRequest) (*FitResult, error) {
	if req.HomeCountry == "" || req.TargetCountry == "" {
		return nil, errors.InvalidInput("home_country and target_country are required", nil)
	}

	key := strings.ToLower(strings.TrimSpace(req.HomeCountry)) + "->" + strings.ToLower(strings.TrimSpace(req.TargetCountry))
	pair, ok := countryPairs[key]
	if !ok {
		pair = defaultPair
	}

	bonus := req.YearsAbroad * 4
	if bonus > maxExperienceBonus {
		bonus = maxExperienceBonus
	}
	if bonus < 0 {
		bonus = 0
	}

	score := pair.base + bonus + s.perturbation()

	return &FitResult{
		HomeCountry:   strings.ToLower(strings.TrimSpace(req.HomeCountry)),
		TargetCountry: strings.ToLower(strings.TrimSpace(req.TargetCountry)),
		Score:         score,
		Level:         fitLevel(score),
		Differences:   pair.differences,
		Tips:          pair.tips,
	}, nil
}

func (s *CulturalScorer) perturbation() int {
	if s.rng != nil {
		return s.rng.Intn(randomSpread)
	}
	return rand.Intn(randomSpread)
}

func fitLevel(score int) string {
	switch {
	case score >= 85:
		return "Excellent readiness"
	case score >= 70:
		return "Good readiness"
	case score >= 55:
		return "Moderate readiness"
	default:
		return "Needs preparation"
	}
}
