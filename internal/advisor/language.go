package advisor

import (
	"fmt"
	"strings"

	"github.com/Tanim1993/RelocationJobxyz/internal/errors"
)

// ProficiencyLevel is one of the six recognized language levels.
type ProficiencyLevel string

const (
	Beginner          ProficiencyLevel = "beginner"
	Elementary        ProficiencyLevel = "elementary"
	Intermediate      ProficiencyLevel = "intermediate"
	UpperIntermediate ProficiencyLevel = "upper_intermediate"
	Advanced          ProficiencyLevel = "advanced"
	Proficient        ProficiencyLevel = "proficient"
)

// Levels in ascending order.
var Levels = []ProficiencyLevel{
	Beginner,
	Elementary,
	Intermediate,
	UpperIntermediate,
	Advanced,
	Proficient,
}

// Next returns the level one step up. Total over all six levels:
// proficient caps at itself.
func (l ProficiencyLevel) Next() ProficiencyLevel {
	for i, level := range Levels {
		if level == l {
			if i == len(Levels)-1 {
				return l
			}
			return Levels[i+1]
		}
	}
	return Beginner
}

func ParseProficiencyLevel(raw string) (ProficiencyLevel, error) {
	normalized := ProficiencyLevel(strings.ToLower(strings.TrimSpace(strings.ReplaceAll(raw, "-", "_"))))
	for _, level := range Levels {
		if level == normalized {
			return level, nil
		}
	}
	return "", errors.InvalidInput(fmt.Sprintf("unknown proficiency level: %q", raw), nil)
}

type PlanRequest struct {
	TargetLanguage string `json:"target_language"`
	CurrentLevel   string `json:"current_level"`
	HoursPerWeek   int    `json:"hours_per_week"`
	Goal           string `json:"goal"`
}

type LearningPlan struct {
	TargetLanguage string   `json:"target_language"`
	CurrentLevel   string   `json:"current_level"`
	TargetLevel    string   `json:"target_level"`
	Duration       string   `json:"duration"`
	WeeklySchedule []string `json:"weekly_schedule"`
	Milestones     []string `json:"milestones"`
	Resources      []string `json:"resources"`
}

// stage is the canned plan content for one level step.
type stage struct {
	duration   string
	schedule   []string
	milestones []string
}

// Canned progression content keyed by current level. The "plan" is a
// lookup, not an inference: every level maps to fixed content for reaching
// the next level.
var stages = map[ProficiencyLevel]stage{
	Beginner: {
		duration: "12-16 weeks",
		schedule: []string{
			"3x vocabulary drills (30 min)",
			"2x pronunciation practice (20 min)",
			"1x graded reader session (30 min)",
		},
		milestones: []string{
			"Introduce yourself and handle greetings",
			"Read short everyday signs and menus",
			"Hold a 2-minute scripted conversation",
		},
	},
	Elementary: {
		duration: "10-14 weeks",
		schedule: []string{
			"3x grammar exercises (30 min)",
			"2x listening comprehension (25 min)",
			"1x conversation exchange (45 min)",
		},
		milestones: []string{
			"Describe your daily routine and work",
			"Order food and handle shopping unassisted",
			"Write short personal messages",
		},
	},
	Intermediate: {
		duration: "12-16 weeks",
		schedule: []string{
			"2x news article reading (30 min)",
			"2x podcast listening (30 min)",
			"2x conversation practice (45 min)",
		},
		milestones: []string{
			"Follow workplace small talk",
			"Write a structured email",
			"Summarize a news story aloud",
		},
	},
	UpperIntermediate: {
		duration: "14-18 weeks",
		schedule: []string{
			"2x business writing practice (40 min)",
			"2x presentation rehearsal (30 min)",
			"1x debate or discussion group (60 min)",
		},
		milestones: []string{
			"Lead a short meeting in the target language",
			"Draft professional documents with few errors",
			"Argue a position with supporting detail",
		},
	},
	Advanced: {
		duration: "16-20 weeks",
		schedule: []string{
			"2x technical reading in your field (40 min)",
			"1x mock interview session (60 min)",
			"2x native-media immersion (45 min)",
		},
		milestones: []string{
			"Interview confidently for roles in your field",
			"Negotiate nuanced topics",
			"Understand regional idiom and humor",
		},
	},
	Proficient: {
		duration: "ongoing maintenance",
		schedule: []string{
			"1x professional reading (30 min)",
			"1x native conversation (45 min)",
		},
		milestones: []string{
			"Maintain full professional fluency",
		},
	},
}

var baseResources = []string{
	"Spaced-repetition vocabulary deck",
	"Graded podcast series for your level",
	"Weekly tandem conversation partner",
}

// BuildLearningPlan assembles the canned plan for a profile. Pure lookup;
// the hours bucket only annotates pace, it never changes the progression.
func BuildLearningPlan(req PlanRequest) (*LearningPlan, error) {
	if req.TargetLanguage == "" {
		return nil, errors.InvalidInput("target_language is required", nil)
	}

	level, err := ParseProficiencyLevel(req.CurrentLevel)
	if err != nil {
		return nil, err
	}

	content := stages[level]
	duration := content.duration
	switch {
	case req.HoursPerWeek >= 10 && level != Proficient:
		duration += " (intensive pace)"
	case req.HoursPerWeek > 0 && req.HoursPerWeek < 4 && level != Proficient:
		duration += " (relaxed pace)"
	}

	return &LearningPlan{
		TargetLanguage: req.TargetLanguage,
		CurrentLevel:   string(level),
		TargetLevel:    string(level.Next()),
		Duration:       duration,
		WeeklySchedule: content.schedule,
		Milestones:     content.milestones,
		Resources:      baseResources,
	}, nil
}
