package advisor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProficiencyLevelNext(t *testing.T) {
	tests := []struct {
		level ProficiencyLevel
		want  ProficiencyLevel
	}{
		{Beginner, Elementary},
		{Elementary, Intermediate},
		{Intermediate, UpperIntermediate},
		{UpperIntermediate, Advanced},
		{Advanced, Proficient},
		{Proficient, Proficient},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, tt.level.Next(), string(tt.level))
	}

	require.Equal(t, Beginner, ProficiencyLevel("bogus").Next())
}

func TestParseProficiencyLevel(t *testing.T) {
	tests := []struct {
		raw     string
		want    ProficiencyLevel
		wantErr bool
	}{
		{"beginner", Beginner, false},
		{"  Advanced  ", Advanced, false},
		{"Upper-Intermediate", UpperIntermediate, false},
		{"upper_intermediate", UpperIntermediate, false},
		{"fluent", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		level, err := ParseProficiencyLevel(tt.raw)
		if tt.wantErr {
			require.Error(t, err, tt.raw)
			continue
		}
		require.NoError(t, err, tt.raw)
		require.Equal(t, tt.want, level)
	}
}

func TestBuildLearningPlan(t *testing.T) {
	plan, err := BuildLearningPlan(PlanRequest{
		TargetLanguage: "German",
		CurrentLevel:   "intermediate",
		HoursPerWeek:   6,
	})
	require.NoError(t, err)
	require.Equal(t, "intermediate", plan.CurrentLevel)
	require.Equal(t, "upper_intermediate", plan.TargetLevel)
	require.Equal(t, "12-16 weeks", plan.Duration)
	require.NotEmpty(t, plan.WeeklySchedule)
	require.NotEmpty(t, plan.Milestones)
	require.NotEmpty(t, plan.Resources)
}

func TestBuildLearningPlanPaceAnnotation(t *testing.T) {
	intensive, err := BuildLearningPlan(PlanRequest{
		TargetLanguage: "Japanese",
		CurrentLevel:   "beginner",
		HoursPerWeek:   12,
	})
	require.NoError(t, err)
	require.Equal(t, "12-16 weeks (intensive pace)", intensive.Duration)

	relaxed, err := BuildLearningPlan(PlanRequest{
		TargetLanguage: "Japanese",
		CurrentLevel:   "beginner",
		HoursPerWeek:   2,
	})
	require.NoError(t, err)
	require.Equal(t, "12-16 weeks (relaxed pace)", relaxed.Duration)

	// Pace never changes the progression itself.
	require.Equal(t, intensive.WeeklySchedule, relaxed.WeeklySchedule)
	require.Equal(t, intensive.Milestones, relaxed.Milestones)
}

func TestBuildLearningPlanValidation(t *testing.T) {
	_, err := BuildLearningPlan(PlanRequest{CurrentLevel: "beginner"})
	require.Error(t, err)

	_, err = BuildLearningPlan(PlanRequest{TargetLanguage: "German", CurrentLevel: "native"})
	require.Error(t, err)
}
