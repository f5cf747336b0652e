package priority

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikogura/interview-coach/pkg/catalog"
	"github.com/nikogura/interview-coach/pkg/profile"
)

func TestDeficitsFromAnalytics(t *testing.T) {
	analytics := profile.AnalyticsSnapshot{
		TotalSessions:  3,
		SkillBreakdown: profile.SkillBreakdown{Technical: 6, Communication: 4, Confidence: 8, Clarity: 10},
	}

	got := Deficits(profile.UserProfile{ExperienceLevel: profile.Junior, ConfidenceLevel: 3}, analytics)
	assert.Equal(t, profile.SkillBreakdown{Technical: 4, Communication: 6, Confidence: 2, Clarity: 0}, got)
}

func TestBaselineDeficits(t *testing.T) {
	tests := []struct {
		name    string
		profile profile.UserProfile
		want    profile.SkillBreakdown
	}{
		{
			name: "junior with communication goal and clarity weakness",
			profile: profile.UserProfile{
				ExperienceLevel: profile.Junior,
				ConfidenceLevel: 3,
				InterviewGoals:  []string{profile.GoalImproveCommunication},
				WeakAreas:       []string{"Clarity"},
			},
			want: profile.SkillBreakdown{Technical: 3, Communication: 5, Confidence: 4, Clarity: 4},
		},
		{
			name:    "nervous student",
			profile: profile.UserProfile{ExperienceLevel: profile.Student, ConfidenceLevel: 1},
			want:    profile.SkillBreakdown{Technical: 7, Communication: 5, Confidence: 6, Clarity: 5},
		},
		{
			name:    "confident senior",
			profile: profile.UserProfile{ExperienceLevel: profile.Senior, ConfidenceLevel: 5},
			want:    profile.SkillBreakdown{Technical: 0, Communication: 1, Confidence: 2, Clarity: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Deficits(tt.profile, profile.AnalyticsSnapshot{})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHighestDeficit(t *testing.T) {
	tests := []struct {
		name     string
		deficits profile.SkillBreakdown
		want     profile.Skill
	}{
		{name: "all equal goes to technical", deficits: profile.SkillBreakdown{Technical: 5, Communication: 5, Confidence: 5, Clarity: 5}, want: profile.SkillTechnical},
		{name: "tie after technical", deficits: profile.SkillBreakdown{Technical: 4, Communication: 6, Confidence: 6}, want: profile.SkillCommunication},
		{name: "clarity alone", deficits: profile.SkillBreakdown{Clarity: 1}, want: profile.SkillClarity},
		{name: "all zero", deficits: profile.SkillBreakdown{}, want: profile.SkillTechnical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := HighestDeficit(tt.deficits)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, SeverityHigh, Severity(6))
	assert.Equal(t, SeverityMedium, Severity(3))
	assert.Equal(t, SeverityMedium, Severity(5.9))
	assert.Equal(t, SeverityLow, Severity(2.9))
}

func TestScoreCategory(t *testing.T) {
	c := catalog.Default()
	ctx := CategoryContext{
		FocusSkill:       profile.SkillTechnical,
		Domains:          []string{"mobile"},
		WeakAreas:        []string{"technical"},
		TargetDifficulty: catalog.Intermediate,
		Trend:            profile.Declining,
	}

	frontend, ok := c.Category("frontend-engineering")
	require.True(t, ok)
	assert.InDelta(t, 92.0, ScoreCategory(frontend, ctx, DefaultResourceWeights()), 1e-9)

	fundamentals, ok := c.Category("cs-fundamentals")
	require.True(t, ok)
	assert.InDelta(t, 94.0, ScoreCategory(fundamentals, ctx, DefaultResourceWeights()), 1e-9)

	ctx.Trend = profile.Stable
	assert.InDelta(t, 84.0, ScoreCategory(fundamentals, ctx, DefaultResourceWeights()), 1e-9)

	empty := catalog.Category{ID: "empty", Skill: profile.SkillClarity}
	assert.InDelta(t, 0.0, ScoreCategory(empty, ctx, DefaultResourceWeights()), 1e-9)
}

func TestScoreCategoryMaximum(t *testing.T) {
	category := catalog.Category{
		ID:           "speaking-up",
		Name:         "Speaking Up",
		Skill:        profile.SkillConfidence,
		Domains:      []string{"backend"},
		Foundational: true,
		Resources: []catalog.Resource{
			{ID: "a", Difficulty: catalog.Beginner},
			{ID: "b", Difficulty: catalog.Beginner},
		},
	}
	ctx := CategoryContext{
		FocusSkill:       profile.SkillConfidence,
		Domains:          []string{"backend"},
		WeakAreas:        []string{"confidence"},
		TargetDifficulty: catalog.Beginner,
		Trend:            profile.Declining,
	}

	assert.InDelta(t, 100.0+FoundationalBonus, ScoreCategory(category, ctx, DefaultResourceWeights()), 1e-9)

	ctx.Trend = profile.Improving
	assert.InDelta(t, 100.0, ScoreCategory(category, ctx, DefaultResourceWeights()), 1e-9)
}

func TestRankCategories(t *testing.T) {
	c := catalog.Default()
	ctx := CategoryContext{
		FocusSkill:       profile.SkillClarity,
		TargetDifficulty: catalog.Beginner,
		Trend:            profile.Stable,
	}

	ranked := RankCategories(c.Categories, ctx, DefaultResourceWeights())
	require.Len(t, ranked, len(c.Categories))
	assert.Equal(t, "clarity-concision", ranked[0].Category.ID)

	position := make(map[string]int)
	for i, sc := range ranked {
		position[sc.Category.ID] = i
		if i > 0 {
			assert.GreaterOrEqual(t, ranked[i-1].Score, sc.Score)
		}
	}

	// Equal scores keep catalog order.
	assert.Less(t, position["system-design"], position["behavioral-storytelling"])
}

func TestUrgency(t *testing.T) {
	tests := []struct {
		name     string
		profile  profile.UserProfile
		deficits profile.SkillBreakdown
		score    float64
		level    string
	}{
		{
			name:     "junior medium",
			profile:  profile.UserProfile{ExperienceLevel: profile.Junior, ConfidenceLevel: 3, WeakAreas: []string{"communication"}},
			deficits: profile.SkillBreakdown{Technical: 4, Communication: 6, Confidence: 2},
			score:    31.3,
			level:    UrgencyMedium,
		},
		{
			name:     "nervous student clamps to critical",
			profile:  profile.UserProfile{ExperienceLevel: profile.Student, ConfidenceLevel: 1, WeakAreas: []string{"technical", "confidence"}},
			deficits: profile.SkillBreakdown{Technical: 10, Communication: 10, Confidence: 10, Clarity: 10},
			score:    100,
			level:    UrgencyCritical,
		},
		{
			name:     "confident senior",
			profile:  profile.UserProfile{ExperienceLevel: profile.Senior, ConfidenceLevel: 5},
			deficits: profile.SkillBreakdown{Communication: 1, Confidence: 2, Clarity: 1},
			score:    5.68,
			level:    UrgencyLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, level := Urgency(tt.profile, tt.deficits, DefaultConfig())
			assert.InDelta(t, tt.score, score, 1e-6)
			assert.Equal(t, tt.level, level)
		})
	}
}

func TestUrgencyLevel(t *testing.T) {
	assert.Equal(t, UrgencyCritical, UrgencyLevel(70))
	assert.Equal(t, UrgencyHigh, UrgencyLevel(69.9))
	assert.Equal(t, UrgencyHigh, UrgencyLevel(50))
	assert.Equal(t, UrgencyMedium, UrgencyLevel(25))
	assert.Equal(t, UrgencyLow, UrgencyLevel(24.9))
}

func TestWeightsValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	assert.InDelta(t, 1.0, DefaultResourceWeights().Sum(), 1e-6)
	assert.InDelta(t, 1.0, DefaultUrgencyWeights().Sum(), 1e-6)
	assert.InDelta(t, 1.0, DefaultSkillWeights().Sum(), 1e-6)

	bad := DefaultConfig()
	bad.Urgency.Deficit = 0.9
	assert.Error(t, bad.Validate())

	negative := DefaultConfig()
	negative.Skills.Technical = -0.35
	negative.Skills.Communication = 0.95
	assert.Error(t, negative.Validate())
}
