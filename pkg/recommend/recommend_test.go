package recommend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/nikogura/interview-coach/pkg/catalog"
	"github.com/nikogura/interview-coach/pkg/difficulty"
	"github.com/nikogura/interview-coach/pkg/keywords"
	"github.com/nikogura/interview-coach/pkg/learningpath"
	"github.com/nikogura/interview-coach/pkg/priority"
	"github.com/nikogura/interview-coach/pkg/profile"
)

func newTestGenerator(t *testing.T) (g *Generator) {
	g, err := NewGenerator(catalog.Default(), priority.DefaultConfig(), zaptest.NewLogger(t))
	require.NoError(t, err)
	return g
}

func TestGenerateWithoutSessions(t *testing.T) {
	g := newTestGenerator(t)

	p := profile.UserProfile{
		ExperienceLevel: profile.Junior,
		Domains:         []string{"frontend"},
		InterviewGoals:  []string{profile.GoalImproveCommunication},
		ConfidenceLevel: 3,
	}

	out := g.Generate(p, profile.AnalyticsSnapshot{})

	assert.Equal(t, profile.SkillCommunication, out.PrimaryFocus.Skill)
	assert.Equal(t, "Communication", out.PrimaryFocus.Label)
	assert.Equal(t, priority.SeverityMedium, out.PrimaryFocus.Severity)
	assert.InDelta(t, 5.0, out.PrimaryFocus.Deficit, 1e-9)

	assert.Equal(t, difficulty.Medium, out.SuggestedDifficulty)
	assert.Equal(t, keywords.RoleGeneral, out.SuggestedRole)
	assert.Equal(t, keywords.TypeBehavioral, out.SuggestedType)
	assert.Equal(t, keywords.RoleFrontend, out.DomainMapping.PrimaryRole)

	assert.InDelta(t, 26.2, out.UrgencyScore, 1e-6)
	assert.Equal(t, priority.UrgencyMedium, out.UrgencyLevel)

	require.Len(t, out.RecommendedResources, MaxResources)
	assert.Equal(t, "comm-course", out.RecommendedResources[0].ID)
	assert.Equal(t, "communication-basics", out.RecommendedResources[0].CategoryID)
	assert.Equal(t, "behavioral-storytelling", out.RecommendedResources[3].CategoryID)
	assert.Equal(t, "star-bank", out.RecommendedResources[3].ID)

	require.NotEmpty(t, out.LearningPath.Steps)
	assert.Equal(t, learningpath.PhaseFoundation, out.LearningPath.Steps[0].Phase)

	require.Len(t, out.ProgressInsights.Messages, 1)
	assert.Empty(t, out.ProgressInsights.StrongestSkill)
}

func TestGenerateWithSessions(t *testing.T) {
	g := newTestGenerator(t)

	p := profile.UserProfile{
		ExperienceLevel: profile.Senior,
		Domains:         []string{"backend"},
		ConfidenceLevel: 4,
	}
	analytics := profile.AnalyticsSnapshot{
		TotalSessions:     10,
		AverageScore:      72,
		SkillBreakdown:    profile.SkillBreakdown{Technical: 5, Communication: 8, Confidence: 9, Clarity: 7},
		ScoreTrend:        profile.Improving,
		RecentPerformance: []int{60, 70, 80},
	}

	out := g.Generate(p, analytics)

	assert.Equal(t, profile.SkillTechnical, out.PrimaryFocus.Skill)
	assert.Equal(t, difficulty.Hard, out.SuggestedDifficulty)
	assert.True(t, out.Difficulty.ChallengeMode)
	assert.Equal(t, keywords.RoleBackend, out.SuggestedRole)
	assert.Equal(t, keywords.TypeTechnical, out.SuggestedType)

	for _, r := range out.RecommendedResources[:1] {
		assert.Equal(t, catalog.Advanced, r.Difficulty)
	}

	assert.Equal(t, profile.SkillConfidence, out.ProgressInsights.StrongestSkill)
	assert.InDelta(t, 70.0, out.ProgressInsights.RecentAverage, 1e-9)
	assert.Len(t, out.ProgressInsights.Messages, 3)
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := newTestGenerator(t)

	p := profile.UserProfile{
		ExperienceLevel: profile.Fresher,
		Domains:         []string{"data-science", "devops", "mobile"},
		ConfidenceLevel: 2,
		WeakAreas:       []string{"clarity", "technical"},
	}
	analytics := profile.AnalyticsSnapshot{
		TotalSessions:     4,
		AverageScore:      48,
		SkillBreakdown:    profile.SkillBreakdown{Technical: 4, Communication: 5, Confidence: 4, Clarity: 4},
		ScoreTrend:        profile.Declining,
		RecentPerformance: []int{55, 50, 45, 42},
	}

	first := g.Generate(p, analytics)
	second := g.Generate(p, analytics)

	assert.Equal(t, first.PrimaryFocus, second.PrimaryFocus)
	assert.Equal(t, first.SuggestedDifficulty, second.SuggestedDifficulty)
	assert.Equal(t, first.RecommendedResources, second.RecommendedResources)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestNewGenerator(t *testing.T) {
	g, err := NewGenerator(nil, priority.DefaultConfig(), nil)
	require.NoError(t, err)
	assert.NotNil(t, g.catalog)
	assert.NotNil(t, g.logger)

	bad := priority.DefaultConfig()
	bad.Resource.FocusSkill = 2
	_, err = NewGenerator(nil, bad, nil)
	assert.Error(t, err)
}

func TestPickResourcesPrefersTargetDifficulty(t *testing.T) {
	ranked := []priority.ScoredCategory{
		{
			Category: catalog.Category{ID: "a", Resources: []catalog.Resource{
				{ID: "a1", Difficulty: catalog.Beginner},
				{ID: "a2", Difficulty: catalog.Advanced},
				{ID: "a3", Difficulty: catalog.Beginner},
			}},
			Score: 50,
		},
		{
			Category: catalog.Category{ID: "b", Resources: []catalog.Resource{
				{ID: "b1", Difficulty: catalog.Advanced},
			}},
			Score: 10,
		},
	}

	picked := pickResources(ranked, catalog.Advanced)
	ids := make([]string, 0, len(picked))
	for _, r := range picked {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"a2", "a1", "a3", "b1"}, ids)
}
