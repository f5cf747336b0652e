// Package recommend combines deficits, difficulty, domain mapping and the catalog into one recommendation.
package recommend

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nikogura/interview-coach/pkg/catalog"
	"github.com/nikogura/interview-coach/pkg/difficulty"
	"github.com/nikogura/interview-coach/pkg/domains"
	"github.com/nikogura/interview-coach/pkg/learningpath"
	"github.com/nikogura/interview-coach/pkg/priority"
	"github.com/nikogura/interview-coach/pkg/profile"
)

// MaxResources caps the recommended resource list.
const MaxResources = 6

// NeutralAverageScore stands in for the average score of a user with no sessions.
const NeutralAverageScore = 50.0

// PrimaryFocus is the skill to work on first.
type PrimaryFocus struct {
	Skill    profile.Skill `json:"skill"`
	Label    string        `json:"label"`
	Severity string        `json:"severity"`
	Deficit  float64       `json:"deficit"`
}

// RecommendedResource is a catalog resource picked for the user.
type RecommendedResource struct {
	catalog.Resource
	CategoryID    string  `json:"category_id"`
	CategoryScore float64 `json:"category_score"`
}

// ProgressInsights summarizes where the user stands.
type ProgressInsights struct {
	TotalSessions  int           `json:"total_sessions"`
	AverageScore   float64       `json:"average_score"`
	RecentAverage  float64       `json:"recent_average"`
	Trend          profile.Trend `json:"trend"`
	StrongestSkill profile.Skill `json:"strongest_skill,omitempty"`
	Messages       []string      `json:"messages"`
}

// Output is the full recommendation.
type Output struct {
	PrimaryFocus         PrimaryFocus              `json:"primary_focus"`
	Deficits             profile.SkillBreakdown    `json:"deficits"`
	SuggestedDifficulty  difficulty.Level          `json:"suggested_difficulty"`
	Difficulty           difficulty.Recommendation `json:"difficulty"`
	SuggestedRole        string                    `json:"suggested_role"`
	SuggestedType        string                    `json:"suggested_type"`
	Session              domains.SessionConfig     `json:"session"`
	DomainMapping        domains.Mapping           `json:"domain_mapping"`
	UrgencyLevel         string                    `json:"urgency_level"`
	UrgencyScore         float64                   `json:"urgency_score"`
	RecommendedResources []RecommendedResource     `json:"recommended_resources"`
	LearningPath         learningpath.Path         `json:"learning_path"`
	ProgressInsights     ProgressInsights          `json:"progress_insights"`
}

// Generator produces recommendations from an injected catalog.
type Generator struct {
	catalog *catalog.Catalog
	config  priority.Config
	logger  *zap.Logger
}

// NewGenerator creates a generator. A nil catalog uses the built-in one and a nil logger discards output.
func NewGenerator(c *catalog.Catalog, config priority.Config, logger *zap.Logger) (g *Generator, err error) {
	err = config.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid priority weights")
		return g, err
	}

	if c == nil {
		c = catalog.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g = &Generator{
		catalog: c,
		config:  config,
		logger:  logger,
	}

	return g, err
}

// Generate builds a recommendation. It reads nothing but its arguments and the generator's catalog, so
// identical inputs give identical output.
func (g *Generator) Generate(p profile.UserProfile, analytics profile.AnalyticsSnapshot) (out Output) {
	trend := analytics.ScoreTrend
	if trend == "" {
		trend = profile.Stable
	}

	deficits := priority.Deficits(p, analytics)
	skill, deficit := priority.HighestDeficit(deficits)

	out.Deficits = deficits
	out.PrimaryFocus = PrimaryFocus{
		Skill:    skill,
		Label:    cases.Title(language.English).String(string(skill)),
		Severity: priority.Severity(deficit),
		Deficit:  deficit,
	}

	average := NeutralAverageScore
	if analytics.TotalSessions > 0 {
		average = analytics.AverageScore
	}
	out.Difficulty = difficulty.Calculate(difficulty.Input{
		ExperienceLevel:   p.ExperienceLevel,
		AverageScore:      average,
		ConfidenceLevel:   p.ConfidenceLevel,
		SessionsCompleted: analytics.TotalSessions,
		Trend:             trend,
	})
	out.SuggestedDifficulty = out.Difficulty.SuggestedDifficulty

	out.DomainMapping = domains.MapDomainsToQuestions(p.Domains)
	out.Session = domains.RecommendSessionConfig(p.Domains, string(skill))
	out.SuggestedRole = out.Session.Role
	out.SuggestedType = out.Session.Type

	out.UrgencyScore, out.UrgencyLevel = priority.Urgency(p, deficits, g.config)

	target := catalog.ResourceDifficulty(string(out.SuggestedDifficulty))
	ranked := priority.RankCategories(g.catalog.Categories, priority.CategoryContext{
		FocusSkill:       skill,
		Domains:          p.Domains,
		WeakAreas:        p.WeakAreas,
		TargetDifficulty: target,
		Trend:            trend,
	}, g.config.Resource)
	out.RecommendedResources = pickResources(ranked, target)

	out.LearningPath = learningpath.Generate(string(skill), g.catalog.ResourcesForSkill(skill), p.ExperienceLevel)
	out.ProgressInsights = insights(analytics, trend, deficits)

	g.logger.Debug("generated recommendation",
		zap.String("focus", string(skill)),
		zap.Float64("deficit", deficit),
		zap.String("difficulty", string(out.SuggestedDifficulty)),
		zap.String("urgency", out.UrgencyLevel),
		zap.Int("resources", len(out.RecommendedResources)),
	)

	return out
}

// pickResources walks the ranked categories and takes resources until MaxResources, putting
// target-difficulty resources of a category ahead of the rest.
func pickResources(ranked []priority.ScoredCategory, target string) (picked []RecommendedResource) {
	picked = []RecommendedResource{}
	for _, sc := range ranked {
		ordered := make([]catalog.Resource, 0, len(sc.Category.Resources))
		for _, r := range sc.Category.Resources {
			if r.Difficulty == target {
				ordered = append(ordered, r)
			}
		}
		for _, r := range sc.Category.Resources {
			if r.Difficulty != target {
				ordered = append(ordered, r)
			}
		}

		for _, r := range ordered {
			if len(picked) == MaxResources {
				return picked
			}
			picked = append(picked, RecommendedResource{Resource: r, CategoryID: sc.Category.ID, CategoryScore: sc.Score})
		}
	}
	return picked
}

func insights(analytics profile.AnalyticsSnapshot, trend profile.Trend, deficits profile.SkillBreakdown) (in ProgressInsights) {
	in = ProgressInsights{
		TotalSessions: analytics.TotalSessions,
		AverageScore:  analytics.AverageScore,
		Trend:         trend,
		Messages:      []string{},
	}

	if analytics.TotalSessions == 0 {
		in.Messages = append(in.Messages, "Complete your first practice session to unlock personalized insights.")
		return in
	}

	if n := len(analytics.RecentPerformance); n > 0 {
		sum := 0
		for _, s := range analytics.RecentPerformance {
			sum += s
		}
		in.RecentAverage = float64(sum) / float64(n)
	}

	lowest := -1.0
	for _, s := range profile.Skills() {
		if d := deficits.Get(s); lowest < 0 || d < lowest {
			lowest = d
			in.StrongestSkill = s
		}
	}

	switch trend {
	case profile.Improving:
		in.Messages = append(in.Messages, "Your scores are improving. Keep the momentum going.")
	case profile.Declining:
		in.Messages = append(in.Messages, "Your recent scores dipped. Revisit the fundamentals before pushing harder.")
	default:
		in.Messages = append(in.Messages, "Your scores are steady. Try a harder question to find your next level.")
	}

	in.Messages = append(in.Messages,
		fmt.Sprintf("%d sessions completed with an average score of %.1f.", analytics.TotalSessions, analytics.AverageScore),
		fmt.Sprintf("Your strongest skill is %s.", in.StrongestSkill),
	)

	return in
}
