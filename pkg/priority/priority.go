// Package priority computes skill deficits, ranks resource categories and scores urgency.
package priority

import (
	"math"
	"sort"
	"strings"

	"github.com/nikogura/interview-coach/pkg/catalog"
	"github.com/nikogura/interview-coach/pkg/domains"
	"github.com/nikogura/interview-coach/pkg/keywords"
	"github.com/nikogura/interview-coach/pkg/profile"
)

// MaxSkillScore is the top of the 0-10 skill scale.
const MaxSkillScore = 10.0

// Baseline deficit adjustments used when a user has no sessions yet.
const (
	BaselineConfidencePivot = 6
	CommunicationGoalBonus  = 2.0
	ConfidenceBaselineBonus = 1.0
	WeakAreaBaselineBonus   = 1.0
)

// Urgency levels.
const (
	UrgencyCritical = "critical"
	UrgencyHigh     = "high"
	UrgencyMedium   = "medium"
	UrgencyLow      = "low"
)

// Severity levels for the primary focus.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Urgency formula constants.
const (
	WeakAreaBoostPer      = 25.0
	MaxUrgency            = 100.0
	LowConfidenceAt       = 2
	HighConfidenceAt      = 4
	LowConfidenceFactor   = 1.3
	HighConfidenceFactor  = 0.8
	CriticalAt            = 70.0
	HighAt                = 50.0
	MediumAt              = 25.0
	HighSeverityDeficit   = 6.0
	MediumSeverityDeficit = 3.0
)

//nolint:gochecknoglobals // Scoring configuration constants
var technicalBaseline = map[profile.ExperienceLevel]float64{
	profile.Student: 2,
	profile.Fresher: 1,
	profile.Junior:  0,
	profile.Senior:  -1,
}

//nolint:gochecknoglobals // Scoring configuration constants
var experienceBias = map[profile.ExperienceLevel]float64{
	profile.Student: 80,
	profile.Fresher: 60,
	profile.Junior:  40,
	profile.Senior:  20,
}

// Deficits returns 10 minus each measured skill score. Without sessions it derives a baseline from the
// self-reported confidence, experience, goals and weak areas.
func Deficits(p profile.UserProfile, analytics profile.AnalyticsSnapshot) (deficits profile.SkillBreakdown) {
	if analytics.TotalSessions > 0 {
		skills := analytics.SkillBreakdown
		deficits = profile.SkillBreakdown{
			Technical:     math.Max(0, MaxSkillScore-skills.Technical),
			Communication: math.Max(0, MaxSkillScore-skills.Communication),
			Confidence:    math.Max(0, MaxSkillScore-skills.Confidence),
			Clarity:       math.Max(0, MaxSkillScore-skills.Clarity),
		}
		return deficits
	}

	base := float64(BaselineConfidencePivot - p.ConfidenceLevel)

	deficits.Technical = base + technicalBaseline[p.ExperienceLevel]
	deficits.Communication = base
	if p.HasGoal(profile.GoalImproveCommunication) {
		deficits.Communication += CommunicationGoalBonus
	}
	deficits.Confidence = base + ConfidenceBaselineBonus
	deficits.Clarity = base

	if p.HasWeakArea(string(profile.SkillTechnical)) {
		deficits.Technical += WeakAreaBaselineBonus
	}
	if p.HasWeakArea(string(profile.SkillCommunication)) {
		deficits.Communication += WeakAreaBaselineBonus
	}
	if p.HasWeakArea(string(profile.SkillConfidence)) {
		deficits.Confidence += WeakAreaBaselineBonus
	}
	if p.HasWeakArea(string(profile.SkillClarity)) {
		deficits.Clarity += WeakAreaBaselineBonus
	}

	deficits.Technical = clamp(deficits.Technical, 0, MaxSkillScore)
	deficits.Communication = clamp(deficits.Communication, 0, MaxSkillScore)
	deficits.Confidence = clamp(deficits.Confidence, 0, MaxSkillScore)
	deficits.Clarity = clamp(deficits.Clarity, 0, MaxSkillScore)

	return deficits
}

// HighestDeficit returns the skill with the largest deficit. Ties go to the earlier skill in
// technical, communication, confidence, clarity order.
func HighestDeficit(deficits profile.SkillBreakdown) (skill profile.Skill, deficit float64) {
	deficit = -1
	for _, s := range profile.Skills() {
		if d := deficits.Get(s); d > deficit {
			skill = s
			deficit = d
		}
	}
	return skill, deficit
}

// Severity buckets a deficit.
func Severity(deficit float64) (severity string) {
	switch {
	case deficit >= HighSeverityDeficit:
		severity = SeverityHigh
	case deficit >= MediumSeverityDeficit:
		severity = SeverityMedium
	default:
		severity = SeverityLow
	}
	return severity
}

// CategoryContext is what a category is scored against.
type CategoryContext struct {
	FocusSkill       profile.Skill
	Domains          []string
	WeakAreas        []string
	TargetDifficulty string
	Trend            profile.Trend
}

// ScoredCategory is a category with its priority score.
type ScoredCategory struct {
	Category catalog.Category `json:"category"`
	Score    float64          `json:"score"`
}

// ScoreCategory scores a category from 0 to 100, plus FoundationalBonus for foundational categories on a
// declining trend.
func ScoreCategory(category catalog.Category, ctx CategoryContext, weights ResourceWeights) (score float64) {
	if category.Skill == ctx.FocusSkill {
		score += weights.FocusSkill * 100
	}

	if matchesDomain(category, ctx.Domains) {
		score += weights.Domain * 100
	}

	if len(category.Resources) > 0 {
		matching := 0
		for _, r := range category.Resources {
			if r.Difficulty == ctx.TargetDifficulty {
				matching++
			}
		}
		score += weights.Difficulty * 100 * float64(matching) / float64(len(category.Resources))
	}

	if matchesWeakArea(category, ctx.WeakAreas) {
		score += weights.WeakArea * 100
	}

	if category.Foundational && ctx.Trend == profile.Declining {
		score += FoundationalBonus
	}

	return score
}

// RankCategories scores every category and sorts by descending score. Equal scores keep catalog order.
func RankCategories(categories []catalog.Category, ctx CategoryContext, weights ResourceWeights) (ranked []ScoredCategory) {
	ranked = make([]ScoredCategory, 0, len(categories))
	for _, category := range categories {
		ranked = append(ranked, ScoredCategory{Category: category, Score: ScoreCategory(category, ctx, weights)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// Urgency scores how pressing practice is, from 0 to 100, and buckets the score.
func Urgency(p profile.UserProfile, deficits profile.SkillBreakdown, config Config) (score float64, level string) {
	skillDeficit := (config.Skills.Technical*deficits.Technical +
		config.Skills.Communication*deficits.Communication +
		config.Skills.Confidence*deficits.Confidence +
		config.Skills.Clarity*deficits.Clarity) * 10

	weakAreaBoost := math.Min(WeakAreaBoostPer*float64(len(p.WeakAreas)), MaxUrgency)

	score = config.Urgency.Deficit*skillDeficit +
		config.Urgency.WeakArea*weakAreaBoost +
		config.Urgency.Experience*experienceBias[p.ExperienceLevel]

	switch {
	case p.ConfidenceLevel <= LowConfidenceAt:
		score *= LowConfidenceFactor
	case p.ConfidenceLevel >= HighConfidenceAt:
		score *= HighConfidenceFactor
	}

	score = clamp(score, 0, MaxUrgency)
	level = UrgencyLevel(score)

	return score, level
}

// UrgencyLevel buckets an urgency score.
func UrgencyLevel(score float64) (level string) {
	switch {
	case score >= CriticalAt:
		level = UrgencyCritical
	case score >= HighAt:
		level = UrgencyHigh
	case score >= MediumAt:
		level = UrgencyMedium
	default:
		level = UrgencyLow
	}
	return level
}

func matchesDomain(category catalog.Category, userDomains []string) (match bool) {
	for _, domain := range userDomains {
		role := domains.RoleFor(domain)
		for _, d := range category.Domains {
			if strings.EqualFold(d, strings.TrimSpace(domain)) || (role != keywords.RoleGeneral && strings.EqualFold(d, role)) {
				match = true
				return match
			}
		}
	}
	return match
}

func matchesWeakArea(category catalog.Category, weakAreas []string) (match bool) {
	for _, area := range weakAreas {
		a := strings.TrimSpace(area)
		if strings.EqualFold(a, string(category.Skill)) || strings.EqualFold(a, category.ID) || strings.EqualFold(a, category.Name) {
			match = true
			return match
		}
	}
	return match
}

func clamp(v, lo, hi float64) (clamped float64) {
	clamped = math.Max(lo, math.Min(hi, v))
	return clamped
}
