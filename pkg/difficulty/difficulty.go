// Package difficulty turns a profile and recent performance into a difficulty recommendation.
package difficulty

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/nikogura/interview-coach/pkg/profile"
)

// Level is a question difficulty.
type Level string

// Difficulty levels, easiest first.
const (
	Easy   Level = "easy"
	Medium Level = "medium"
	Hard   Level = "hard"
)

//nolint:gochecknoglobals // Ordered level table
var levels = []Level{Easy, Medium, Hard}

// Composite thresholds and adjustments.
const (
	EasyBelow        = 35.0
	MediumBelow      = 65.0
	StudentCap       = 50.0
	ImprovingBonus   = 10.0
	DecliningPenalty = 15.0
	MaxSessionPoints = 20.0
)

// Override thresholds.
const (
	BoostMaxConfidence     = 2
	BoostMaxAverage        = 30.0
	ChallengeMinConfidence = 4
	ChallengeMinAverage    = 70.0
)

// Progression thresholds on a session success rate.
const (
	AdvanceAt  = 0.75
	StepDownAt = 0.4
)

//nolint:gochecknoglobals // Scoring configuration constants
var experienceScores = map[profile.ExperienceLevel]float64{
	profile.Student: 10,
	profile.Fresher: 25,
	profile.Junior:  50,
	profile.Senior:  75,
}

// Weights are the contributions to the composite score.
type Weights struct {
	Experience float64 `json:"experience"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	Sessions   float64 `json:"sessions"`
}

// DefaultWeights returns the 0.4/0.3/0.2/0.1 split.
func DefaultWeights() (weights Weights) {
	weights = Weights{Experience: 0.4, Score: 0.3, Confidence: 0.2, Sessions: 0.1}
	return weights
}

// Sum adds the weights.
func (w Weights) Sum() (sum float64) {
	sum = w.Experience + w.Score + w.Confidence + w.Sessions
	return sum
}

// Validate checks the weights are non-negative and sum to 1.
func (w Weights) Validate() (err error) {
	if w.Experience < 0 || w.Score < 0 || w.Confidence < 0 || w.Sessions < 0 {
		err = errors.New("difficulty weights must be non-negative")
		return err
	}
	if math.Abs(w.Sum()-1.0) > 1e-6 {
		err = errors.Errorf("difficulty weights must sum to 1.0, got %.6f", w.Sum())
		return err
	}
	return err
}

// Input is what the calculator needs to know about a user.
type Input struct {
	ExperienceLevel   profile.ExperienceLevel `json:"experience_level"`
	AverageScore      float64                 `json:"average_score"`
	ConfidenceLevel   int                     `json:"confidence_level"`
	SessionsCompleted int                     `json:"sessions_completed"`
	Trend             profile.Trend           `json:"trend"`
}

// Recommendation is the calculator's output.
type Recommendation struct {
	SuggestedDifficulty Level   `json:"suggested_difficulty"`
	ConfidenceBoost     bool    `json:"confidence_boost"`
	ChallengeMode       bool    `json:"challenge_mode"`
	CompositeScore      float64 `json:"composite_score"`
	Explanation         string  `json:"explanation"`
}

// Calculate recommends a difficulty with the default weights.
func Calculate(input Input) (rec Recommendation) {
	rec = CalculateWithWeights(input, DefaultWeights())
	return rec
}

// CalculateWithWeights recommends a difficulty. Overrides are checked before the composite mapping,
// and a student is never moved to hard.
func CalculateWithWeights(input Input, weights Weights) (rec Recommendation) {
	composite := Composite(input, weights)
	rec.CompositeScore = composite

	isStudent := input.ExperienceLevel == profile.Student

	switch {
	case input.ConfidenceLevel <= BoostMaxConfidence || input.AverageScore < BoostMaxAverage:
		rec.SuggestedDifficulty = Easy
		rec.ConfidenceBoost = true
		rec.Explanation = "Starting with easier questions to build confidence before raising the bar."
	case isStudent && composite > StudentCap:
		rec.SuggestedDifficulty = Medium
		rec.Explanation = "Strong progress for a student; medium questions keep the challenge realistic."
	case input.ConfidenceLevel >= ChallengeMinConfidence && input.AverageScore > ChallengeMinAverage &&
		input.Trend == profile.Improving && !isStudent:
		rec.SuggestedDifficulty = Hard
		rec.ChallengeMode = true
		rec.Explanation = "High scores, high confidence and an improving trend: challenge mode unlocked."
	case composite < EasyBelow:
		rec.SuggestedDifficulty = Easy
		rec.Explanation = fmt.Sprintf("Composite readiness %.1f suggests consolidating fundamentals first.", composite)
	case composite < MediumBelow:
		rec.SuggestedDifficulty = Medium
		rec.Explanation = fmt.Sprintf("Composite readiness %.1f fits medium difficulty.", composite)
	case isStudent:
		rec.SuggestedDifficulty = Medium
		rec.Explanation = fmt.Sprintf("Composite readiness %.1f is high, but students are capped at medium.", composite)
	default:
		rec.SuggestedDifficulty = Hard
		rec.Explanation = fmt.Sprintf("Composite readiness %.1f supports hard questions.", composite)
	}

	return rec
}

// Composite is the weighted readiness score including the trend adjustment.
func Composite(input Input, weights Weights) (composite float64) {
	confidencePoints := float64(input.ConfidenceLevel-1) * 25
	sessionPoints := math.Min(float64(input.SessionsCompleted)*2, MaxSessionPoints)

	composite = experienceScores[input.ExperienceLevel]*weights.Experience +
		input.AverageScore*weights.Score +
		confidencePoints*weights.Confidence +
		sessionPoints*weights.Sessions

	switch input.Trend {
	case profile.Improving:
		composite += ImprovingBonus
	case profile.Declining:
		composite -= DecliningPenalty
	}

	return composite
}

// NextProgression moves one level up at a success rate of AdvanceAt or more, one level down below
// StepDownAt, and holds otherwise. Unknown levels are treated as medium.
func NextProgression(current Level, successRate float64) (next Level) {
	idx := 1
	for i, level := range levels {
		if level == current {
			idx = i
			break
		}
	}

	switch {
	case successRate >= AdvanceAt && idx < len(levels)-1:
		idx++
	case successRate < StepDownAt && idx > 0:
		idx--
	}

	next = levels[idx]
	return next
}

// Valid reports whether l is a known level.
func (l Level) Valid() (ok bool) {
	for _, level := range levels {
		if level == l {
			ok = true
			return ok
		}
	}
	return ok
}
