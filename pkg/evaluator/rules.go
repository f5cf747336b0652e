package evaluator

import (
	"github.com/nikogura/interview-coach/pkg/keywords"
	"github.com/nikogura/interview-coach/pkg/scorer"
)

// Thresholds on raw 0-100 scores.
const (
	StrengthThreshold    = 75
	ImprovementThreshold = 60
	MinImprovements      = 2
	MaxImprovements      = 3
)

// GenericImprovement pads the improvement list when fewer than MinImprovements apply.
const GenericImprovement = "Practice answering with concrete, real-world examples from your own projects."

// DimensionRule holds the canned sentences for one dimension.
type DimensionRule struct {
	Dimension    scorer.Dimension
	Strength     string // raw score at or above StrengthThreshold
	WeakStrength string // fallback when no dimension qualifies as a strength
	Improvement  string // raw score below ImprovementThreshold
}

// DimensionRules is evaluated in order. Ties in fallback selection go to the earlier rule.
//
//nolint:gochecknoglobals // Scoring configuration constants
var DimensionRules = []DimensionRule{
	{
		Dimension:    scorer.DimensionRelevance,
		Strength:     "Your answer stays focused on the question that was asked.",
		WeakStrength: "Your answer connects to the question, which is a good foundation to build on.",
		Improvement:  "Address the question more directly and reuse its key terms in your answer.",
	},
	{
		Dimension:    scorer.DimensionClarity,
		Strength:     "Your explanation is clear and well paced.",
		WeakStrength: "Your answer is reasonably easy to follow.",
		Improvement:  "Aim for clearer sentences of moderate length and a complete but concise answer.",
	},
	{
		Dimension:    scorer.DimensionTechnical,
		Strength:     "You demonstrate strong technical depth with relevant terminology.",
		WeakStrength: "You show some familiarity with the relevant technical concepts.",
		Improvement:  "Add more technical depth: mention specific technologies, concepts, and trade-offs.",
	},
	{
		Dimension:    scorer.DimensionConfidence,
		Strength:     "You communicate with confidence and ownership.",
		WeakStrength: "Your tone is fairly steady.",
		Improvement:  `Use more assertive language and avoid hedging phrases like "I think" or "maybe".`,
	},
	{
		Dimension:    scorer.DimensionStructure,
		Strength:     "Your answer is well structured and easy to follow from start to finish.",
		WeakStrength: "Your answer has some logical flow.",
		Improvement:  "Organize your answer with a clear sequence, such as the STAR method.",
	},
}

// FeedbackBand is an overall-score band and its opening sentence.
type FeedbackBand struct {
	Name     string
	MinScore int
	Template string
}

// FeedbackBands are checked from the highest MinScore down.
//
//nolint:gochecknoglobals // Scoring configuration constants
var FeedbackBands = []FeedbackBand{
	{Name: "excellent", MinScore: 80, Template: "Excellent answer. You addressed the question directly and backed it up with solid detail."},
	{Name: "good", MinScore: 65, Template: "Good answer. The core of your response is solid, with a few areas to sharpen."},
	{Name: "decent", MinScore: 50, Template: "Decent start. You touched on the right ideas, but the answer needs more depth and polish."},
	{Name: "needs development", MinScore: 0, Template: "This answer needs development. Focus on addressing the question directly with specific examples."},
}

// FeedbackClause appends a sentence when its dimension and interview type conditions hold.
type FeedbackClause struct {
	Dimension scorer.Dimension
	Below     int      // clause applies when the raw score is below this; 0 disables the check
	AtLeast   int      // clause applies when the raw score is at least this; 0 disables the check
	Types     []string // empty means any interview type
	Text      string
}

// FeedbackClauses are appended in order.
//
//nolint:gochecknoglobals // Scoring configuration constants
var FeedbackClauses = []FeedbackClause{
	{
		Dimension: scorer.DimensionRelevance,
		Below:     ImprovementThreshold,
		Text:      "Tie your answer more directly to what the question asks.",
	},
	{
		Dimension: scorer.DimensionTechnical,
		Below:     ImprovementThreshold,
		Types:     []string{keywords.TypeTechnical, keywords.TypeSystemDesign},
		Text:      "Go deeper on the technical details: name the specific tools, concepts, and trade-offs involved.",
	},
	{
		Dimension: scorer.DimensionStructure,
		Below:     ImprovementThreshold,
		Types:     []string{keywords.TypeBehavioral},
		Text:      "Use the STAR method (Situation, Task, Action, Result) to structure your story.",
	},
	{
		Dimension: scorer.DimensionConfidence,
		Below:     ImprovementThreshold,
		Text:      "Describe what you personally did using assertive, first-person language.",
	},
	{
		Dimension: scorer.DimensionClarity,
		Below:     ImprovementThreshold,
		Text:      "Keep sentences focused; 10 to 20 words per sentence is easier to follow.",
	},
	{
		Dimension: scorer.DimensionTechnical,
		AtLeast:   StrengthThreshold,
		Types:     []string{keywords.TypeTechnical},
		Text:      "Your command of the technical vocabulary stands out.",
	},
}

func (c FeedbackClause) applies(raw scorer.RawScores, interviewType string) (ok bool) {
	score := raw.Get(c.Dimension)
	if c.Below > 0 && score >= c.Below {
		return ok
	}
	if c.AtLeast > 0 && score < c.AtLeast {
		return ok
	}
	if len(c.Types) > 0 {
		matched := false
		for _, t := range c.Types {
			if t == interviewType {
				matched = true
				break
			}
		}
		if !matched {
			return ok
		}
	}
	ok = true
	return ok
}
