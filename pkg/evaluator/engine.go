// Package evaluator scores a free-text interview answer without calling any model.
package evaluator

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/nikogura/interview-coach/pkg/keywords"
	"github.com/nikogura/interview-coach/pkg/scorer"
)

// Metadata tags.
const (
	Method           = "algorithmic"
	Version          = "2.0.0"
	FeedbackTemplate = "template"
	FeedbackExternal = "external"
)

// DefaultType is assumed when the context carries no interview type.
const DefaultType = keywords.TypeTechnical

// Context describes the interview a question belongs to.
type Context struct {
	Role       string `json:"role"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty,omitempty"`
}

// Metadata describes how a Result was produced.
type Metadata struct {
	WordCount       int              `json:"word_count"`
	KeywordsMatched int              `json:"keywords_matched"`
	Method          string           `json:"method"`
	Version         string           `json:"version"`
	KeywordsVersion string           `json:"keywords_version,omitempty"`
	FeedbackSource  string           `json:"feedback_source"`
	RawScores       scorer.RawScores `json:"raw_scores"`
}

// Result is the evaluation of one answer.
type Result struct {
	OverallScore int              `json:"overall_score"`
	Breakdown    scorer.Breakdown `json:"breakdown"`
	Strengths    []string         `json:"strengths"`
	Improvements []string         `json:"improvements"`
	Feedback     string           `json:"feedback"`
	Metadata     Metadata         `json:"metadata"`
}

// Engine evaluates answers against an injected keyword library and weights.
type Engine struct {
	library *keywords.Library
	weights scorer.Weights
	scorer  *scorer.Scorer
	logger  *zap.Logger
}

// NewEngine creates an engine. A nil library means the built-in one; a nil logger discards output.
func NewEngine(library *keywords.Library, weights scorer.Weights, logger *zap.Logger) (engine *Engine, err error) {
	err = weights.Validate()
	if err != nil {
		err = errors.Wrap(err, "invalid evaluation weights")
		return engine, err
	}

	if library == nil {
		library = keywords.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	engine = &Engine{
		library: library,
		weights: weights,
		scorer:  scorer.NewScorer(),
		logger:  logger,
	}

	return engine, err
}

// EvaluateAnswer evaluates with the built-in keyword library and default weights.
func EvaluateAnswer(question, answer string, ctx Context) (result Result) {
	engine := &Engine{
		library: keywords.Default(),
		weights: scorer.DefaultWeights(),
		scorer:  scorer.NewScorer(),
		logger:  zap.NewNop(),
	}
	result = engine.Evaluate(question, answer, ctx)
	return result
}

// Evaluate scores an answer. It never fails: empty text degrades to low scores.
func (e *Engine) Evaluate(question, answer string, ctx Context) (result Result) {
	interviewType := strings.ToLower(strings.TrimSpace(ctx.Type))
	if interviewType == "" {
		interviewType = DefaultType
	}

	kws := e.library.Relevant(ctx.Role, interviewType)

	raw, analysis := e.scorer.Score(question, answer, kws)
	breakdown := scorer.Normalize(raw)
	overall := scorer.NormalizeOverall(breakdown, e.weights)

	result = Result{
		OverallScore: overall,
		Breakdown:    breakdown,
		Strengths:    deriveStrengths(raw),
		Improvements: deriveImprovements(raw),
		Feedback:     buildFeedback(overall, raw, interviewType),
		Metadata: Metadata{
			WordCount:       analysis.WordCount,
			KeywordsMatched: scorer.CountKeywordMatches(analysis, kws),
			Method:          Method,
			Version:         Version,
			KeywordsVersion: e.library.Version,
			FeedbackSource:  FeedbackTemplate,
			RawScores:       raw,
		},
	}

	e.logger.Debug("answer evaluated",
		zap.String("role", ctx.Role),
		zap.String("type", interviewType),
		zap.Int("overall", overall),
		zap.Any("raw", raw),
	)

	return result
}

// WithFeedback returns a copy of result whose feedback text is replaced by an externally generated one.
// Scores are untouched; blank feedback leaves the result as it was.
func WithFeedback(result Result, feedback string) (updated Result) {
	updated = result
	updated.Strengths = append([]string(nil), result.Strengths...)
	updated.Improvements = append([]string(nil), result.Improvements...)

	feedback = strings.TrimSpace(feedback)
	if feedback == "" {
		return updated
	}

	updated.Feedback = feedback
	updated.Metadata.FeedbackSource = FeedbackExternal
	return updated
}

func deriveStrengths(raw scorer.RawScores) (strengths []string) {
	strengths = []string{}

	for _, rule := range DimensionRules {
		if raw.Get(rule.Dimension) >= StrengthThreshold {
			strengths = append(strengths, rule.Strength)
		}
	}

	if len(strengths) > 0 {
		return strengths
	}

	best := DimensionRules[0]
	for _, rule := range DimensionRules[1:] {
		if raw.Get(rule.Dimension) > raw.Get(best.Dimension) {
			best = rule
		}
	}
	strengths = append(strengths, best.WeakStrength)

	return strengths
}

func deriveImprovements(raw scorer.RawScores) (improvements []string) {
	improvements = []string{}

	for _, rule := range DimensionRules {
		if raw.Get(rule.Dimension) < ImprovementThreshold {
			improvements = append(improvements, rule.Improvement)
		}
	}

	if len(improvements) < MinImprovements {
		lowest := DimensionRules[0]
		for _, rule := range DimensionRules[1:] {
			if raw.Get(rule.Dimension) < raw.Get(lowest.Dimension) {
				lowest = rule
			}
		}
		if !containsString(improvements, lowest.Improvement) {
			improvements = append(improvements, lowest.Improvement)
		}
	}

	if len(improvements) < MinImprovements {
		improvements = append(improvements, GenericImprovement)
	}

	if len(improvements) > MaxImprovements {
		improvements = improvements[:MaxImprovements]
	}

	return improvements
}

func buildFeedback(overall int, raw scorer.RawScores, interviewType string) (feedback string) {
	parts := []string{}

	for _, band := range FeedbackBands {
		if overall >= band.MinScore {
			parts = append(parts, band.Template)
			break
		}
	}

	for _, clause := range FeedbackClauses {
		if clause.applies(raw, interviewType) {
			parts = append(parts, clause.Text)
		}
	}

	feedback = strings.Join(parts, " ")
	return feedback
}

func containsString(slice []string, item string) (found bool) {
	for _, s := range slice {
		if s == item {
			found = true
			return found
		}
	}
	return found
}
