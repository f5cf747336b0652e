// Package scorer computes the five raw answer dimensions and normalizes them.
package scorer

import (
	"github.com/nikogura/interview-coach/pkg/textproc"
)

// Dimension names one evaluation axis.
type Dimension string

// Evaluation dimensions.
const (
	DimensionRelevance  Dimension = "relevance"
	DimensionClarity    Dimension = "clarity"
	DimensionTechnical  Dimension = "technical"
	DimensionConfidence Dimension = "confidence"
	DimensionStructure  Dimension = "structure"
)

// Dimensions returns every dimension in evaluation order. The order is the tie-break order
// wherever a single dimension has to be picked.
func Dimensions() (dims []Dimension) {
	dims = []Dimension{
		DimensionRelevance,
		DimensionClarity,
		DimensionTechnical,
		DimensionConfidence,
		DimensionStructure,
	}
	return dims
}

// RawScores holds one 0-100 raw score per dimension.
type RawScores struct {
	Relevance  int `json:"relevance"`
	Clarity    int `json:"clarity"`
	Technical  int `json:"technical"`
	Confidence int `json:"confidence"`
	Structure  int `json:"structure"`
}

// Get returns the raw score of a dimension.
func (r RawScores) Get(d Dimension) (score int) {
	switch d {
	case DimensionRelevance:
		score = r.Relevance
	case DimensionClarity:
		score = r.Clarity
	case DimensionTechnical:
		score = r.Technical
	case DimensionConfidence:
		score = r.Confidence
	case DimensionStructure:
		score = r.Structure
	}
	return score
}

// Breakdown holds one 0-10 subscore per dimension.
type Breakdown struct {
	Relevance  int `json:"relevance"`
	Clarity    int `json:"clarity"`
	Technical  int `json:"technical"`
	Confidence int `json:"confidence"`
	Structure  int `json:"structure"`
}

// Scorer runs every dimension over a single preprocessing pass.
type Scorer struct{}

// NewScorer creates a new scorer instance.
func NewScorer() (scorer *Scorer) {
	scorer = &Scorer{}
	return scorer
}

// Score analyzes question and answer once and computes all raw scores.
func (s *Scorer) Score(question, answer string, keywords []string) (raw RawScores, answerAnalysis textproc.Analysis) {
	questionAnalysis := textproc.Analyze(question)
	answerAnalysis = textproc.Analyze(answer)

	raw = RawScores{
		Relevance:  Relevance(questionAnalysis, answerAnalysis),
		Clarity:    Clarity(answerAnalysis),
		Technical:  TechnicalDepth(answerAnalysis, keywords),
		Confidence: Confidence(answerAnalysis),
		Structure:  Structure(answerAnalysis),
	}

	return raw, answerAnalysis
}
