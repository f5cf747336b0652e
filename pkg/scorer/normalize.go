package scorer

import (
	"math"

	"github.com/pkg/errors"
)

// WeightTolerance is the allowed drift of a weight sum from 1.0.
const WeightTolerance = 1e-6

// Weights are the per-dimension contributions to the overall score.
type Weights struct {
	Relevance  float64 `json:"relevance" mapstructure:"relevance"`
	Clarity    float64 `json:"clarity" mapstructure:"clarity"`
	Technical  float64 `json:"technical" mapstructure:"technical"`
	Confidence float64 `json:"confidence" mapstructure:"confidence"`
	Structure  float64 `json:"structure" mapstructure:"structure"`
}

// DefaultWeights returns the standard 0.30/0.20/0.25/0.15/0.10 split.
func DefaultWeights() (weights Weights) {
	weights = Weights{
		Relevance:  0.30,
		Clarity:    0.20,
		Technical:  0.25,
		Confidence: 0.15,
		Structure:  0.10,
	}
	return weights
}

// Sum adds the five weights.
func (w Weights) Sum() (sum float64) {
	sum = w.Relevance + w.Clarity + w.Technical + w.Confidence + w.Structure
	return sum
}

// Validate checks that no weight is negative and that they sum to 1.
func (w Weights) Validate() (err error) {
	for _, v := range []float64{w.Relevance, w.Clarity, w.Technical, w.Confidence, w.Structure} {
		if v < 0 {
			err = errors.Errorf("weights must be non-negative, got %v", v)
			return err
		}
	}

	if math.Abs(w.Sum()-1.0) > WeightTolerance {
		err = errors.Errorf("weights must sum to 1.0, got %.6f", w.Sum())
		return err
	}

	return err
}

// NormalizeSubscore maps a raw 0-100 score to the 0-10 subscore scale.
func NormalizeSubscore(raw int) (subscore int) {
	subscore = int(math.Round(float64(raw) / 10))
	if subscore < 0 {
		subscore = 0
	}
	if subscore > 10 {
		subscore = 10
	}
	return subscore
}

// Normalize converts raw scores into a Breakdown.
func Normalize(raw RawScores) (breakdown Breakdown) {
	breakdown = Breakdown{
		Relevance:  NormalizeSubscore(raw.Relevance),
		Clarity:    NormalizeSubscore(raw.Clarity),
		Technical:  NormalizeSubscore(raw.Technical),
		Confidence: NormalizeSubscore(raw.Confidence),
		Structure:  NormalizeSubscore(raw.Structure),
	}
	return breakdown
}

// NormalizeOverall is the weighted 0-100 overall score of a Breakdown.
func NormalizeOverall(breakdown Breakdown, weights Weights) (overall int) {
	weighted := float64(breakdown.Relevance)*weights.Relevance +
		float64(breakdown.Clarity)*weights.Clarity +
		float64(breakdown.Technical)*weights.Technical +
		float64(breakdown.Confidence)*weights.Confidence +
		float64(breakdown.Structure)*weights.Structure

	overall = int(math.Round(weighted * 10))
	overall = clamp(overall)
	return overall
}

// MigrateSubscore is the legacy ingestion shim for stored subscores: values up to 10 are already on the
// subscore scale and pass through, larger values are treated as raw 0-100 scores and normalized.
// Only call it for records known to predate normalized storage; a raw score of 10 or less is
// indistinguishable from a subscore.
func MigrateSubscore(value int) (subscore int) {
	if value <= 10 {
		subscore = value
		if subscore < 0 {
			subscore = 0
		}
		return subscore
	}
	subscore = NormalizeSubscore(value)
	return subscore
}
