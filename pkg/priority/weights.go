package priority

import (
	"math"

	"github.com/pkg/errors"
)

const weightTolerance = 1e-6

// FoundationalBonus is added on top of the weighted category score for foundational categories while the
// score trend is declining.
const FoundationalBonus = 10.0

// ResourceWeights are the fractions of the 100-point category score.
type ResourceWeights struct {
	FocusSkill float64 `json:"focus_skill"`
	Domain     float64 `json:"domain"`
	Difficulty float64 `json:"difficulty"`
	WeakArea   float64 `json:"weak_area"`
}

// DefaultResourceWeights returns the 40/25/20/15 split.
func DefaultResourceWeights() (weights ResourceWeights) {
	weights = ResourceWeights{FocusSkill: 0.40, Domain: 0.25, Difficulty: 0.20, WeakArea: 0.15}
	return weights
}

// Sum adds the weights.
func (w ResourceWeights) Sum() (sum float64) {
	sum = w.FocusSkill + w.Domain + w.Difficulty + w.WeakArea
	return sum
}

// Validate checks the weights are non-negative and sum to 1.
func (w ResourceWeights) Validate() (err error) {
	err = validate("resource", w.Sum(), w.FocusSkill, w.Domain, w.Difficulty, w.WeakArea)
	return err
}

// UrgencyWeights split the urgency score between its three inputs.
type UrgencyWeights struct {
	Deficit    float64 `json:"deficit"`
	WeakArea   float64 `json:"weak_area"`
	Experience float64 `json:"experience"`
}

// DefaultUrgencyWeights returns the 0.6/0.3/0.1 split.
func DefaultUrgencyWeights() (weights UrgencyWeights) {
	weights = UrgencyWeights{Deficit: 0.6, WeakArea: 0.3, Experience: 0.1}
	return weights
}

// Sum adds the weights.
func (w UrgencyWeights) Sum() (sum float64) {
	sum = w.Deficit + w.WeakArea + w.Experience
	return sum
}

// Validate checks the weights are non-negative and sum to 1.
func (w UrgencyWeights) Validate() (err error) {
	err = validate("urgency", w.Sum(), w.Deficit, w.WeakArea, w.Experience)
	return err
}

// SkillWeights weight each skill's deficit inside the urgency score.
type SkillWeights struct {
	Technical     float64 `json:"technical"`
	Communication float64 `json:"communication"`
	Confidence    float64 `json:"confidence"`
	Clarity       float64 `json:"clarity"`
}

// DefaultSkillWeights returns the 0.35/0.25/0.20/0.20 split.
func DefaultSkillWeights() (weights SkillWeights) {
	weights = SkillWeights{Technical: 0.35, Communication: 0.25, Confidence: 0.20, Clarity: 0.20}
	return weights
}

// Sum adds the weights.
func (w SkillWeights) Sum() (sum float64) {
	sum = w.Technical + w.Communication + w.Confidence + w.Clarity
	return sum
}

// Validate checks the weights are non-negative and sum to 1.
func (w SkillWeights) Validate() (err error) {
	err = validate("skill", w.Sum(), w.Technical, w.Communication, w.Confidence, w.Clarity)
	return err
}

// Config bundles every weight set used for prioritization.
type Config struct {
	Resource ResourceWeights `json:"resource"`
	Urgency  UrgencyWeights  `json:"urgency"`
	Skills   SkillWeights    `json:"skills"`
}

// DefaultConfig returns the default weight sets.
func DefaultConfig() (config Config) {
	config = Config{
		Resource: DefaultResourceWeights(),
		Urgency:  DefaultUrgencyWeights(),
		Skills:   DefaultSkillWeights(),
	}
	return config
}

// Validate validates every weight set.
func (c Config) Validate() (err error) {
	err = c.Resource.Validate()
	if err != nil {
		return err
	}

	err = c.Urgency.Validate()
	if err != nil {
		return err
	}

	err = c.Skills.Validate()
	return err
}

func validate(name string, sum float64, weights ...float64) (err error) {
	for _, w := range weights {
		if w < 0 {
			err = errors.Errorf("%s weights must be non-negative", name)
			return err
		}
	}

	if math.Abs(sum-1.0) > weightTolerance {
		err = errors.Errorf("%s weights must sum to 1.0, got %.6f", name, sum)
		return err
	}

	return err
}
