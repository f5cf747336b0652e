package profile

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Input is the on-disk shape handed over by the product: a profile plus an optional snapshot.
type Input struct {
	Profile   UserProfile       `json:"profile"`
	Analytics AnalyticsSnapshot `json:"analytics"`
}

// Load reads profile input from a JSON file and validates it.
func Load(path string) (input Input, err error) {
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read profile file: %s", path)
		return input, err
	}

	err = json.Unmarshal(fileData, &input)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse profile JSON: %s", path)
		return input, err
	}

	err = input.Profile.Validate()
	if err != nil {
		err = errors.Wrap(err, "profile validation failed")
		return input, err
	}

	err = input.Analytics.Validate()
	if err != nil {
		err = errors.Wrap(err, "analytics validation failed")
		return input, err
	}

	return input, err
}

// Validate checks enum values and ranges. The scoring packages assume a validated profile.
func (p *UserProfile) Validate() (err error) {
	switch p.ExperienceLevel {
	case Student, Fresher, Junior, Senior:
	default:
		err = errors.Errorf("unknown experience level: %q", p.ExperienceLevel)
		return err
	}

	if p.ConfidenceLevel < 1 || p.ConfidenceLevel > 5 {
		err = errors.Errorf("confidence level must be between 1 and 5, got %d", p.ConfidenceLevel)
		return err
	}

	if len(p.Domains) > MaxDomains {
		err = errors.Errorf("at most %d domains allowed, got %d", MaxDomains, len(p.Domains))
		return err
	}

	if len(p.InterviewGoals) > MaxGoals {
		err = errors.Errorf("at most %d interview goals allowed, got %d", MaxGoals, len(p.InterviewGoals))
		return err
	}

	return err
}

// Validate checks snapshot ranges. A zero snapshot is valid and means "no sessions yet".
func (a *AnalyticsSnapshot) Validate() (err error) {
	if a.TotalSessions < 0 {
		err = errors.Errorf("total sessions cannot be negative, got %d", a.TotalSessions)
		return err
	}

	if a.AverageScore < 0 || a.AverageScore > 100 {
		err = errors.Errorf("average score must be between 0 and 100, got %v", a.AverageScore)
		return err
	}

	for _, skill := range Skills() {
		v := a.SkillBreakdown.Get(skill)
		if v < 0 || v > 10 {
			err = errors.Errorf("%s score must be between 0 and 10, got %v", skill, v)
			return err
		}
	}

	switch a.ScoreTrend {
	case Improving, Declining, Stable:
	case "":
		a.ScoreTrend = Stable
	default:
		err = errors.Errorf("unknown score trend: %q", a.ScoreTrend)
		return err
	}

	for i, score := range a.RecentPerformance {
		if score < 0 || score > 100 {
			err = errors.Errorf("recent score at index %d out of range: %d", i, score)
			return err
		}
	}

	return err
}

func containsFold(slice []string, item string) (found bool) {
	for _, s := range slice {
		if strings.EqualFold(strings.TrimSpace(s), item) {
			found = true
			return found
		}
	}
	return found
}
