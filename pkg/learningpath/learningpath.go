// Package learningpath builds an ordered study plan for one weak skill from catalog resources.
package learningpath

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nikogura/interview-coach/pkg/catalog"
	"github.com/nikogura/interview-coach/pkg/profile"
)

// Phases, in the order they appear in a path.
const (
	PhaseFoundation  = "foundation"
	PhasePractice    = "practice"
	PhaseApplication = "application"
	PhaseMastery     = "mastery"
)

// MaxResourcesPerStep caps how many resources a step lists.
const MaxResourcesPerStep = 2

// Hour conversions used when parsing and formatting durations.
const (
	HoursPerDay  = 8.0
	HoursPerWeek = 40.0
)

//nolint:gochecknoglobals // Duration parsing pattern
var durationPattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*([a-z]+)`)

// Step is one stage of a learning path.
type Step struct {
	ID                 string             `json:"id"`
	Phase              string             `json:"phase"`
	Title              string             `json:"title"`
	Duration           string             `json:"duration"`
	Hours              float64            `json:"hours"`
	Resources          []catalog.Resource `json:"resources"`
	CompletionCriteria []string           `json:"completion_criteria"`
	NextSteps          []string           `json:"next_steps"`
}

// Path is an ordered list of steps with a total duration.
type Path struct {
	Focus         string  `json:"focus"`
	Steps         []Step  `json:"steps"`
	TotalHours    float64 `json:"total_hours"`
	TotalDuration string  `json:"total_duration"`
}

type phase struct {
	name     string
	title    string
	criteria []string
	pick     func(r catalog.Resource) bool
}

// Generate builds a path for focus from the given resources. Foundation always comes first, mastery is
// left out for students, and a resource appears in at most one step. Phases with no resources are skipped.
func Generate(focus string, resources []catalog.Resource, level profile.ExperienceLevel) (path Path) {
	label := cases.Title(language.English).String(strings.ReplaceAll(focus, "-", " "))
	lower := strings.ToLower(label)

	phases := []phase{
		{
			name:  PhaseFoundation,
			title: label + " foundations",
			criteria: []string{
				"Complete every foundation resource",
				fmt.Sprintf("Explain the core ideas of %s in your own words", lower),
			},
			pick: func(r catalog.Resource) bool {
				return r.Difficulty == catalog.Beginner && r.Type != catalog.TypePractice
			},
		},
		{
			name:  PhasePractice,
			title: label + " practice",
			criteria: []string{
				"Finish every practice exercise",
				fmt.Sprintf("Score 6 or higher on %s in two practice answers", lower),
			},
			pick: func(r catalog.Resource) bool {
				return r.Type == catalog.TypePractice
			},
		},
		{
			name:  PhaseApplication,
			title: "Applying " + lower + " in interviews",
			criteria: []string{
				fmt.Sprintf("Use %s deliberately in a full mock interview", lower),
				fmt.Sprintf("Score 7 or higher on %s", lower),
			},
			pick: func(r catalog.Resource) bool {
				return r.Difficulty == catalog.Intermediate
			},
		},
	}
	if level != profile.Student {
		phases = append(phases, phase{
			name:  PhaseMastery,
			title: label + " mastery",
			criteria: []string{
				fmt.Sprintf("Score 8 or higher on %s in three consecutive sessions", lower),
				"Coach someone else through the material",
			},
			pick: func(r catalog.Resource) bool {
				return r.Difficulty == catalog.Advanced
			},
		})
	}

	used := make(map[string]bool)
	path = Path{Focus: focus, Steps: []Step{}}

	for _, ph := range phases {
		picked := pickResources(resources, used, ph.pick)
		if ph.name == PhaseFoundation && len(picked) == 0 {
			picked = pickResources(resources, used, func(r catalog.Resource) bool {
				return r.Difficulty == catalog.Beginner
			})
		}
		if len(picked) == 0 {
			continue
		}

		hours := 0.0
		for _, r := range picked {
			used[r.ID] = true
			hours += ParseHours(r.Duration)
		}

		path.Steps = append(path.Steps, Step{
			ID:                 fmt.Sprintf("%s-%d", ph.name, len(path.Steps)+1),
			Phase:              ph.name,
			Title:              ph.title,
			Duration:           FormatHours(hours),
			Hours:              hours,
			Resources:          picked,
			CompletionCriteria: ph.criteria,
			NextSteps:          []string{},
		})
		path.TotalHours += hours
	}

	for i := 0; i < len(path.Steps)-1; i++ {
		path.Steps[i].NextSteps = []string{path.Steps[i+1].ID}
	}

	path.TotalDuration = FormatHours(path.TotalHours)

	return path
}

func pickResources(resources []catalog.Resource, used map[string]bool, pick func(catalog.Resource) bool) (picked []catalog.Resource) {
	for _, r := range resources {
		if len(picked) == MaxResourcesPerStep {
			break
		}
		if used[r.ID] || !pick(r) {
			continue
		}
		picked = append(picked, r)
	}
	return picked
}

// ParseHours converts a duration like "30 minutes", "2 hours", "1 day" or "3 weeks" to hours.
// A day is 8 hours and a week 40. Unparseable durations count as zero.
func ParseHours(duration string) (hours float64) {
	m := durationPattern.FindStringSubmatch(strings.ToLower(duration))
	if m == nil {
		return hours
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return hours
	}

	switch m[2] {
	case "m", "min", "mins", "minute", "minutes":
		hours = n / 60
	case "h", "hr", "hrs", "hour", "hours":
		hours = n
	case "d", "day", "days":
		hours = n * HoursPerDay
	case "w", "wk", "wks", "week", "weeks":
		hours = n * HoursPerWeek
	}

	return hours
}

// FormatHours expresses hours as hours up to 8, days up to 40, and weeks above that.
func FormatHours(hours float64) (formatted string) {
	switch {
	case hours <= HoursPerDay:
		formatted = plural(hours, "hour")
	case hours <= HoursPerWeek:
		formatted = plural(hours/HoursPerDay, "day")
	default:
		formatted = plural(hours/HoursPerWeek, "week")
	}
	return formatted
}

func plural(n float64, unit string) (s string) {
	n = math.Round(n*10) / 10
	s = strconv.FormatFloat(n, 'f', -1, 64) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}
