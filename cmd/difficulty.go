package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/nikogura/interview-coach/pkg/difficulty"
	"github.com/nikogura/interview-coach/pkg/profile"
)

//nolint:gochecknoglobals // Cobra boilerplate
var diffExperience string

//nolint:gochecknoglobals // Cobra boilerplate
var diffAverage float64

//nolint:gochecknoglobals // Cobra boilerplate
var diffConfidence int

//nolint:gochecknoglobals // Cobra boilerplate
var diffSessions int

//nolint:gochecknoglobals // Cobra boilerplate
var diffTrend string

//nolint:gochecknoglobals // Cobra boilerplate
var diffCurrent string

//nolint:gochecknoglobals // Cobra boilerplate
var diffSuccessRate float64

// progression is printed for --current.
type progression struct {
	Current     difficulty.Level `json:"current"`
	SuccessRate float64          `json:"success_rate"`
	Next        difficulty.Level `json:"next"`
}

//nolint:gochecknoglobals // Cobra boilerplate
var difficultyCmd = &cobra.Command{
	Use:   "difficulty",
	Short: "Suggest a question difficulty",
	Long: `Computes a difficulty recommendation from experience, average score, confidence,
session count and score trend.

With --current, computes the next level from the success rate of the last session instead.

Examples:
  interview-coach difficulty --experience junior --average 62 --confidence 3 --sessions 8 --trend improving
  interview-coach difficulty --current medium --success-rate 0.8`,
	RunE: runDifficulty,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(difficultyCmd)
	difficultyCmd.Flags().StringVar(&diffExperience, "experience", string(profile.Junior), "Experience level (student, fresher, junior, senior)")
	difficultyCmd.Flags().Float64Var(&diffAverage, "average", 50, "Average score 0-100")
	difficultyCmd.Flags().IntVar(&diffConfidence, "confidence", 3, "Self-rated confidence 1-5")
	difficultyCmd.Flags().IntVar(&diffSessions, "sessions", 0, "Sessions completed")
	difficultyCmd.Flags().StringVar(&diffTrend, "trend", string(profile.Stable), "Score trend (improving, declining, stable)")
	difficultyCmd.Flags().StringVar(&diffCurrent, "current", "", "Current difficulty for progression mode (easy, medium, hard)")
	difficultyCmd.Flags().Float64Var(&diffSuccessRate, "success-rate", 0, "Success rate 0-1 of the last session, with --current")
}

func runDifficulty(cmd *cobra.Command, args []string) (err error) {
	if diffCurrent != "" {
		current := difficulty.Level(diffCurrent)
		if !current.Valid() {
			err = errors.Errorf("unknown difficulty: %q", diffCurrent)
			return err
		}
		if diffSuccessRate < 0 || diffSuccessRate > 1 {
			err = errors.Errorf("success rate must be between 0 and 1, got %v", diffSuccessRate)
			return err
		}

		err = printJSON(cmd.OutOrStdout(), progression{
			Current:     current,
			SuccessRate: diffSuccessRate,
			Next:        difficulty.NextProgression(current, diffSuccessRate),
		})
		return err
	}

	p := profile.UserProfile{
		ExperienceLevel: profile.ExperienceLevel(diffExperience),
		ConfidenceLevel: diffConfidence,
	}
	err = p.Validate()
	if err != nil {
		return err
	}

	analytics := profile.AnalyticsSnapshot{
		TotalSessions: diffSessions,
		AverageScore:  diffAverage,
		ScoreTrend:    profile.Trend(diffTrend),
	}
	err = analytics.Validate()
	if err != nil {
		return err
	}

	rec := difficulty.Calculate(difficulty.Input{
		ExperienceLevel:   p.ExperienceLevel,
		AverageScore:      analytics.AverageScore,
		ConfidenceLevel:   p.ConfidenceLevel,
		SessionsCompleted: analytics.TotalSessions,
		Trend:             analytics.ScoreTrend,
	})

	err = printJSON(cmd.OutOrStdout(), rec)
	return err
}
