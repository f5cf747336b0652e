package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nikogura/interview-coach/pkg/catalog"
	"github.com/nikogura/interview-coach/pkg/config"
	"github.com/nikogura/interview-coach/pkg/history"
	"github.com/nikogura/interview-coach/pkg/priority"
	"github.com/nikogura/interview-coach/pkg/profile"
	"github.com/nikogura/interview-coach/pkg/recommend"
)

//nolint:gochecknoglobals // Cobra boilerplate
var recProfileFile string

//nolint:gochecknoglobals // Cobra boilerplate
var recFromHistory bool

//nolint:gochecknoglobals // Cobra boilerplate
var recSummary bool

//nolint:gochecknoglobals // Cobra boilerplate
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend focus, difficulty and resources for the next sessions",
	Long: `Builds a recommendation from a profile file: the primary skill to work on, a difficulty level,
the next session's role and interview type, ranked catalog resources and a learning path.

The profile file is JSON with a "profile" object and an optional "analytics" snapshot.
With --history the snapshot is derived from saved sessions instead.

Examples:
  interview-coach recommend --profile me.json
  interview-coach recommend --profile me.json --history --summary`,
	RunE: runRecommend,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().StringVar(&recProfileFile, "profile", "", "Profile JSON file (required)")
	recommendCmd.Flags().BoolVar(&recFromHistory, "history", false, "Derive analytics from saved sessions")
	recommendCmd.Flags().BoolVar(&recSummary, "summary", false, "Print a readable summary instead of JSON")
	_ = recommendCmd.MarkFlagRequired("profile")
}

func runRecommend(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	var logger *zap.Logger
	cfg, logger, err = loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var input profile.Input
	input, err = profile.Load(recProfileFile)
	if err != nil {
		return err
	}

	if recFromHistory {
		var store *history.Store
		store, err = history.NewStore(cfg.HistoryDir, logger)
		if err != nil {
			err = errors.Wrap(err, "failed to open history")
			return err
		}

		var records []history.Record
		records, err = store.List(cmd.Context())
		if err != nil {
			err = errors.Wrap(err, "failed to read history")
			return err
		}
		input.Analytics = history.Snapshot(records)
		logger.Debug("analytics from history", zap.Int("sessions", len(records)))
	}

	var c *catalog.Catalog
	c, err = loadCatalog(cfg)
	if err != nil {
		return err
	}

	var generator *recommend.Generator
	generator, err = recommend.NewGenerator(c, priority.DefaultConfig(), logger)
	if err != nil {
		return err
	}

	out := generator.Generate(input.Profile, input.Analytics)

	if recSummary {
		err = printRecommendationSummary(cmd.OutOrStdout(), out)
		return err
	}

	err = printJSON(cmd.OutOrStdout(), out)
	return err
}

func printRecommendationSummary(w io.Writer, out recommend.Output) (err error) {
	title := cases.Title(language.English)

	var b strings.Builder
	fmt.Fprintf(&b, "Focus:      %s (%s, deficit %.1f)\n", out.PrimaryFocus.Label, out.PrimaryFocus.Severity, out.PrimaryFocus.Deficit)
	fmt.Fprintf(&b, "Difficulty: %s\n", title.String(string(out.SuggestedDifficulty)))
	fmt.Fprintf(&b, "Next:       %s %s session\n", title.String(out.SuggestedRole), out.SuggestedType)
	fmt.Fprintf(&b, "Urgency:    %s (%.1f)\n", title.String(out.UrgencyLevel), out.UrgencyScore)

	if out.Difficulty.Explanation != "" {
		fmt.Fprintf(&b, "\n%s\n", out.Difficulty.Explanation)
	}

	if len(out.RecommendedResources) > 0 {
		b.WriteString("\nResources:\n")
		for i, r := range out.RecommendedResources {
			fmt.Fprintf(&b, "  %d. %s [%s, %s, %s]\n", i+1, r.Title, r.Type, r.Difficulty, r.Duration)
		}
	}

	if len(out.LearningPath.Steps) > 0 {
		fmt.Fprintf(&b, "\nLearning path (%s):\n", out.LearningPath.TotalDuration)
		for _, step := range out.LearningPath.Steps {
			fmt.Fprintf(&b, "  - %s (%s)\n", step.Title, step.Duration)
		}
	}

	if len(out.ProgressInsights.Messages) > 0 {
		b.WriteString("\n")
		for _, msg := range out.ProgressInsights.Messages {
			fmt.Fprintf(&b, "%s\n", msg)
		}
	}

	_, err = io.WriteString(w, b.String())
	if err != nil {
		err = errors.Wrap(err, "failed to write summary")
		return err
	}

	return err
}
