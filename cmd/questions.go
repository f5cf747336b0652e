package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikogura/interview-coach/pkg/catalog"
	"github.com/nikogura/interview-coach/pkg/config"
)

//nolint:gochecknoglobals // Cobra boilerplate
var questionsRole string

//nolint:gochecknoglobals // Cobra boilerplate
var questionsCategory string

//nolint:gochecknoglobals // Cobra boilerplate
var questionsDifficulty string

//nolint:gochecknoglobals // Cobra boilerplate
var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List questions from the question bank",
	Long: `Lists questions from the catalog's question bank. Every filter is optional.

Examples:
  interview-coach questions --role frontend --difficulty medium
  interview-coach questions --category behavioral`,
	RunE: runQuestions,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(questionsCmd)
	questionsCmd.Flags().StringVar(&questionsRole, "role", "", "Role filter")
	questionsCmd.Flags().StringVar(&questionsCategory, "category", "", "Question category filter (technical, behavioral, system-design, hr)")
	questionsCmd.Flags().StringVar(&questionsDifficulty, "difficulty", "", "Difficulty filter (easy, medium, hard)")
}

func runQuestions(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	var logger *zap.Logger
	cfg, logger, err = loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	switch questionsDifficulty {
	case "", catalog.QuestionEasy, catalog.QuestionMedium, catalog.QuestionHard:
	default:
		err = errors.Errorf("unknown difficulty: %q", questionsDifficulty)
		return err
	}

	var c *catalog.Catalog
	c, err = loadCatalog(cfg)
	if err != nil {
		return err
	}

	questions := c.Questions(questionsRole, questionsCategory, questionsDifficulty)
	logger.Debug("question bank lookup",
		zap.String("role", questionsRole),
		zap.String("category", questionsCategory),
		zap.String("difficulty", questionsDifficulty),
		zap.Int("matches", len(questions)),
	)

	err = printJSON(cmd.OutOrStdout(), questions)
	return err
}
