package cmd

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikogura/interview-coach/pkg/config"
	"github.com/nikogura/interview-coach/pkg/evaluator"
	"github.com/nikogura/interview-coach/pkg/history"
	"github.com/nikogura/interview-coach/pkg/keywords"
	"github.com/nikogura/interview-coach/pkg/llm"
	"github.com/nikogura/interview-coach/pkg/source"
)

//nolint:gochecknoglobals // Cobra boilerplate
var evalQuestion string

//nolint:gochecknoglobals // Cobra boilerplate
var evalQuestionFile string

//nolint:gochecknoglobals // Cobra boilerplate
var evalAnswer string

//nolint:gochecknoglobals // Cobra boilerplate
var evalAnswerFile string

//nolint:gochecknoglobals // Cobra boilerplate
var evalRole string

//nolint:gochecknoglobals // Cobra boilerplate
var evalType string

//nolint:gochecknoglobals // Cobra boilerplate
var evalDifficulty string

//nolint:gochecknoglobals // Cobra boilerplate
var evalSave bool

//nolint:gochecknoglobals // Cobra boilerplate
var evalAIFeedback bool

//nolint:gochecknoglobals // Cobra boilerplate
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score an interview answer",
	Long: `Scores a free-text answer on relevance, clarity, technical depth, confidence and structure
and prints the evaluation as JSON.

Question and answer can be given inline or read from a file, an http(s) URL, or stdin ("-").

Examples:
  interview-coach evaluate --question "Explain useEffect" --answer-file answer.txt --role frontend

  # Behavioral answer from stdin, saved to history
  cat answer.txt | interview-coach evaluate --question "Tell me about a conflict" --answer-file - --type behavioral --save

  # Replace the templated feedback with AI feedback
  interview-coach evaluate --question-file q.txt --answer-file a.txt --ai-feedback`,
	RunE: runEvaluate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(evaluateCmd)
	evaluateCmd.Flags().StringVar(&evalQuestion, "question", "", "Question text")
	evaluateCmd.Flags().StringVar(&evalQuestionFile, "question-file", "", "Read the question from a file, URL or - for stdin")
	evaluateCmd.Flags().StringVar(&evalAnswer, "answer", "", "Answer text")
	evaluateCmd.Flags().StringVar(&evalAnswerFile, "answer-file", "", "Read the answer from a file, URL or - for stdin")
	evaluateCmd.Flags().StringVar(&evalRole, "role", keywords.RoleGeneral, "Role (frontend, backend, fullstack, data-science, devops, general)")
	evaluateCmd.Flags().StringVar(&evalType, "type", evaluator.DefaultType, "Interview type (technical, behavioral, system-design, hr)")
	evaluateCmd.Flags().StringVar(&evalDifficulty, "difficulty", "", "Question difficulty, recorded with saved sessions")
	evaluateCmd.Flags().BoolVar(&evalSave, "save", false, "Save the evaluation to the history directory")
	evaluateCmd.Flags().BoolVar(&evalAIFeedback, "ai-feedback", false, "Replace the templated feedback with Claude feedback")
}

func runEvaluate(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	var logger *zap.Logger
	cfg, logger, err = loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	reader := source.NewReader()

	var question, answer string
	question, err = resolveText(cmd.Context(), reader, "question", evalQuestion, evalQuestionFile)
	if err != nil {
		return err
	}

	answer, err = resolveText(cmd.Context(), reader, "answer", evalAnswer, evalAnswerFile)
	if err != nil {
		return err
	}

	lib := keywords.Default()
	if cfg.KeywordsLocation != "" {
		lib, err = keywords.Load(cfg.KeywordsLocation)
		if err != nil {
			err = errors.Wrap(err, "failed to load keyword library")
			return err
		}
	}

	var engine *evaluator.Engine
	engine, err = evaluator.NewEngine(lib, cfg.Weights, logger)
	if err != nil {
		err = errors.Wrap(err, "failed to create evaluator")
		return err
	}

	evalCtx := evaluator.Context{Role: evalRole, Type: evalType, Difficulty: evalDifficulty}
	result := engine.Evaluate(question, answer, evalCtx)

	if evalAIFeedback {
		result = withAIFeedback(cmd.Context(), cfg, logger, llm.FeedbackRequest{
			Question: question,
			Answer:   answer,
			Context:  evalCtx,
			Result:   result,
		})
	}

	if evalSave {
		var store *history.Store
		store, err = history.NewStore(cfg.HistoryDir, logger)
		if err != nil {
			err = errors.Wrap(err, "failed to open history")
			return err
		}

		var path string
		path, err = store.Save(history.NewRecord(question, answer, evalCtx, result, time.Now()))
		if err != nil {
			err = errors.Wrap(err, "failed to save session")
			return err
		}
		logger.Info("saved session", zap.String("path", path))
	}

	err = printJSON(cmd.OutOrStdout(), result)
	return err
}

// resolveText prefers inline text and falls back to a file, URL or stdin.
func resolveText(ctx context.Context, reader *source.Reader, name, inline, input string) (text string, err error) {
	if inline != "" {
		text = inline
		return text, err
	}

	if input == "" {
		err = errors.Errorf("provide --%s or --%s-file", name, name)
		return text, err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, source.DefaultTimeout)
	defer cancel()

	text, err = reader.Read(ctx, input)
	if err != nil {
		err = errors.Wrapf(err, "failed to read %s", name)
		return text, err
	}

	return text, err
}

// withAIFeedback swaps in model feedback. Any failure keeps the templated feedback.
func withAIFeedback(ctx context.Context, cfg config.Config, logger *zap.Logger, req llm.FeedbackRequest) (result evaluator.Result) {
	result = req.Result

	err := cfg.RequireAPIKey()
	if err != nil {
		logger.Warn("AI feedback skipped", zap.Error(err))
		return result
	}

	client, err := llm.NewClient(cfg.AnthropicAPIKey, cfg.GetFeedbackModel())
	if err != nil {
		logger.Warn("AI feedback skipped", zap.Error(err))
		return result
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, llm.DefaultTimeout)
	defer cancel()

	resp, err := client.Feedback(ctx, req)
	if err != nil {
		logger.Warn("AI feedback failed, keeping template feedback", zap.Error(err))
		return result
	}

	logger.Debug("AI feedback received", zap.Strings("tips", resp.Tips))
	result = evaluator.WithFeedback(result, resp.Feedback)
	return result
}
