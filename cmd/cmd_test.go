package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikogura/interview-coach/pkg/catalog"
	"github.com/nikogura/interview-coach/pkg/difficulty"
	"github.com/nikogura/interview-coach/pkg/evaluator"
	"github.com/nikogura/interview-coach/pkg/history"
	"github.com/nikogura/interview-coach/pkg/recommend"
)

// resetFlags puts every flag back to its default so commands do not leak state between runs.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (out string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ANTHROPIC_API_KEY", "")

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	out = buf.String()
	return out, err
}

func writeTestConfig(t *testing.T) (configPath, historyDir string) {
	t.Helper()
	dir := t.TempDir()
	historyDir = filepath.Join(dir, "history")
	configPath = filepath.Join(dir, "config.yaml")

	content := "history_dir: " + historyDir + "\nlogging:\n  level: error\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))
	return configPath, historyDir
}

func TestDifficultyCommand(t *testing.T) {
	out, err := execute(t, "difficulty", "--experience", "student", "--confidence", "1", "--average", "20")
	require.NoError(t, err)

	var rec difficulty.Recommendation
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, difficulty.Easy, rec.SuggestedDifficulty)
	assert.True(t, rec.ConfidenceBoost)
}

func TestDifficultyProgressionCommand(t *testing.T) {
	out, err := execute(t, "difficulty", "--current", "medium", "--success-rate", "0.8")
	require.NoError(t, err)

	var p progression
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, difficulty.Medium, p.Current)
	assert.Equal(t, difficulty.Hard, p.Next)
}

func TestDifficultyCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown current level", args: []string{"difficulty", "--current", "extreme"}},
		{name: "success rate above one", args: []string{"difficulty", "--current", "easy", "--success-rate", "1.5"}},
		{name: "unknown experience", args: []string{"difficulty", "--experience", "wizard"}},
		{name: "confidence out of range", args: []string{"difficulty", "--confidence", "9"}},
		{name: "unknown trend", args: []string{"difficulty", "--trend", "sideways"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestDomainsCommand(t *testing.T) {
	out, err := execute(t, "domains", "frontend", "--weakness", "communication")
	require.NoError(t, err)

	var report domainsReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "frontend", report.Mapping.PrimaryRole)
	assert.Equal(t, "general", report.Session.Role)
	assert.Equal(t, "behavioral", report.Session.Type)
}

func TestQuestionsCommand(t *testing.T) {
	out, err := execute(t, "questions", "--role", "frontend", "--difficulty", "medium")
	require.NoError(t, err)

	var questions []catalog.Question
	require.NoError(t, json.Unmarshal([]byte(out), &questions))
	require.Len(t, questions, 1)
	assert.Equal(t, "fe-med-1", questions[0].ID)

	_, err = execute(t, "questions", "--difficulty", "brutal")
	assert.Error(t, err)
}

func TestEvaluateCommandSaves(t *testing.T) {
	configPath, historyDir := writeTestConfig(t)

	out, err := execute(t, "evaluate", "--config", configPath,
		"--question", "Tell me about a time you resolved a conflict.",
		"--answer", "First, I listened to both engineers. Then we agreed on ownership. As a result, we shipped on time.",
		"--type", "behavioral",
		"--save",
	)
	require.NoError(t, err)

	var result evaluator.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, evaluator.Method, result.Metadata.Method)
	assert.GreaterOrEqual(t, result.OverallScore, 0)
	assert.LessOrEqual(t, result.OverallScore, 100)

	matches, err := filepath.Glob(filepath.Join(historyDir, "*"+history.RecordSuffix))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestEvaluateCommandNeedsAnswer(t *testing.T) {
	configPath, _ := writeTestConfig(t)

	_, err := execute(t, "evaluate", "--config", configPath, "--question", "Why this company?")
	assert.Error(t, err)
}

func TestEvaluateAIFeedbackWithoutKeyKeepsTemplate(t *testing.T) {
	configPath, _ := writeTestConfig(t)

	out, err := execute(t, "evaluate", "--config", configPath,
		"--question", "What is a REST API?",
		"--answer", "A REST API exposes resources over HTTP using standard methods.",
		"--ai-feedback",
	)
	require.NoError(t, err)

	var result evaluator.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, evaluator.FeedbackTemplate, result.Metadata.FeedbackSource)
	assert.NotEmpty(t, result.Feedback)
}

func TestRecommendCommand(t *testing.T) {
	configPath, _ := writeTestConfig(t)

	profilePath := filepath.Join(t.TempDir(), "profile.json")
	profileJSON := `{
  "profile": {
    "experience_level": "junior",
    "domains": ["backend"],
    "interview_goals": [],
    "confidence_level": 3
  }
}`
	require.NoError(t, os.WriteFile(profilePath, []byte(profileJSON), 0600))

	out, err := execute(t, "recommend", "--config", configPath, "--profile", profilePath)
	require.NoError(t, err)

	var rec recommend.Output
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.True(t, rec.SuggestedDifficulty.Valid())
	assert.NotEmpty(t, rec.PrimaryFocus.Skill)
	assert.NotEmpty(t, rec.RecommendedResources)
	assert.LessOrEqual(t, len(rec.RecommendedResources), recommend.MaxResources)

	summary, err := execute(t, "recommend", "--config", configPath, "--profile", profilePath, "--history", "--summary")
	require.NoError(t, err)
	assert.Contains(t, summary, "Focus:")
	assert.Contains(t, summary, "Complete your first practice session")
}

func TestInitCommand(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "init", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, configPath)
	assert.FileExists(t, configPath)

	_, err = execute(t, "init", "--config", configPath)
	assert.Error(t, err)
}
