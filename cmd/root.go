package cmd

import (
	"encoding/json"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nikogura/interview-coach/pkg/catalog"
	"github.com/nikogura/interview-coach/pkg/config"
	"github.com/nikogura/interview-coach/pkg/logging"
)

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "interview-coach",
	Short: "Score mock interview answers and plan what to practice next",
	Long: `interview-coach evaluates free-text answers to interview questions and turns a user's
profile and session history into difficulty, focus and resource recommendations.

Scoring is fully algorithmic. AI feedback through the Claude API is optional and never changes scores.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	// A missing .env is normal.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.interview-coach/config.yaml)")
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}

// loadRuntime loads the config and builds a logger from it. --verbose forces debug level.
func loadRuntime() (cfg config.Config, logger *zap.Logger, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, logger, err
	}

	level := cfg.Logging.Level
	if getVerbose() {
		level = "debug"
	}

	logger, err = logging.New(level, cfg.Logging.Format)
	if err != nil {
		return cfg, logger, err
	}

	return cfg, logger, err
}

// loadCatalog returns the configured catalog or the built-in one.
func loadCatalog(cfg config.Config) (c *catalog.Catalog, err error) {
	if cfg.CatalogLocation == "" {
		c = catalog.Default()
		return c, err
	}

	c, err = catalog.Load(cfg.CatalogLocation)
	if err != nil {
		err = errors.Wrap(err, "failed to load catalog")
		return c, err
	}

	return c, err
}

func printJSON(w io.Writer, v interface{}) (err error) {
	var data []byte
	data, err = json.MarshalIndent(v, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to encode output")
		return err
	}

	data = append(data, '\n')
	_, err = w.Write(data)
	if err != nil {
		err = errors.Wrap(err, "failed to write output")
		return err
	}

	return err
}
