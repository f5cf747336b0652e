package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nikogura/interview-coach/pkg/scorer"
)

// EnvPrefix prefixes every environment override, e.g. INTERVIEW_COACH_HISTORY_DIR.
const EnvPrefix = "INTERVIEW_COACH"

// DefaultFeedbackModel is used when models.feedback is not set.
const DefaultFeedbackModel = "claude-sonnet-4-20250514"

// Config represents the application configuration.
type Config struct {
	AnthropicAPIKey  string         `mapstructure:"anthropic_api_key" yaml:"anthropic_api_key"`
	Models           ModelsConfig   `mapstructure:"models" yaml:"models"`
	KeywordsLocation string         `mapstructure:"keywords_location" yaml:"keywords_location,omitempty"`
	CatalogLocation  string         `mapstructure:"catalog_location" yaml:"catalog_location,omitempty"`
	HistoryDir       string         `mapstructure:"history_dir" yaml:"history_dir"`
	Weights          scorer.Weights `mapstructure:"weights" yaml:"weights"`
	Logging          LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ModelsConfig holds model selection for AI feedback.
type ModelsConfig struct {
	Feedback string `mapstructure:"feedback" yaml:"feedback,omitempty"`
}

// LoggingConfig selects the log level and encoding.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// GetFeedbackModel returns the feedback model or the default if not specified.
func (c *Config) GetFeedbackModel() (model string) {
	if c.Models.Feedback != "" {
		model = c.Models.Feedback
		return model
	}
	model = DefaultFeedbackModel
	return model
}

// DefaultPath returns ~/.interview-coach/config.yaml.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".interview-coach", "config.yaml")
	return path, err
}

func setDefaults(v *viper.Viper, homeDir string) {
	weights := scorer.DefaultWeights()

	v.SetDefault("anthropic_api_key", "")
	v.SetDefault("models.feedback", "")
	v.SetDefault("keywords_location", "")
	v.SetDefault("catalog_location", "")
	v.SetDefault("history_dir", filepath.Join(homeDir, ".interview-coach", "history"))
	v.SetDefault("weights.relevance", weights.Relevance)
	v.SetDefault("weights.clarity", weights.Clarity)
	v.SetDefault("weights.technical", weights.Technical)
	v.SetDefault("weights.confidence", weights.Confidence)
	v.SetDefault("weights.structure", weights.Structure)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads configuration from a JSON or YAML file with environment overrides. An empty configPath
// means the default location, which may be missing; an explicit path must exist.
func Load(configPath string) (cfg Config, err error) {
	homeDir, _ := os.UserHomeDir()

	v := viper.New()
	setDefaults(v, homeDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		v.SetConfigFile(path)
		err = v.ReadInConfig()
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case configPath != "":
		err = errors.Errorf("config file not found: %s (run 'interview-coach init' to create)", path)
		return cfg, err
	}

	err = v.Unmarshal(&cfg)
	if err != nil {
		err = errors.Wrap(err, "failed to decode config")
		return cfg, err
	}

	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		cfg.AnthropicAPIKey = apiKey
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

// Validate checks weights, logging settings and any configured data files.
func (c *Config) Validate() (err error) {
	err = c.Weights.Validate()
	if err != nil {
		err = errors.Wrap(err, "weights")
		return err
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = errors.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
		return err
	}

	switch c.Logging.Format {
	case "json", "console":
	default:
		err = errors.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
		return err
	}

	dataFiles := []struct{ name, location string }{
		{name: "keywords_location", location: c.KeywordsLocation},
		{name: "catalog_location", location: c.CatalogLocation},
	}
	for _, f := range dataFiles {
		if f.location == "" {
			continue
		}
		_, err = os.Stat(f.location)
		if os.IsNotExist(err) {
			err = errors.Errorf("%s file not found: %s", f.name, f.location)
			return err
		}
		err = nil
	}

	if c.HistoryDir == "" {
		err = errors.New("history_dir is required in config")
		return err
	}

	return err
}

// RequireAPIKey errors when no Anthropic key is configured.
func (c *Config) RequireAPIKey() (err error) {
	if c.AnthropicAPIKey == "" {
		err = errors.New("anthropic_api_key is required for AI feedback (set in config or ANTHROPIC_API_KEY env var)")
	}
	return err
}

// InitConfig writes a default YAML configuration file. It refuses to overwrite an existing file.
func InitConfig(configPath string) (path string, err error) {
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	defaultConfig := Config{
		AnthropicAPIKey: "sk-ant-api03-...",
		Models:          ModelsConfig{Feedback: DefaultFeedbackModel},
		HistoryDir:      filepath.Join(dir, "history"),
		Weights:         scorer.DefaultWeights(),
		Logging:         LoggingConfig{Level: "info", Format: "console"},
	}

	var data []byte
	data, err = yaml.Marshal(defaultConfig)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}
