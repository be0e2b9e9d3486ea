// Package config loads run configuration from a YAML file with
// environment-variable overrides, falling back to defaults that match the
// reference corpus layout.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Corpus   CorpusConfig   `yaml:"corpus"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CorpusConfig locates the source texts. Prefix selects corpus files and is
// stripped from filenames when deriving titles.
type CorpusConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

type AnalysisConfig struct {
	TopWords           int    `yaml:"topWords"`
	TopNgrams          int    `yaml:"topNgrams"`
	SentimentChunkSize int    `yaml:"sentimentChunkSize"`
	Workers            int    `yaml:"workers"`
	Version            string `yaml:"version"`
}

// OutputConfig names the output artifacts. An empty DBPath disables sqlite
// persistence.
type OutputConfig struct {
	ReportPath  string `yaml:"reportPath"`
	SummaryPath string `yaml:"summaryPath"`
	DBPath      string `yaml:"dbPath"`
}

type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Load reads a YAML config file (if provided) and applies environment
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Dir:    ".",
			Prefix: "Nietzsche_",
		},
		Analysis: AnalysisConfig{
			TopWords:           100,
			TopNgrams:          30,
			SentimentChunkSize: 10000,
			Workers:            0,
			Version:            "1.0",
		},
		Output: OutputConfig{
			ReportPath:  "data/nietzsche_analysis.json",
			SummaryPath: "data/summary.json",
			DBPath:      "",
		},
	}
}

// applyEnvOverrides reads DR_* environment variables and overrides the
// corresponding fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DR_CORPUS_DIR"); v != "" {
		cfg.Corpus.Dir = v
	}
	if v := os.Getenv("DR_CORPUS_PREFIX"); v != "" {
		cfg.Corpus.Prefix = v
	}
	if v := os.Getenv("DR_REPORT_PATH"); v != "" {
		cfg.Output.ReportPath = v
	}
	if v := os.Getenv("DR_SUMMARY_PATH"); v != "" {
		cfg.Output.SummaryPath = v
	}
	if v := os.Getenv("DR_DB_PATH"); v != "" {
		cfg.Output.DBPath = v
	}
	if v := os.Getenv("DR_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Analysis.Workers = n
		}
	}
	if v := os.Getenv("DR_DEBUG"); v != "" {
		cfg.Logging.Debug = v == "1" || v == "true"
	}
}
