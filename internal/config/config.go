package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// BankProfile identifies one bank's receipt vocabulary. Keywords and app names
// are matched case-insensitively as substrings of the extracted text and are
// never mutated after load.
type BankProfile struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	AppNames []string `json:"app_names,omitempty"`
}

// Settings are the extraction knobs. Immutable per run.
type Settings struct {
	MinNameLength   int  `json:"min_name_length"`
	MaxNameWords    int  `json:"max_name_words"`
	ParallelWorkers int  `json:"parallel_workers"`
	DebugMode       bool `json:"debug_mode"`
}

// Config is the full configuration payload. Banks are an ordered slice, not a
// map: bank detection is first-match-wins in declaration order, and a JSON
// object decoded into a Go map would lose that order.
type Config struct {
	NameKeywords  []string      `json:"name_keywords"`
	Banks         []BankProfile `json:"banks"`
	ExcludedWords []string      `json:"excluded_words"`
	Settings      Settings      `json:"settings"`
}

// Load reads and validates a configuration file. A missing file is not an
// error: the built-in default set is returned instead.
func Load(path string, logger *slog.Logger) (Config, error) {
	if logger == nil {
		logger = slog.Default()
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.Warn("config file not found, using defaults", "path", path)
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := ValidateJSON(data); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.applyDefaults()
	logger.Info("configuration loaded",
		"path", path,
		"name_keywords", len(cfg.NameKeywords),
		"banks", len(cfg.Banks),
		"excluded_words", len(cfg.ExcludedWords),
		"debug_mode", cfg.Settings.DebugMode)
	return cfg, nil
}

// applyDefaults fills zero-valued settings with the built-in defaults.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Settings.MinNameLength <= 0 {
		c.Settings.MinNameLength = def.Settings.MinNameLength
	}
	if c.Settings.MaxNameWords <= 0 {
		c.Settings.MaxNameWords = def.Settings.MaxNameWords
	}
	if c.Settings.ParallelWorkers <= 0 {
		c.Settings.ParallelWorkers = def.Settings.ParallelWorkers
	}
	if len(c.NameKeywords) == 0 {
		c.NameKeywords = def.NameKeywords
	}
	if len(c.ExcludedWords) == 0 {
		c.ExcludedWords = def.ExcludedWords
	}
}
