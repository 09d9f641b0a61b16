package models

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds tool configuration. Values come from an optional YAML file;
// CLI flags override individual fields at the call site.
type Config struct {
	// PartOfSpeechTokens is the abbreviation set the suggestion highlighter
	// scans for, e.g. n, vt, vi, adj, adv.
	PartOfSpeechTokens []string `yaml:"part_of_speech_tokens"`

	// DefaultTargetLang is used when language detection decides the query
	// is Chinese, so the pair becomes zh -> DefaultTargetLang.
	DefaultTargetLang string `yaml:"default_target_lang"`

	// SuggestLimit is the default num parameter for suggestion requests.
	SuggestLimit int `yaml:"suggest_limit"`

	// CacheMaxAge is the default response cache validity, as a Go duration
	// string, e.g. "24h".
	CacheMaxAge string `yaml:"cache_max_age"`
}

// DefaultConfig returns the compiled-in defaults used when no config file
// is present.
func DefaultConfig() *Config {
	return &Config{
		PartOfSpeechTokens: []string{
			"n", "v", "vt", "vi", "adj", "adv", "prep", "pron",
			"conj", "int", "art", "num", "aux", "abbr",
		},
		DefaultTargetLang: "en",
		SuggestLimit:      10,
		CacheMaxAge:       "24h",
	}
}

// LoadConfig reads path if given, otherwise ~/.youdict.yaml if it exists.
// A missing default file is not an error; a malformed one is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(home, ".youdict.yaml")
		if _, err := os.Stat(path); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
