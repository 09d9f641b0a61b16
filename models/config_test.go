package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "youdict.yaml")
	content := []byte("part_of_speech_tokens: [n, vt]\ndefault_target_lang: fr\nsuggest_limit: 5\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if len(cfg.PartOfSpeechTokens) != 2 || cfg.PartOfSpeechTokens[1] != "vt" {
		t.Errorf("PartOfSpeechTokens = %v, want [n vt]", cfg.PartOfSpeechTokens)
	}
	if cfg.DefaultTargetLang != "fr" {
		t.Errorf("DefaultTargetLang = %q, want %q", cfg.DefaultTargetLang, "fr")
	}
	if cfg.SuggestLimit != 5 {
		t.Errorf("SuggestLimit = %d, want 5", cfg.SuggestLimit)
	}
	// Untouched field keeps its default
	if cfg.CacheMaxAge != "24h" {
		t.Errorf("CacheMaxAge = %q, want default %q", cfg.CacheMaxAge, "24h")
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("part_of_speech_tokens: ["), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("LoadConfig() error = nil, want parse failure")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.PartOfSpeechTokens) == 0 {
		t.Error("DefaultConfig() has no part-of-speech tokens")
	}
	if cfg.SuggestLimit <= 0 {
		t.Errorf("SuggestLimit = %d, want positive", cfg.SuggestLimit)
	}
}
