package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.MaxResults != 64 {
		t.Errorf("Expected max_results 64, got %d", cfg.Server.MaxResults)
	}
	if cfg.Server.MaxPattern != 60 {
		t.Errorf("Expected max_pattern 60, got %d", cfg.Server.MaxPattern)
	}
	if !cfg.Server.EnableFilter {
		t.Error("Expected filter enabled by default")
	}
	if cfg.Dict.ChunkSize != 10000 {
		t.Errorf("Expected chunk_size 10000, got %d", cfg.Dict.ChunkSize)
	}
	if cfg.CLI.DefaultLimit != 24 {
		t.Errorf("Expected default_limit 24, got %d", cfg.CLI.DefaultLimit)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig returned error: %v", err)
	}
	if cfg.Server.MaxResults != 64 {
		t.Errorf("Fresh config should carry defaults, got max_results %d", cfg.Server.MaxResults)
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("Expected config file to be created: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Server.MaxResults = 12
	cfg.Dict.Path = "words.txt"
	cfg.CLI.DefaultMinLen = 3
	if err := SaveConfig(cfg, configPath); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if loaded.Server.MaxResults != 12 {
		t.Errorf("Expected max_results 12, got %d", loaded.Server.MaxResults)
	}
	if loaded.Dict.Path != "words.txt" {
		t.Errorf("Expected dict path words.txt, got %q", loaded.Dict.Path)
	}
	if loaded.CLI.DefaultMinLen != 3 {
		t.Errorf("Expected default_min_len 3, got %d", loaded.CLI.DefaultMinLen)
	}
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	// max_results has the wrong type, the strict decode fails but the
	// well-typed keys should still be recovered
	content := `[server]
max_results = "plenty"
max_pattern = 99
enable_filter = false

[cli]
default_limit = 7
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Writing config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Server.MaxResults != 64 {
		t.Errorf("Mistyped key should fall back to default 64, got %d", cfg.Server.MaxResults)
	}
	if cfg.Server.MaxPattern != 99 {
		t.Errorf("Expected recovered max_pattern 99, got %d", cfg.Server.MaxPattern)
	}
	if cfg.Server.EnableFilter {
		t.Error("Expected recovered enable_filter false")
	}
	if cfg.CLI.DefaultLimit != 7 {
		t.Errorf("Expected recovered default_limit 7, got %d", cfg.CLI.DefaultLimit)
	}
}

func TestLoadConfigGarbage(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("not = [valid toml"), 0644); err != nil {
		t.Fatalf("Writing config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig should fall back to defaults, got error: %v", err)
	}
	if cfg.Server.MaxResults != 64 {
		t.Errorf("Expected defaults on unparseable file, got max_results %d", cfg.Server.MaxResults)
	}
}

func TestUpdate(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	maxResults := 32
	enableFilter := false
	if err := cfg.Update(configPath, &maxResults, nil, &enableFilter); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if cfg.Server.MaxResults != 32 || cfg.Server.EnableFilter {
		t.Errorf("Update did not apply: %+v", cfg.Server)
	}
	if cfg.Server.MaxPattern != 60 {
		t.Errorf("Untouched value changed: %d", cfg.Server.MaxPattern)
	}

	loaded, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if loaded.Server.MaxResults != 32 {
		t.Errorf("Expected persisted max_results 32, got %d", loaded.Server.MaxResults)
	}
}
