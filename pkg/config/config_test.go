package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Solver.DefaultTimeoutSeconds <= 0 {
		t.Error("default solver timeout must be positive")
	}
	if cfg.Server.MaxSolutionsCap <= 0 {
		t.Error("default max solutions cap must be positive")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Solver.DefaultMaxSolutions = 42
	cfg.Server.MaxPhraseLen = 80
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Solver.DefaultMaxSolutions != 42 {
		t.Errorf("DefaultMaxSolutions = %d, want 42", loaded.Solver.DefaultMaxSolutions)
	}
	if loaded.Server.MaxPhraseLen != 80 {
		t.Errorf("MaxPhraseLen = %d, want 80", loaded.Server.MaxPhraseLen)
	}
}

func TestLoadConfigBadFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig should fall back, got error: %v", err)
	}
	if cfg.Solver.DefaultMaxSolutions != DefaultConfig().Solver.DefaultMaxSolutions {
		t.Error("fallback config does not match defaults")
	}
}

func TestUpdatePersistsSolverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	timeout := 2.5
	maxSolutions := 100
	if err := cfg.Update(path, &timeout, &maxSolutions, nil); err != nil {
		t.Fatalf("Update: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Solver.DefaultTimeoutSeconds != 2.5 || loaded.Solver.DefaultMaxSolutions != 100 {
		t.Errorf("updated solver config = %+v", loaded.Solver)
	}
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	if _, err := InitConfig(path); err != nil {
		t.Fatalf("InitConfig: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}
