package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Inventory.Threshold != 30 {
		t.Errorf("inventory threshold = %d, want 30", cfg.Inventory.Threshold)
	}
	if cfg.Inventory.BatchCap != 20 {
		t.Errorf("inventory batch cap = %d, want 20", cfg.Inventory.BatchCap)
	}
	if cfg.Scoring.NegativeMarkWeight != 0.66 {
		t.Errorf("negative mark weight = %v, want 0.66", cfg.Scoring.NegativeMarkWeight)
	}
	if cfg.Scoring.BlindGuessSeconds != 3 {
		t.Errorf("blind guess window = %d, want 3", cfg.Scoring.BlindGuessSeconds)
	}
	if cfg.Scoring.RushSeconds != 5 {
		t.Errorf("rush window = %d, want 5", cfg.Scoring.RushSeconds)
	}
	if cfg.Scoring.DeliberationSeconds != 45 {
		t.Errorf("deliberation window = %d, want 45", cfg.Scoring.DeliberationSeconds)
	}
	if cfg.Scoring.OverthinkingSeconds != 60 {
		t.Errorf("overthinking window = %d, want 60", cfg.Scoring.OverthinkingSeconds)
	}
	if cfg.Scoring.ConfidentGuessSeconds != 8 {
		t.Errorf("confident guess window = %d, want 8", cfg.Scoring.ConfidentGuessSeconds)
	}
	if cfg.Breaker.FailureThreshold != 5 {
		t.Errorf("breaker threshold = %d, want 5", cfg.Breaker.FailureThreshold)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := "inventory:\n  threshold: 12\nlogging:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Inventory.Threshold != 12 {
		t.Errorf("threshold = %d, want 12", cfg.Inventory.Threshold)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	// Untouched keys keep their defaults.
	if cfg.Inventory.BatchCap != 20 {
		t.Errorf("batch cap = %d, want default 20", cfg.Inventory.BatchCap)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("load without file: %v", err)
	}
	if cfg.Assembly.RemedialSize != 10 {
		t.Errorf("remedial size = %d, want 10", cfg.Assembly.RemedialSize)
	}
}
