package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Classifier.SpaceID != "wilsondt/rice-disease-classification" {
		t.Errorf("unexpected space id: %s", cfg.Classifier.SpaceID)
	}
	if cfg.Classifier.RequestTimeout != 3*time.Minute {
		t.Errorf("unexpected timeout: %v", cfg.Classifier.RequestTimeout)
	}
	if cfg.Classifier.MaxImageBytes != 10<<20 {
		t.Errorf("unexpected max image bytes: %d", cfg.Classifier.MaxImageBytes)
	}
	if cfg.Classifier.DedupTolerance != 1e-6 {
		t.Errorf("unexpected tolerance: %v", cfg.Classifier.DedupTolerance)
	}
	if cfg.RateLimit.EffectiveRequestsPerMin() != 30 {
		t.Errorf("unexpected rate limit: %d", cfg.RateLimit.EffectiveRequestsPerMin())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())
	t.Setenv("CLASSIFIER_SPACE_ID", "owner/other-space")
	t.Setenv("CLASSIFIER_REQUEST_TIMEOUT", "45s")
	t.Setenv("HF_TOKEN", "hf_shortcut")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Classifier.SpaceID != "owner/other-space" {
		t.Errorf("unexpected space id: %s", cfg.Classifier.SpaceID)
	}
	if cfg.Classifier.RequestTimeout != 45*time.Second {
		t.Errorf("unexpected timeout: %v", cfg.Classifier.RequestTimeout)
	}
	if cfg.Classifier.HFToken != "hf_shortcut" {
		t.Errorf("expected HF_TOKEN shortcut, got %q", cfg.Classifier.HFToken)
	}
	if cfg.RateLimit.EffectiveRequestsPerMin() != 0 {
		t.Errorf("expected disabled rate limit")
	}
}

func TestLoadEnvFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	chdir(t, dir)

	if err := os.WriteFile(filepath.Join(dir, ".env.local"), []byte("HF_TOKEN=hf_from_file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	// Registered so the variable godotenv sets is unset again afterwards.
	t.Setenv("HF_TOKEN", "")
	os.Unsetenv("HF_TOKEN")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Classifier.HFToken != "hf_from_file" {
		t.Errorf("expected token from .env.local, got %q", cfg.Classifier.HFToken)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Classifier: ClassifierConfig{SpaceID: "owner/space", MaxImageBytes: 1},
		RateLimit:  RateLimitConfig{Enabled: true, RequestsPerMin: 10},
	}
	if err := valid.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := map[string]func(c *Config){
		"Missing target":       func(c *Config) { c.Classifier.SpaceID = "" },
		"Zero max image bytes": func(c *Config) { c.Classifier.MaxImageBytes = 0 },
		"Negative tolerance":   func(c *Config) { c.Classifier.DedupTolerance = -1 },
		"Enabled without rate": func(c *Config) { c.RateLimit.RequestsPerMin = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid
			mutate(&c)
			if err := c.validate(); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
