package config

import (
	"strings"
	"testing"

	"nathanbeddoewebdev/cloudpulse/internal/config"
)

func TestGet_SingleValue(t *testing.T) {
	path := setupTestConfig(t)

	cfg := &config.Config{AWSRegion: "eu-central-1"}
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to seed config: %v", err)
	}

	stdout, stderr := execConfig(t, "get", "aws-region")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if strings.TrimSpace(stdout) != "eu-central-1" {
		t.Errorf("expected %q, got %q", "eu-central-1", stdout)
	}
}

func TestGet_UnsetValue(t *testing.T) {
	setupTestConfig(t)

	stdout, _ := execConfig(t, "get", "aws-region")

	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected 'not set', got: %s", stdout)
	}
}

func TestGet_ListsAllKeys(t *testing.T) {
	setupTestConfig(t)

	stdout, _ := execConfig(t, "get")

	for _, name := range config.KeyNames() {
		if !strings.Contains(stdout, name) {
			t.Errorf("expected listing to contain %q, got:\n%s", name, stdout)
		}
	}
}

func TestGet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "get", "bogus-key")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
