package config

import (
	"fmt"
	"strconv"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "default-service").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "default-service",
		Description: "Service preselected in the dashboard picker (rds, sqs, hetzner)",
		Get:         func(cfg *Config) string { return cfg.DefaultService },
		Set:         func(cfg *Config, v string) { cfg.DefaultService = v },
	},
	{
		Name:        "aws-region",
		Description: "AWS region for the RDS and SQS clients",
		Get:         func(cfg *Config) string { return cfg.AWSRegion },
		Set:         func(cfg *Config, v string) { cfg.AWSRegion = v },
	},
	{
		Name:        "default-time-range",
		Description: "Time range selected on startup (e.g. \"1 hour\")",
		Get:         func(cfg *Config) string { return cfg.DefaultTimeRange },
		Set:         func(cfg *Config, v string) { cfg.DefaultTimeRange = v },
	},
	{
		Name:        "timezone",
		Description: "IANA timezone for chart axis labels (empty for local)",
		Get:         func(cfg *Config) string { return cfg.Timezone },
		Set:         func(cfg *Config, v string) { cfg.Timezone = v },
	},
	{
		Name:        "refresh-seconds",
		Description: "Auto-refresh interval for metrics screens (negative to disable)",
		Get:         func(cfg *Config) string { return strconv.Itoa(cfg.RefreshSeconds) },
		Set: func(cfg *Config, v string) {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				cfg.RefreshSeconds = n
			}
		},
	},
	{
		Name:        "instance-cache-seconds",
		Description: "How long a cached instance listing is served without refetching (negative to disable)",
		Get:         func(cfg *Config) string { return strconv.Itoa(cfg.InstanceCacheSeconds) },
		Set: func(cfg *Config, v string) {
			if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
				cfg.InstanceCacheSeconds = n
			}
		},
	},
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
