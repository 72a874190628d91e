package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"nathanbeddoewebdev/cloudpulse/internal/config"
	"nathanbeddoewebdev/cloudpulse/internal/providers"
	"nathanbeddoewebdev/cloudpulse/internal/timerange"
	"nathanbeddoewebdev/cloudpulse/internal/util"

	"github.com/spf13/cobra"
)

// SetCommand returns the "config set" command.
func SetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: "Set a persistent configuration value.\n\n" +
			config.KeysHelp() +
			"\nExamples:\n" +
			"  cloudpulse config set default-service rds\n" +
			"  cloudpulse config set default-time-range \"3 hours\"",
		Args: cobra.ExactArgs(2),
		Run:  runSet,
	}

	return cmd
}

// validators maps key names to optional pre-save validation functions.
// Keys not present in this map have no extra validation. Each validator
// returns the value to store, normalized as the key requires.
var validators = map[string]func(cmd *cobra.Command, value string) (string, error){
	"default-service":        validateService,
	"default-time-range":     validateTimeRange,
	"timezone":               validateTimezone,
	"refresh-seconds":        validateRefresh,
	"instance-cache-seconds": validateCacheSeconds,
}

func runSet(cmd *cobra.Command, args []string) {
	key := util.NormalizeKey(args[0])
	value := strings.TrimSpace(args[1])

	spec := config.Lookup(key)
	if spec == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown configuration key %q\n", args[0])
		fmt.Fprintf(cmd.ErrOrStderr(), "Valid keys: %s\n", strings.Join(config.KeyNames(), ", "))
		return
	}

	if validate, ok := validators[spec.Name]; ok {
		normalized, err := validate(cmd, value)
		if err != nil {
			return // validate already printed the error
		}
		value = normalized
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	spec.Set(cfg, value)
	if err := cfg.Save(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s set to %q\n", spec.Name, value)
}

// validateService checks that the given id is a registered service.
func validateService(cmd *cobra.Command, value string) (string, error) {
	normalized := util.NormalizeKey(value)
	known := providers.ListSupported()
	for _, s := range known {
		if s == normalized {
			return normalized, nil
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown service %q\n", value)
	fmt.Fprintf(cmd.ErrOrStderr(), "Registered services: %v\n", known)
	return "", fmt.Errorf("unknown service %q", value)
}

// validateTimeRange checks the value against the picker's labels.
func validateTimeRange(cmd *cobra.Command, value string) (string, error) {
	want := strings.ToLower(value)
	for _, opt := range timerange.Options() {
		if strings.ToLower(opt.Label) == want {
			return opt.Label, nil
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown time range %q\n", value)
	return "", fmt.Errorf("unknown time range %q", value)
}

// validateTimezone checks the value against the zone database. The
// empty string (local time) is always valid.
func validateTimezone(cmd *cobra.Command, value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if _, err := time.LoadLocation(value); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown timezone %q (use an IANA name like Europe/Berlin)\n", value)
		return "", err
	}
	return value, nil
}

// validateRefresh requires an integer number of seconds.
func validateRefresh(cmd *cobra.Command, value string) (string, error) {
	if _, err := strconv.Atoi(value); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: refresh-seconds must be an integer, got %q\n", value)
		return "", err
	}
	return value, nil
}

// validateCacheSeconds requires an integer number of seconds.
func validateCacheSeconds(cmd *cobra.Command, value string) (string, error) {
	if _, err := strconv.Atoi(value); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: instance-cache-seconds must be an integer, got %q\n", value)
		return "", err
	}
	return value, nil
}
