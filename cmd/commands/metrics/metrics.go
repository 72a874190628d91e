// Package metrics implements the one-shot `cloudpulse metrics` command
// for scripting and quick checks without opening the dashboard.
package metrics

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"nathanbeddoewebdev/cloudpulse/internal/auth"
	"nathanbeddoewebdev/cloudpulse/internal/config"
	"nathanbeddoewebdev/cloudpulse/internal/domain"
	"nathanbeddoewebdev/cloudpulse/internal/fetch"
	"nathanbeddoewebdev/cloudpulse/internal/providers"
	"nathanbeddoewebdev/cloudpulse/internal/timerange"
	"nathanbeddoewebdev/cloudpulse/internal/util"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Fetch metrics for one instance and print a summary",
		Long: `Fetch metrics for one instance and print a summary.

Queries the service over the given time range at an automatically
chosen sampling period and prints current, minimum, maximum, and
average values per metric.

Examples:
  # Table output (default)
  cloudpulse metrics --service rds --id orders-db

  # Different range, JSON output for scripting
  cloudpulse metrics --service sqs --id payment-events --range "1 day" -o json`,
		RunE:         runMetrics,
		SilenceUsage: true,
	}

	cmd.Flags().String("service", "", "Service id: rds, sqs, or hetzner (required)")
	cmd.MarkFlagRequired("service")
	cmd.Flags().String("id", "", "Instance identifier (required)")
	cmd.MarkFlagRequired("id")
	cmd.Flags().String("range", "1 hour", "Time range label (e.g. \"15 minutes\", \"1 day\")")
	cmd.Flags().Int("period", 0, "Sampling period in seconds (0 picks one for the range)")
	cmd.Flags().StringP("output", "o", "table", "Output format: table or json")

	return cmd
}

func runMetrics(cmd *cobra.Command, args []string) error {
	serviceID := util.NormalizeKey(cmd.Flag("service").Value.String())
	instanceID, _ := cmd.Flags().GetString("id")
	rangeLabel, _ := cmd.Flags().GetString("range")

	if err := util.ValidateInstanceID(instanceID); err != nil {
		return err
	}

	desc, err := providers.Get(serviceID)
	if err != nil {
		return fmt.Errorf("%w (supported: %s)", err, strings.Join(providers.ListSupported(), ", "))
	}

	rng, err := lookupRange(rangeLabel)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()
	client, err := fetch.NewClient(ctx, serviceID, cfg, auth.DefaultStore())
	if err != nil {
		return err
	}

	end := time.Now()
	start := end.Add(-rng.Duration())

	// An explicit period is snapped to the nearest legal option for
	// the range; zero picks the tiered default.
	period := timerange.AutoPeriod(rng)
	if want, _ := cmd.Flags().GetInt("period"); want > 0 {
		if opt, ok := timerange.NearestPeriod(timerange.PeriodOptions(rng), want); ok {
			period = opt.Seconds
		}
	}

	var (
		raw      map[string]domain.RawSample
		fetchErr error
	)
	doFetch := func() {
		raw, fetchErr = client.FetchMetricSamples(ctx, instanceID, start, end, period)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		spinErr := spinner.New().
			Title("Fetching metrics...").
			Accessible(os.Getenv("ACCESSIBLE") != "").
			Output(cmd.ErrOrStderr()).
			Action(doFetch).
			Run()
		if spinErr != nil {
			return spinErr
		}
	} else {
		doFetch()
	}
	if fetchErr != nil {
		return fmt.Errorf("error fetching metrics: %w", fetchErr)
	}

	series := desc.Transform(raw)
	if len(series) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No datapoints in the selected range.")
		return nil
	}

	output, _ := cmd.Flags().GetString("output")
	switch output {
	case "json":
		printSeriesJSON(cmd, series)
	default:
		printSummary(cmd, series, start, end, period)
	}
	return nil
}

// lookupRange resolves a picker label to its range, case-insensitively.
func lookupRange(label string) (timerange.Range, error) {
	want := strings.ToLower(strings.TrimSpace(label))
	labels := make([]string, 0, len(timerange.Options()))
	for _, opt := range timerange.Options() {
		if strings.ToLower(opt.Label) == want {
			return opt.Range(), nil
		}
		labels = append(labels, opt.Label)
	}
	return timerange.Range{}, fmt.Errorf("unknown time range %q (valid: %s)", label, strings.Join(labels, ", "))
}
