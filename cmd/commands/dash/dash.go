package dash

import (
	"context"
	"fmt"
	"time"

	"nathanbeddoewebdev/cloudpulse/internal/auth"
	"nathanbeddoewebdev/cloudpulse/internal/config"
	"nathanbeddoewebdev/cloudpulse/internal/fetch"
	"nathanbeddoewebdev/cloudpulse/internal/prefs"
	"nathanbeddoewebdev/cloudpulse/internal/swrcache"
	"nathanbeddoewebdev/cloudpulse/internal/tui"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewCommand returns the dashboard command. It doubles as the root
// command so that bare `cloudpulse` opens the dashboard.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Open the interactive telemetry dashboard",
		Long: `Open the interactive telemetry dashboard.

Pick a service, drill into an instance, and watch its metrics refresh.
Time range, sampling period, and timezone are adjustable per instance
and remembered across sessions.`,
		RunE:         runDash,
		SilenceUsage: true,
	}
	return cmd
}

func runDash(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	opts := tui.Options{
		Config: cfg,
		Clients: func(ctx context.Context, serviceID string) (fetch.Client, error) {
			return fetch.NewClient(ctx, serviceID, cfg, auth.DefaultStore())
		},
		Cache: listingCache(cfg),
	}

	// View preferences are best effort. A broken database should not
	// keep the dashboard from opening.
	repo, err := prefs.Open()
	if err != nil {
		log.Warn("view preferences unavailable", "error", err)
	} else {
		opts.Prefs = repo
		defer repo.Close()
	}

	return tui.Run(opts)
}

// listingCache builds the instance-listing cache from the configured
// freshness window. Negative disables caching; the nil cache passes
// reads straight through.
func listingCache(cfg *config.Config) *swrcache.Cache {
	if cfg.InstanceCacheSeconds < 0 {
		return nil
	}
	return swrcache.Default(time.Duration(cfg.InstanceCacheSeconds)*time.Second, 0)
}
