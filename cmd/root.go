package cmd

import (
	"os"

	"nathanbeddoewebdev/cloudpulse/cmd/commands/auth"
	cfgcmd "nathanbeddoewebdev/cloudpulse/cmd/commands/config"
	"nathanbeddoewebdev/cloudpulse/cmd/commands/dash"
	"nathanbeddoewebdev/cloudpulse/cmd/commands/metrics"
	"nathanbeddoewebdev/cloudpulse/internal/logging"
	"nathanbeddoewebdev/cloudpulse/internal/providers"
)

// Execute wires the command tree and runs it. Called by main.main().
func Execute() {
	providers.RegisterDefaults()

	closer, err := logging.Setup()
	if err == nil {
		defer closer.Close()
	}

	root := dash.NewCommand()
	root.Use = "cloudpulse"
	root.Long = `cloudpulse is a terminal dashboard for cloud telemetry. It polls
metrics for RDS databases, SQS queues, and Hetzner Cloud servers and
renders them as sparklines and charts you can drill into.

Running cloudpulse with no subcommand opens the dashboard.

Quick start:
  cloudpulse                        # open the dashboard
  cloudpulse auth login hetzner     # store a Hetzner API token
  cloudpulse config set aws-region eu-central-1
  cloudpulse metrics --service rds --id orders-db`

	root.AddCommand(auth.NewCommand())
	root.AddCommand(cfgcmd.NewCommand())
	root.AddCommand(metrics.NewCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
