package config

import (
	"nathanbeddoewebdev/cloudpulse/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cloudpulse configuration",
		Long: "View and modify persistent cloudpulse settings.\n\n" +
			"Configuration is stored at ~/.config/cloudpulse/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
