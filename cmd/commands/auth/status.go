package auth

import (
	"errors"
	"fmt"

	"nathanbeddoewebdev/cloudpulse/internal/auth"

	"github.com/spf13/cobra"
)

func StatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which services have stored tokens",
		Long: `Show which token-based services have stored API tokens.

Example:
  cloudpulse auth status`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := auth.DefaultStore()

			for _, service := range tokenServices {
				_, err := store.GetToken(service)
				switch {
				case err == nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: logged in\n", service)
				case errors.Is(err, auth.ErrTokenNotFound):
					fmt.Fprintf(cmd.OutOrStdout(), "%s: not logged in\n", service)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s: error (%v)\n", service, err)
				}
			}
			return nil
		},
		SilenceUsage: true,
	}

	return cmd
}
