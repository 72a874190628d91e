package auth

import (
	"fmt"
	"os"
	"strings"

	"nathanbeddoewebdev/cloudpulse/internal/auth"

	"golang.org/x/term"

	"github.com/spf13/cobra"
)

func LoginCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login <service>",
		Short: "Store an API token for a service",
		Long: `Store an API token for a service using the local keychain.

Example:
  cloudpulse auth login hetzner`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			service := auth.NormalizeService(args[0])
			if !isTokenService(service) {
				fmt.Fprintf(cmd.ErrOrStderr(), "service %q does not use stored tokens (token services: %s)\n",
					args[0], strings.Join(tokenServices, ", "))
				return
			}

			token, err := cmd.Flags().GetString("token")
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return
			}

			token = strings.TrimSpace(token)
			if token == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Enter API token: ")
				bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return
				}
				token = strings.TrimSpace(string(bytes))
			}

			if token == "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "token cannot be empty")
				return
			}

			store := auth.DefaultStore()
			if err := store.SetToken(service, token); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved token for %s\n", service)
		},
	}

	cmd.Flags().String("token", "", "API token (optional, overrides prompt)")

	return cmd
}
