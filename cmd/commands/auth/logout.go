package auth

import (
	"errors"
	"fmt"
	"os"

	"nathanbeddoewebdev/cloudpulse/internal/auth"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func LogoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout <service>",
		Short: "Remove a stored API token",
		Long: `Remove a stored API token from the local keychain.

Asks for confirmation when run interactively. Use --yes to skip the
prompt in scripts.

Example:
  cloudpulse auth logout hetzner`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			service := auth.NormalizeService(args[0])
			if !isTokenService(service) {
				fmt.Fprintf(cmd.ErrOrStderr(), "service %q does not use stored tokens\n", args[0])
				return
			}

			skipPrompt, _ := cmd.Flags().GetBool("yes")
			if !skipPrompt && term.IsTerminal(int(os.Stdin.Fd())) {
				confirmed := false
				form := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Remove the stored token for %s?", service)).
						Value(&confirmed),
				))
				if err := form.Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return
					}
					fmt.Fprintln(cmd.ErrOrStderr(), err)
					return
				}
				if !confirmed {
					return
				}
			}

			store := auth.DefaultStore()
			if err := store.DeleteToken(service); err != nil {
				if errors.Is(err, auth.ErrTokenNotFound) {
					fmt.Fprintf(cmd.OutOrStdout(), "No token stored for %s\n", service)
					return
				}
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed token for %s\n", service)
		},
	}

	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return cmd
}
