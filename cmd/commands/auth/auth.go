package auth

import (
	"github.com/spf13/cobra"
)

// tokenServices lists the services that authenticate with a stored API
// token. AWS services resolve credentials through the SDK chain and
// never appear here.
var tokenServices = []string{"hetzner"}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage authentication for token-based services",
		Long: `Manage authentication for token-based services.

Use this command group to store and remove API tokens in the OS
keychain. AWS credentials are not managed here; configure them with
the AWS CLI or environment variables as usual.`,
	}

	cmd.AddCommand(LoginCommand())
	cmd.AddCommand(StatusCommand())
	cmd.AddCommand(LogoutCommand())

	return cmd
}

func isTokenService(name string) bool {
	for _, s := range tokenServices {
		if s == name {
			return true
		}
	}
	return false
}
