package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/valleykit/modshell/internal/bridge"
)

// newGreetCmd creates the 'greet' command.
func newGreetCmd(session *bridge.Session) *cobra.Command {
	return &cobra.Command{
		Use:   "greet NAME...",
		Short: "Print a greeting from the backend",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), session.Greet(strings.Join(args, " ")))
			return err
		},
	}
}
