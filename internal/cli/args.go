package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/valleykit/modshell/internal/bridge"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// newArgsCmd creates the 'args' command.
func newArgsCmd(session *bridge.Session) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "args",
		Short: "Show the arguments this process was started with",
		Long: `Show the arguments captured at startup, in the order the operating
system supplied them. The first entry is the program path.

Formats:
  text - one argument per line (default)
  json - {"args": [...]}, the same shape the window receives
  yaml - args: [...]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			captured, err := session.CLIArgs()
			if err != nil {
				GetLogger().Error().Err(err).Msg("Failed to read startup arguments")
				return err
			}
			return writeArgs(cmd.OutOrStdout(), captured, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", FormatText, "Output format: text, json, yaml")
	return cmd
}

func writeArgs(w io.Writer, args bridge.CLIArgs, format string) error {
	switch format {
	case FormatText:
		for _, a := range args.Args {
			if _, err := fmt.Fprintln(w, a); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(args)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(args)
	default:
		return fmt.Errorf("unknown format %q (expected text, json or yaml)", format)
	}
}
