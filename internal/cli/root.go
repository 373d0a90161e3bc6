// Package cli provides the headless command-line interface for modshell.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/valleykit/modshell/internal/bridge"
	"github.com/valleykit/modshell/internal/constants"
	"github.com/valleykit/modshell/internal/logging"
	"github.com/valleykit/modshell/internal/version"
)

var (
	// Global flags
	settingsFile string
	verbose      bool

	// Global logger
	logger *logging.Logger
)

// NewRootCmd creates the root command for CLI mode. Every subcommand reads
// startup state through session.
func NewRootCmd(session *bridge.Session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.BinaryName,
		Short: constants.AppName + " - desktop shell with a headless CLI",
		Long: constants.AppName + ` ` + version.Summary() + `

Run without arguments on a machine with a display to open the window.
Use the subcommands below to call the same backend operations headlessly.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefaultCLILogger()
			logging.ConfigureLevel(verbose || os.Getenv(constants.DebugEnvVar) != "", zerolog.WarnLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&settingsFile, "settings", "s", "", "Settings file path (default: user config dir)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (shows debug messages)")

	// Mode selectors are consumed by main; accept them here so they are not
	// reported as unknown flags.
	rootCmd.PersistentFlags().Bool("cli", false, "Force CLI mode")
	rootCmd.PersistentFlags().Bool("gui", false, "Force GUI mode")
	_ = rootCmd.PersistentFlags().MarkHidden("cli")
	_ = rootCmd.PersistentFlags().MarkHidden("gui")

	rootCmd.Version = version.Summary()
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	AddCommands(rootCmd, session)
	return rootCmd
}

// AddCommands adds all subcommands to the root command.
func AddCommands(rootCmd *cobra.Command, session *bridge.Session) {
	rootCmd.AddCommand(newGreetCmd(session))
	rootCmd.AddCommand(newArgsCmd(session))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
}

// Execute runs the CLI against the process arguments.
func Execute(session *bridge.Session) error {
	return ExecuteArgs(session, os.Args[1:])
}

// ExecuteArgs runs the CLI with explicit arguments.
func ExecuteArgs(session *bridge.Session, args []string) error {
	rootCmd := NewRootCmd(session)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// GetLogger returns the global CLI logger.
func GetLogger() *logging.Logger {
	if logger == nil {
		logger = logging.NewDefaultCLILogger()
	}
	return logger
}
