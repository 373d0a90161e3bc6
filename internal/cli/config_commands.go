// Package cli provides configuration management commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/valleykit/modshell/internal/config"
)

// newConfigCmd creates the 'config' command group.
func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage modshell settings",
		Long: `Settings management commands for modshell.

Commands:
  show - Display current settings
  get  - Print a single setting
  set  - Change a setting
  path - Show settings file path`,
	}

	configCmd.AddCommand(newConfigShowCmd())
	configCmd.AddCommand(newConfigGetCmd())
	configCmd.AddCommand(newConfigSetCmd())
	configCmd.AddCommand(newConfigPathCmd())

	return configCmd
}

func resolveSettingsPath() string {
	if settingsFile != "" {
		return settingsFile
	}
	return config.DefaultSettingsPath()
}

// newConfigShowCmd creates the 'config show' command.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.LoadSettings(resolveSettingsPath())
			if err != nil {
				return err
			}
			for _, key := range config.SettingKeys {
				value, err := s.Get(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", key, value)
			}
			return nil
		},
	}
}

// newConfigGetCmd creates the 'config get' command.
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "get KEY",
		Short:     "Print a single setting",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.SettingKeys,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := config.LoadSettings(resolveSettingsPath())
			if err != nil {
				return err
			}
			value, err := s.Get(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

// newConfigSetCmd creates the 'config set' command.
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change a setting",
		Long: `Change a setting and save it.

Keys:
  ui.locale             en or zh
  logging.file_logging  true or false
  logging.debug         true or false`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := resolveSettingsPath()
			s, err := config.LoadSettings(path)
			if err != nil {
				return err
			}
			if err := s.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := s.Save(path); err != nil {
				return err
			}
			GetLogger().Info().Str("key", args[0]).Str("path", path).Msg("Setting saved")
			return nil
		},
	}
}

// newConfigPathCmd creates the 'config path' command.
func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show settings file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), resolveSettingsPath())
			return err
		},
	}
}
