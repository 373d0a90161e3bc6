// Package config provides settings and filesystem locations for ModShell.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/valleykit/modshell/internal/constants"
)

// ConfigDirectory returns the per-user configuration directory.
//
// Locations:
//   - Windows: %APPDATA%\modshell
//   - macOS: ~/Library/Application Support/modshell
//   - Linux: $XDG_CONFIG_HOME/modshell or ~/.config/modshell
func ConfigDirectory() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), constants.ConfigDirName)
		}
		return filepath.Join(homeDir, ".config", constants.ConfigDirName)
	}
	return filepath.Join(configDir, constants.ConfigDirName)
}

// LogDirectory returns the directory for rotating log files.
//
// Locations:
//   - Windows: %LOCALAPPDATA%\modshell\logs
//   - Unix: <ConfigDirectory>/logs
func LogDirectory() string {
	if runtime.GOOS == "windows" {
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return filepath.Join(os.TempDir(), constants.ConfigDirName+"-logs")
			}
			localAppData = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(localAppData, constants.ConfigDirName, "logs")
	}
	return filepath.Join(ConfigDirectory(), "logs")
}

// DefaultSettingsPath returns the location of settings.conf.
func DefaultSettingsPath() string {
	return filepath.Join(ConfigDirectory(), constants.SettingsFileName)
}
