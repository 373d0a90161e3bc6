// Package constants holds application identity and window defaults shared by
// the GUI and CLI.
package constants

const (
	// AppName is the display name used for the window title and About dialog.
	AppName = "ModShell"

	// BinaryName is the executable and cobra root command name.
	BinaryName = "modshell"

	// ConfigDirName is the directory under the user config dir.
	ConfigDirName = "modshell"

	// SettingsFileName is the INI file holding user settings.
	SettingsFileName = "settings.conf"

	// LogFileName is the rotating log file written in GUI mode.
	LogFileName = "modshell.log"

	// SingleInstanceID identifies the Wails single-instance lock.
	SingleInstanceID = "com.valleykit.modshell"

	// DebugEnvVar forces debug logging when set to any non-empty value.
	DebugEnvVar = "MODSHELL_DEBUG"
)

// Window defaults
const (
	WindowWidth     = 1100
	WindowHeight    = 720
	WindowMinWidth  = 800
	WindowMinHeight = 560
)

// Log rotation
const (
	LogMaxSizeMB  = 10
	LogMaxBackups = 5
	LogMaxAgeDays = 30
)

// Front-end event names
const (
	EventSecondInstance = "app:second-instance"
)
