// Package wailsapp provides configuration-related Wails bindings.
package wailsapp

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/valleykit/modshell/internal/config"
	"github.com/valleykit/modshell/internal/constants"
	"github.com/valleykit/modshell/internal/logging"
	"github.com/valleykit/modshell/internal/version"
)

// AppInfoDTO contains application version information for the About dialog.
type AppInfoDTO struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	BuildTime   string `json:"buildTime"`
	Commit      string `json:"commit,omitempty"`
	GoVersion   string `json:"goVersion"`
	Platform    string `json:"platform"`
	LogFilePath string `json:"logFilePath,omitempty"`
}

// GetAppInfo returns version and build metadata.
func (a *App) GetAppInfo() AppInfoDTO {
	info := version.Get()
	dto := AppInfoDTO{
		Name:      constants.AppName,
		Version:   info.Version,
		BuildTime: info.BuildTime,
		Commit:    info.Commit,
		GoVersion: info.GoVersion,
		Platform:  info.Platform,
	}
	if a.logFile != nil && a.logFile.Enabled() {
		dto.LogFilePath = a.logFile.Path()
	}
	return dto
}

// SettingsDTO is the JSON-safe settings structure.
type SettingsDTO struct {
	Locale           string   `json:"locale"`
	FileLogging      bool     `json:"fileLogging"`
	DebugLogging     bool     `json:"debugLogging"`
	SupportedLocales []string `json:"supportedLocales"`
}

// GetSettings returns the current settings.
func (a *App) GetSettings() SettingsDTO {
	a.settingsMu.RLock()
	defer a.settingsMu.RUnlock()

	if a.settings == nil {
		return SettingsDTO{SupportedLocales: config.SupportedLocales}
	}
	return SettingsDTO{
		Locale:           a.settings.UI.Locale,
		FileLogging:      a.settings.Logging.FileLogging,
		DebugLogging:     a.settings.Logging.Debug,
		SupportedLocales: config.SupportedLocales,
	}
}

// UpdateSettings validates, persists and applies new settings. On error
// the previous settings stay in effect.
func (a *App) UpdateSettings(dto SettingsDTO) error {
	a.settingsMu.Lock()
	defer a.settingsMu.Unlock()

	if a.settings == nil {
		return ErrNoSettings
	}

	next := *a.settings
	next.UI.Locale = dto.Locale
	next.Logging.FileLogging = dto.FileLogging
	next.Logging.Debug = dto.DebugLogging

	if err := next.Validate(); err != nil {
		return err
	}
	if err := next.Save(a.settingsPath); err != nil {
		a.logger.Error().Err(err).Str("path", a.settingsPath).Msg("Failed to save settings")
		return fmt.Errorf("failed to save settings: %w", err)
	}

	*a.settings = next
	a.applyLogging(next.Logging)

	a.logger.Info().
		Str("locale", next.UI.Locale).
		Bool("file_logging", next.Logging.FileLogging).
		Bool("debug", next.Logging.Debug).
		Msg("Settings updated")
	return nil
}

func (a *App) applyLogging(s config.LoggingSettings) {
	if a.logFile != nil {
		a.logFile.SetEnabled(s.FileLogging)
	}
	logging.ConfigureLevel(s.Debug || os.Getenv(constants.DebugEnvVar) != "", zerolog.WarnLevel)
}
