package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// SupportedLocales lists the locales the front-end ships translations for.
var SupportedLocales = []string{"en", "zh"}

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

var (
	// ErrInvalidLocale is returned when a locale has no translations.
	ErrInvalidLocale = errors.New("unsupported locale")

	// ErrUnknownSettingKey is returned by Get/Set for keys not in SettingKeys.
	ErrUnknownSettingKey = errors.New("unknown setting key")
)

// Settings represents the user settings file.
//
// INI format:
//
//	[ui]
//	locale = en
//
//	[logging]
//	file_logging = true
//	debug = false
type Settings struct {
	UI      UISettings
	Logging LoggingSettings
}

// UISettings contains front-end preferences.
type UISettings struct {
	// Locale is the front-end language. One of SupportedLocales.
	Locale string `ini:"locale"`
}

// LoggingSettings contains logging preferences.
type LoggingSettings struct {
	// FileLogging writes a rotating log under LogDirectory in GUI mode.
	// Default: true
	FileLogging bool `ini:"file_logging"`

	// Debug lowers the log level to debug.
	// Default: false
	Debug bool `ini:"debug"`
}

// SettingKeys lists the dotted keys accepted by Get and Set.
var SettingKeys = []string{"ui.locale", "logging.file_logging", "logging.debug"}

// NewSettings returns settings populated with defaults.
func NewSettings() *Settings {
	return &Settings{
		UI: UISettings{
			Locale: DefaultLocale,
		},
		Logging: LoggingSettings{
			FileLogging: true,
			Debug:       false,
		},
	}
}

// LoadSettings reads settings from path. A missing file yields defaults.
// An empty path means DefaultSettingsPath.
func LoadSettings(path string) (*Settings, error) {
	s := NewSettings()

	if path == "" {
		path = DefaultSettingsPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}

	iniFile, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filepath.Base(path), err)
	}

	uiSection := iniFile.Section("ui")
	s.UI.Locale = NormalizeLocale(uiSection.Key("locale").MustString(DefaultLocale))

	logSection := iniFile.Section("logging")
	s.Logging.FileLogging = logSection.Key("file_logging").MustBool(true)
	s.Logging.Debug = logSection.Key("debug").MustBool(false)

	return s, nil
}

// NormalizeLocale lowercases and trims locale. Values without translations
// become DefaultLocale.
func NormalizeLocale(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if !slices.Contains(SupportedLocales, locale) {
		return DefaultLocale
	}
	return locale
}

// Save writes settings to path atomically. An empty path means
// DefaultSettingsPath.
func (s *Settings) Save(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if path == "" {
		path = DefaultSettingsPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	iniFile := ini.Empty()

	uiSection, err := iniFile.NewSection("ui")
	if err != nil {
		return fmt.Errorf("failed to create ui section: %w", err)
	}
	uiSection.Key("locale").SetValue(s.UI.Locale)

	logSection, err := iniFile.NewSection("logging")
	if err != nil {
		return fmt.Errorf("failed to create logging section: %w", err)
	}
	logSection.Key("file_logging").SetValue(strconv.FormatBool(s.Logging.FileLogging))
	logSection.Key("debug").SetValue(strconv.FormatBool(s.Logging.Debug))

	tmpPath := path + ".tmp"
	if err := iniFile.SaveTo(tmpPath); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(tmpPath, 0600); err != nil {
			os.Remove(tmpPath)
			return fmt.Errorf("failed to set settings permissions: %w", err)
		}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// Validate checks that every field holds a supported value.
func (s *Settings) Validate() error {
	if !slices.Contains(SupportedLocales, s.UI.Locale) {
		return fmt.Errorf("%w: %q (supported: %s)", ErrInvalidLocale, s.UI.Locale, strings.Join(SupportedLocales, ", "))
	}
	return nil
}

// Get returns the string form of a dotted setting key.
func (s *Settings) Get(key string) (string, error) {
	switch key {
	case "ui.locale":
		return s.UI.Locale, nil
	case "logging.file_logging":
		return strconv.FormatBool(s.Logging.FileLogging), nil
	case "logging.debug":
		return strconv.FormatBool(s.Logging.Debug), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownSettingKey, key)
}

// Set parses value into the field named by key. The settings are left
// unchanged when parsing or validation fails.
func (s *Settings) Set(key, value string) error {
	next := *s
	switch key {
	case "ui.locale":
		next.UI.Locale = strings.ToLower(strings.TrimSpace(value))
	case "logging.file_logging":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		next.Logging.FileLogging = b
	case "logging.debug":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		next.Logging.Debug = b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSettingKey, key)
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}
