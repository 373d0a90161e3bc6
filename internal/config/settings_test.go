package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestNewSettings(t *testing.T) {
	s := NewSettings()

	if s.UI.Locale != "en" {
		t.Errorf("Expected Locale=en, got %s", s.UI.Locale)
	}
	if s.Logging.FileLogging != true {
		t.Errorf("Expected FileLogging=true, got %v", s.Logging.FileLogging)
	}
	if s.Logging.Debug != false {
		t.Errorf("Expected Debug=false, got %v", s.Logging.Debug)
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.conf")

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.UI.Locale != DefaultLocale {
		t.Errorf("Expected default locale, got %s", s.UI.Locale)
	}
}

func TestSettingsSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.conf")

	s := NewSettings()
	s.UI.Locale = "zh"
	s.Logging.FileLogging = false
	s.Logging.Debug = true

	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat failed: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("Expected 0600 permissions, got %o", perm)
		}
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}

	loaded, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if *loaded != *s {
		t.Errorf("Loaded %+v, want %+v", *loaded, *s)
	}
}

func TestLoadSettingsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.conf")
	if err := os.WriteFile(path, []byte("[ui]\nlocale = zh\n"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.UI.Locale != "zh" {
		t.Errorf("Expected zh, got %s", s.UI.Locale)
	}
	if !s.Logging.FileLogging {
		t.Error("Expected FileLogging default true for missing key")
	}
}

func TestSettingsSaveRejectsInvalidLocale(t *testing.T) {
	s := NewSettings()
	s.UI.Locale = "fr"

	err := s.Save(filepath.Join(t.TempDir(), "settings.conf"))
	if !errors.Is(err, ErrInvalidLocale) {
		t.Errorf("Expected ErrInvalidLocale, got %v", err)
	}
}

func TestSettingsGetSet(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    string
		wantErr error
	}{
		{"ui.locale", "ZH ", "zh", nil},
		{"ui.locale", "de", "en", ErrInvalidLocale},
		{"logging.file_logging", "false", "false", nil},
		{"logging.debug", "1", "true", nil},
		{"logging.debug", "maybe", "false", nil},
		{"window.width", "10", "", ErrUnknownSettingKey},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			s := NewSettings()
			err := s.Set(tt.key, tt.value)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Set error = %v, want %v", err, tt.wantErr)
				}
			case tt.value == "maybe":
				if err == nil || !strings.Contains(err.Error(), "invalid value") {
					t.Fatalf("expected parse error, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("Set failed: %v", err)
				}
			}

			if tt.wantErr == ErrUnknownSettingKey {
				return
			}
			got, err := s.Get(tt.key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("Get(%s) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestDefaultSettingsPath(t *testing.T) {
	path := DefaultSettingsPath()
	if filepath.Base(path) != "settings.conf" {
		t.Errorf("unexpected settings file name: %s", path)
	}
	if !strings.HasPrefix(path, ConfigDirectory()) {
		t.Errorf("settings path %s not under %s", path, ConfigDirectory())
	}
}

func TestLoadSettingsUnsupportedLocaleFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.conf")
	content := "[ui]\nlocale = fr\n\n[logging]\ndebug = false\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings failed: %v", err)
	}
	if s.UI.Locale != DefaultLocale {
		t.Errorf("Expected fallback to %s, got %s", DefaultLocale, s.UI.Locale)
	}

	// Changing an unrelated key must still validate and save
	if err := s.Set("logging.debug", "true"); err != nil {
		t.Fatalf("Set failed after loading unsupported locale: %v", err)
	}
	if err := s.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := map[string]string{
		"en":   "en",
		" ZH ": "zh",
		"fr":   DefaultLocale,
		"":     DefaultLocale,
	}
	for in, want := range tests {
		if got := NormalizeLocale(in); got != want {
			t.Errorf("NormalizeLocale(%q) = %q, want %q", in, got, want)
		}
	}
}
