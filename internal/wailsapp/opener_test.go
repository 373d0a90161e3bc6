package wailsapp

import (
	"context"
	"errors"
	"testing"
)

func TestValidateOpenURL(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{"https://example.com/mods", false},
		{"  http://example.com  ", false},
		{"HTTPS://example.com", false},
		{"mailto:someone@example.com", false},
		{"file:///home/user/Mods", false},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"https://", true},
		{"mailto:", true},
		{"not a url", true},
		{"", true},
		{"://bad", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			_, err := validateOpenURL(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedURL) {
					t.Errorf("expected ErrUnsupportedURL, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestOpenURL(t *testing.T) {
	app, rt, _ := newTestApp(t, nil)
	app.startup(context.Background())

	if err := app.OpenURL("https://example.com"); err != nil {
		t.Fatalf("OpenURL: %v", err)
	}
	if err := app.OpenURL("javascript:void(0)"); err == nil {
		t.Fatal("expected refusal")
	}

	if len(rt.opened) != 1 || rt.opened[0] != "https://example.com" {
		t.Errorf("opened = %v", rt.opened)
	}
}

func TestOpenURLBeforeStartup(t *testing.T) {
	app, rt, _ := newTestApp(t, nil)

	if err := app.OpenURL("https://example.com"); err == nil {
		t.Fatal("expected error before startup")
	}
	if len(rt.opened) != 0 {
		t.Errorf("opened = %v", rt.opened)
	}
}
