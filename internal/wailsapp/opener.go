package wailsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// openableSchemes are handed to the system browser / handler.
var openableSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"file":   true,
}

// validateOpenURL parses raw and checks it against openableSchemes.
func validateOpenURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedURL, err)
	}

	scheme := strings.ToLower(u.Scheme)
	if !openableSchemes[scheme] {
		return "", fmt.Errorf("%w: scheme %q", ErrUnsupportedURL, u.Scheme)
	}
	if (scheme == "http" || scheme == "https") && u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrUnsupportedURL)
	}
	if scheme == "mailto" && u.Opaque == "" {
		return "", fmt.Errorf("%w: missing address", ErrUnsupportedURL)
	}
	if scheme == "file" && u.Path == "" {
		return "", fmt.Errorf("%w: missing path", ErrUnsupportedURL)
	}
	return u.String(), nil
}

// OpenURL opens a link or local file with the system default handler.
func (a *App) OpenURL(raw string) error {
	target, err := validateOpenURL(raw)
	if err != nil {
		a.logger.Warn().Err(err).Str("url", raw).Msg("Refused to open URL")
		return err
	}
	if a.ctx == nil {
		return fmt.Errorf("cannot open %s before startup", target)
	}

	a.logger.Debug().Str("url", target).Msg("Opening URL")
	a.rt.BrowserOpenURL(a.ctx, target)
	return nil
}
