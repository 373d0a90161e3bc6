// Package wailsapp provides common error definitions.
package wailsapp

import "errors"

var (
	// ErrNoSession is returned when the bridge session is not initialized.
	ErrNoSession = errors.New("bridge session not initialized")

	// ErrNoSettings is returned when settings were not loaded.
	ErrNoSettings = errors.New("settings not loaded")

	// ErrUnsupportedURL is returned by OpenURL for unparsable input or
	// schemes the opener does not hand to the system.
	ErrUnsupportedURL = errors.New("unsupported URL")

	// ErrNoDisplay is returned when GUI mode is requested without a display.
	ErrNoDisplay = errors.New("GUI mode requires a display")
)
