package wailsapp

import (
	"github.com/valleykit/modshell/internal/bridge"
)

// Greet returns a greeting for name.
func (a *App) Greet(name string) string {
	return bridge.Greet(name)
}

// GetCLIArgs returns the arguments the process was launched with. The
// promise is rejected with the state-unavailable message if the arguments
// cannot be read.
func (a *App) GetCLIArgs() (bridge.CLIArgs, error) {
	if a.session == nil {
		return bridge.CLIArgs{}, ErrNoSession
	}

	args, err := a.session.CLIArgs()
	if err != nil {
		a.logger.Error().Err(err).Msg("Failed to read startup arguments")
		return bridge.CLIArgs{}, err
	}
	return args, nil
}

// ExitApp terminates the application with exit status 0.
func (a *App) ExitApp() {
	if a.session == nil {
		bridge.ProcessTerminator.Terminate(bridge.ExitSuccess)
		return
	}
	a.session.Exit()
}
