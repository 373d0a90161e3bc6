package wailsapp

import (
	"github.com/wailsapp/wails/v2/pkg/options"

	"github.com/valleykit/modshell/internal/constants"
)

// SecondInstanceDTO is emitted to the view when a second launch is
// redirected to this window.
type SecondInstanceDTO struct {
	Args             []string `json:"args"`
	WorkingDirectory string   `json:"workingDirectory"`
}

// onSecondInstanceLaunch focuses the existing window and forwards the
// second launch's arguments to the view. The first instance's startup
// arguments are not modified.
func (a *App) onSecondInstanceLaunch(data options.SecondInstanceData) {
	a.logger.Info().
		Strs("args", data.Args).
		Str("cwd", data.WorkingDirectory).
		Msg("Second instance launch redirected")

	if a.ctx == nil {
		return
	}

	args := data.Args
	if args == nil {
		args = []string{}
	}

	a.rt.WindowUnminimise(a.ctx)
	a.rt.WindowShow(a.ctx)
	a.rt.EventsEmit(a.ctx, constants.EventSecondInstance, SecondInstanceDTO{
		Args:             args,
		WorkingDirectory: data.WorkingDirectory,
	})
}
