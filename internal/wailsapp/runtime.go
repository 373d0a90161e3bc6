package wailsapp

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// shellRuntime is the subset of the Wails runtime the bindings call. Tests
// substitute a recorder.
type shellRuntime interface {
	Quit(ctx context.Context)
	BrowserOpenURL(ctx context.Context, url string)
	EventsEmit(ctx context.Context, name string, data ...interface{})
	WindowUnminimise(ctx context.Context)
	WindowShow(ctx context.Context)
}

type wailsRuntime struct{}

func (wailsRuntime) Quit(ctx context.Context) {
	runtime.Quit(ctx)
}

func (wailsRuntime) BrowserOpenURL(ctx context.Context, url string) {
	runtime.BrowserOpenURL(ctx, url)
}

func (wailsRuntime) EventsEmit(ctx context.Context, name string, data ...interface{}) {
	runtime.EventsEmit(ctx, name, data...)
}

func (wailsRuntime) WindowUnminimise(ctx context.Context) {
	runtime.WindowUnminimise(ctx)
}

func (wailsRuntime) WindowShow(ctx context.Context) {
	runtime.WindowShow(ctx)
}
