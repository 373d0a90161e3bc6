package wailsapp

import (
	"context"
	"reflect"
	"testing"

	"github.com/wailsapp/wails/v2/pkg/options"

	"github.com/valleykit/modshell/internal/constants"
)

func TestSecondInstanceFocusesAndEmits(t *testing.T) {
	app, rt, _ := newTestApp(t, []string{"modshell", "--first"})
	app.startup(context.Background())

	app.onSecondInstanceLaunch(options.SecondInstanceData{
		Args:             []string{"--second"},
		WorkingDirectory: "/tmp",
	})

	if rt.unminims != 1 || rt.shows != 1 {
		t.Errorf("unminimise=%d show=%d, want 1/1", rt.unminims, rt.shows)
	}
	if len(rt.events) != 1 || rt.events[0].name != constants.EventSecondInstance {
		t.Fatalf("events = %+v", rt.events)
	}
	dto, ok := rt.events[0].data[0].(SecondInstanceDTO)
	if !ok {
		t.Fatalf("event payload type %T", rt.events[0].data[0])
	}
	if !reflect.DeepEqual(dto.Args, []string{"--second"}) || dto.WorkingDirectory != "/tmp" {
		t.Errorf("payload = %+v", dto)
	}

	// The first instance keeps its own startup arguments
	args, err := app.GetCLIArgs()
	if err != nil {
		t.Fatalf("GetCLIArgs: %v", err)
	}
	if !reflect.DeepEqual(args.Args, []string{"modshell", "--first"}) {
		t.Errorf("startup args changed: %v", args.Args)
	}
}

func TestSecondInstanceBeforeStartup(t *testing.T) {
	app, rt, _ := newTestApp(t, nil)

	app.onSecondInstanceLaunch(options.SecondInstanceData{})

	if len(rt.events) != 0 || rt.shows != 0 {
		t.Errorf("runtime used before startup: %+v", rt)
	}
}
