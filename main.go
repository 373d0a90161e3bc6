// ModShell - desktop shell with a headless CLI.
//
// - No args + display available → GUI mode
// - No args + no display → CLI help
// - --gui → GUI mode
// - --cli → CLI mode (force)
// - CLI subcommands/flags → CLI mode
//
// Build with: wails build
package main

import (
	"embed"
	"fmt"
	"os"
	"runtime"
	"slices"

	"github.com/valleykit/modshell/internal/bridge"
	"github.com/valleykit/modshell/internal/cli"
	"github.com/valleykit/modshell/internal/wailsapp"
)

//go:embed all:frontend/dist
var assets embed.FS

// cliPatterns are subcommands and flags that select CLI mode.
var cliPatterns = []string{
	// Subcommands
	"greet", "args", "version", "config", "completion", "help",
	// Flags
	"--help", "-h", "--version",
}

func main() {
	// Startup arguments are captured before any operation is reachable.
	session := bridge.NewSession(os.Args, bridge.ProcessTerminator)

	if isCLIMode(os.Args) {
		if err := cli.Execute(session); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	wailsapp.Assets = assets
	if err := wailsapp.Run(session); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isCLIMode determines whether to run in CLI mode based on arguments and
// environment.
//
// CLI mode when:
//   - --cli flag is present (force CLI mode)
//   - CLI subcommands or flags are present
//   - No display available (DISPLAY/WAYLAND_DISPLAY not set on Linux)
//
// GUI mode when:
//   - --gui flag is present (force GUI mode)
//   - A display is available and no CLI subcommand was given. Other
//     arguments (file paths, links) are left for the window to read.
func isCLIMode(args []string) bool {
	if slices.Contains(args, "--cli") {
		return true
	}
	if slices.Contains(args, "--gui") {
		return false
	}

	if len(args) > 1 {
		for _, arg := range args[1:] {
			if slices.Contains(cliPatterns, arg) {
				return true
			}
		}
	}

	return !hasDisplay()
}

func hasDisplay() bool {
	if runtime.GOOS == "linux" {
		return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}
