// Package wailsapp provides the Wails-based GUI for ModShell.
package wailsapp

import (
	"context"
	"embed"
	"fmt"
	"os"
	goruntime "runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/valleykit/modshell/internal/bridge"
	"github.com/valleykit/modshell/internal/config"
	"github.com/valleykit/modshell/internal/constants"
	"github.com/valleykit/modshell/internal/logging"
	"github.com/valleykit/modshell/internal/mods"
	"github.com/valleykit/modshell/internal/version"
)

// Assets holds the embedded frontend files, passed in from main package.
var Assets embed.FS

// App is the main Wails application struct.
// All public methods are exposed to the frontend as callable functions.
type App struct {
	ctx     context.Context
	session *bridge.Session
	rt      shellRuntime
	logger  *logging.Logger

	settingsMu   sync.RWMutex
	settings     *config.Settings
	settingsPath string

	// logFile is nil when the log directory could not be created
	logFile *logging.RotatingFile

	mods *mods.Catalog
}

// NewApp creates a new Wails application instance around session.
func NewApp(session *bridge.Session, settings *config.Settings, settingsPath string, logger *logging.Logger) *App {
	return &App{
		session:      session,
		rt:           wailsRuntime{},
		logger:       logger,
		settings:     settings,
		settingsPath: settingsPath,
		mods:         mods.NewCatalog(),
	}
}

// startup is called when the app starts. The context is saved
// so we can call the Wails runtime methods.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	if a.session != nil {
		a.session.SetTerminator(bridge.TerminatorFunc(a.terminate))
	}

	a.logger.Info().Msg("Wails application started")
}

// domReady is called after the frontend DOM is ready.
func (a *App) domReady(ctx context.Context) {
	a.logger.Debug().Msg("Frontend DOM ready")
}

// shutdown is called at application termination.
func (a *App) shutdown(ctx context.Context) {
	a.logger.Info().Msg("Wails application shutting down")
	a.closeLogFile()
}

// terminate ends the process on behalf of ExitApp. A success exit goes
// through the Wails runtime so wails.Run returns and main exits with 0.
// Anything else, or a call before startup, exits the process directly.
func (a *App) terminate(code int) {
	if code != bridge.ExitSuccess || a.ctx == nil {
		a.closeLogFile()
		bridge.ProcessTerminator.Terminate(code)
		return
	}
	a.rt.Quit(a.ctx)
}

func (a *App) closeLogFile() {
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}
}

// Run launches the Wails GUI application.
func Run(session *bridge.Session) error {
	if goruntime.GOOS == "linux" {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			return fmt.Errorf("%w: DISPLAY and WAYLAND_DISPLAY are not set.\n"+
				"Use '%s --cli' for CLI mode", ErrNoDisplay, constants.BinaryName)
		}
	}

	settingsPath := config.DefaultSettingsPath()
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings, using defaults: %v\n", err)
		settings = config.NewSettings()
	}

	logFile, logErr := logging.OpenRotatingFile(config.LogDirectory(), constants.LogFileName)
	var logger *logging.Logger
	if logErr == nil {
		logFile.SetEnabled(settings.Logging.FileLogging)
		logger = logging.NewLogger("gui", logFile).Component("wails")
	} else {
		logger = logging.NewLogger("gui").Component("wails")
		logger.Warn().Err(logErr).Msg("File logging unavailable")
	}

	logging.ConfigureLevel(settings.Logging.Debug || os.Getenv(constants.DebugEnvVar) != "", zerolog.WarnLevel)

	app := NewApp(session, settings, settingsPath, logger)
	if logErr == nil {
		app.logFile = logFile
	}
	session.OnExit(func() {
		app.logger.Info().Msg("Exit requested from view")
	})

	err = wails.Run(&options.App{
		Title:     constants.AppName,
		Width:     constants.WindowWidth,
		Height:    constants.WindowHeight,
		MinWidth:  constants.WindowMinWidth,
		MinHeight: constants.WindowMinHeight,
		AssetServer: &assetserver.Options{
			Assets: Assets,
		},
		BackgroundColour: &options.RGBA{R: 248, G: 250, B: 252, A: 1},
		OnStartup:        app.startup,
		OnDomReady:       app.domReady,
		OnShutdown:       app.shutdown,
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId:               constants.SingleInstanceID,
			OnSecondInstanceLaunch: app.onSecondInstanceLaunch,
		},
		Bind: []interface{}{
			app,
		},
		Mac: &mac.Options{
			About: &mac.AboutInfo{
				Title:   constants.AppName,
				Message: fmt.Sprintf("Version %s", version.Summary()),
			},
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			ProgramName:         constants.BinaryName,
		},
	})

	if err != nil {
		app.closeLogFile()
		return fmt.Errorf("wails application error: %w", err)
	}

	return nil
}
