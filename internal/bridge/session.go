package bridge

import "sync"

// Session is the explicit context object handed to whichever layer
// dispatches bridge operations (the Wails window or the headless CLI).
// There is one per process, created during bootstrap before any operation
// is reachable.
type Session struct {
	args *StartupArgs

	mu         sync.Mutex
	terminator Terminator
	onExit     []func()
}

// NewSession captures args as the process's StartupArgs. A nil terminator
// selects ProcessTerminator.
func NewSession(args []string, terminator Terminator) *Session {
	if terminator == nil {
		terminator = ProcessTerminator
	}
	return &Session{
		args:       NewStartupArgs(args),
		terminator: terminator,
	}
}

// Greet implements the greet operation.
func (s *Session) Greet(name string) string {
	return Greet(name)
}

// CLIArgs implements the get_cli_args operation.
func (s *Session) CLIArgs() (CLIArgs, error) {
	return s.args.Get()
}

// StartupArgs exposes the guarded state, mainly for tests and diagnostics.
func (s *Session) StartupArgs() *StartupArgs {
	return s.args
}

// SetTerminator replaces the terminator. The GUI swaps in a runtime-aware
// terminator once the window context exists.
func (s *Session) SetTerminator(t Terminator) {
	if t == nil {
		t = ProcessTerminator
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terminator = t
}

// OnExit registers fn to run, in registration order, before the process is
// terminated by Exit.
func (s *Session) OnExit(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExit = append(s.onExit, fn)
}

// Exit implements the exit_app operation: run exit hooks, then terminate
// with ExitSuccess.
func (s *Session) Exit() {
	s.mu.Lock()
	hooks := append([]func(){}, s.onExit...)
	t := s.terminator
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
	t.Terminate(ExitSuccess)
}
