// Package bridge holds the operations the desktop shell exposes to its view
// layer and the process-lifetime state they read.
package bridge

import "sync"

// CLIArgs is the ordered list of arguments the operating system supplied at
// launch. The JSON shape matches what the front-end expects: {"args": [...]}.
type CLIArgs struct {
	Args []string `json:"args" yaml:"args"`
}

// Clone returns a deep copy. The copy's Args is never nil so it always
// serializes as a JSON array.
func (c CLIArgs) Clone() CLIArgs {
	out := make([]string, len(c.Args))
	copy(out, c.Args)
	return CLIArgs{Args: out}
}

// StartupArgs guards the captured launch arguments.
//
// A Go mutex is never left locked by a panic when released with defer, so
// the guard tracks poisoning itself: if a reader panics while holding the
// lock the value is treated as inconsistent and every later read fails with
// a StateUnavailableError.
type StartupArgs struct {
	mu       sync.Mutex
	args     CLIArgs
	poisoned bool
}

// NewStartupArgs captures a private copy of args.
func NewStartupArgs(args []string) *StartupArgs {
	return &StartupArgs{args: CLIArgs{Args: args}.Clone()}
}

// With runs fn with a copy of the arguments while the guard is held. The
// guard is always released. If fn panics the guard is marked poisoned and
// the panic keeps unwinding.
func (s *StartupArgs) With(fn func(CLIArgs)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		return &StateUnavailableError{
			Message: "startup arguments unavailable: guard poisoned by a panic in an earlier holder",
		}
	}

	completed := false
	defer func() {
		if !completed {
			s.poisoned = true
		}
	}()
	fn(s.args.Clone())
	completed = true
	return nil
}

// Get returns a copy of the captured arguments, or a StateUnavailableError
// if the guard is poisoned. It never returns both.
func (s *StartupArgs) Get() (CLIArgs, error) {
	var out CLIArgs
	if err := s.With(func(a CLIArgs) { out = a }); err != nil {
		return CLIArgs{}, err
	}
	return out, nil
}

// Poisoned reports whether an earlier holder panicked.
func (s *StartupArgs) Poisoned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poisoned
}
