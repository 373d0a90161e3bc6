package bridge

import "os"

// ExitSuccess is the status passed to a Terminator by Session.Exit.
const ExitSuccess = 0

// Terminator ends the process. Implementations are not expected to return.
type Terminator interface {
	Terminate(code int)
}

// TerminatorFunc adapts a function to the Terminator interface.
type TerminatorFunc func(code int)

// Terminate calls f(code).
func (f TerminatorFunc) Terminate(code int) {
	f(code)
}

// ProcessTerminator exits the process directly. Deferred functions do not run.
var ProcessTerminator Terminator = TerminatorFunc(os.Exit)
