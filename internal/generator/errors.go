package generator

import (
	"errors"
	"fmt"

	"github.com/solforge/solforge/internal/process"
)

// ExitFailure is the exit code for precondition violations and external tool
// failures.
const ExitFailure = 2

// Kind classifies a generation failure.
type Kind int

const (
	// KindPrecondition covers problems detected before or between external
	// calls: a non-empty root, an invalid catalog, missing tools.
	KindPrecondition Kind = iota + 1
	// KindExternalTool covers failed, timed-out or unlaunchable external
	// invocations.
	KindExternalTool
	// KindFilesystem covers local writes the generator does itself.
	KindFilesystem
)

func (k Kind) String() string {
	switch k {
	case KindPrecondition:
		return "precondition violation"
	case KindExternalTool:
		return "external tool failure"
	case KindFilesystem:
		return "filesystem error"
	default:
		return "unknown"
	}
}

// Error is a fatal generation failure.
type Error struct {
	Kind Kind
	Code int    // Process exit code
	Op   string // Step that failed, e.g. "creating solution"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

var (
	errNoRunner   = errors.New("no process runner configured")
	errNoTools    = errors.New("tool availability has not been probed")
	errNoSolution = errors.New("solution name and root path are required")
	errNoCLI      = errors.New("the dotnet CLI is required but was not found")
)

func preconditionError(op string, err error) *Error {
	return &Error{Kind: KindPrecondition, Code: ExitFailure, Op: op, Err: err}
}

func externalToolError(op string, err error) *Error {
	return &Error{Kind: KindExternalTool, Code: ExitFailure, Op: op, Err: err}
}

func filesystemError(op string, err error) *Error {
	return &Error{Kind: KindFilesystem, Code: 1, Op: op, Err: err}
}

// passthroughError keeps the child's exit code when it is a usable status.
func passthroughError(op string, inv process.Invocation, res *process.Result) *Error {
	e := externalToolError(op, exitStatus(inv, res))
	if res.ExitCode > 0 {
		e.Code = res.ExitCode
	}
	return e
}

func exitStatus(inv process.Invocation, res *process.Result) error {
	return fmt.Errorf("%s exited with status %d", inv.Label, res.ExitCode)
}
