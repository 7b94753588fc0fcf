package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/solforge/solforge/internal/logger"
	"github.com/solforge/solforge/internal/platform"
)

// ErrTimeout is returned when an invocation exceeds its timeout or its
// context is cancelled.
var ErrTimeout = errors.New("external command timed out")

// waitDelay bounds how long Run waits for output pipes after the child was
// killed, in case a grandchild still holds them open.
const waitDelay = 2 * time.Second

// Runner executes external invocations.
type Runner interface {
	// Run blocks until the invocation exits. The error return is for launch
	// failures and timeouts; a non-zero exit is reported in Result.
	Run(ctx context.Context, inv Invocation) (*Result, error)
}

// Invocation describes one external call. Exactly one of Command or Path
// must be set.
type Invocation struct {
	Label   string   // Short description used in log lines, e.g. "create solution"
	Command string   // Shell command line run through the interpreter
	Path    string   // Executable run directly with Args
	Args    []string // Arguments for Path
	Dir     string   // Working directory; empty means the current one
}

// String renders the invocation as a single command line for logs.
func (inv Invocation) String() string {
	if inv.Command != "" {
		return inv.Command
	}
	parts := append([]string{inv.Path}, inv.Args...)
	for i, p := range parts {
		if strings.ContainsAny(p, " \t") {
			parts[i] = `"` + p + `"`
		}
	}
	return strings.Join(parts, " ")
}

func (inv Invocation) validate() error {
	switch {
	case inv.Command == "" && inv.Path == "":
		return fmt.Errorf("invocation %q has neither a command line nor an executable", inv.Label)
	case inv.Command != "" && inv.Path != "":
		return fmt.Errorf("invocation %q has both a command line and an executable", inv.Label)
	}
	return nil
}

// Result captures the outcome of one invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Succeeded reports whether the process exited with status zero.
func (r *Result) Succeeded() bool {
	return r != nil && r.ExitCode == 0
}

// ExecRunner runs invocations as real child processes.
type ExecRunner struct {
	Log *logger.Logger

	// Timeout bounds each invocation. Zero disables it.
	Timeout time.Duration

	// Stdout and Stderr receive the child's output at debug verbosity.
	// They default to the logger's writer.
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner logging to log.
func NewExecRunner(log *logger.Logger, timeout time.Duration) *ExecRunner {
	return &ExecRunner{Log: log, Timeout: timeout}
}

// Run executes inv and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) (*Result, error) {
	if err := inv.validate(); err != nil {
		return nil, err
	}

	log := r.Log
	if log == nil {
		log = logger.Discard()
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := r.command(ctx, inv)
	cmd.Dir = inv.Dir
	cmd.WaitDelay = waitDelay

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if log.Verbosity() >= logger.Debug {
		cmd.Stdout = io.MultiWriter(r.writer(r.Stdout, log), &stdoutBuf)
		cmd.Stderr = io.MultiWriter(r.writer(r.Stderr, log), &stderrBuf)
	}

	log.Infof("start: %s", inv.Label)
	log.Debugf("exec: %s", inv)

	err := cmd.Run()

	result := &Result{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		result.ExitCode = -1
		log.Errorf("failed: %s (%v)", inv.Label, ctxErr)
		return result, fmt.Errorf("%s: %w: %v", inv.Label, ErrTimeout, ctxErr)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			log.Errorf("failed: %s (exit %d)", inv.Label, result.ExitCode)
			if stderr := strings.TrimSpace(result.Stderr); stderr != "" {
				log.Debugf("stderr: %s", stderr)
			}
			return result, nil
		}
		log.Errorf("failed: %s (%v)", inv.Label, err)
		return result, fmt.Errorf("launching %s: %w", inv.Label, err)
	}

	log.Infof("done: %s", inv.Label)
	return result, nil
}

func (r *ExecRunner) command(ctx context.Context, inv Invocation) *exec.Cmd {
	if inv.Command != "" {
		argv := platform.ShellArgv(inv.Command)
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		platform.HideWindow(cmd)
		return cmd
	}
	return exec.CommandContext(ctx, inv.Path, inv.Args...)
}

func (r *ExecRunner) writer(w io.Writer, log *logger.Logger) io.Writer {
	if w != nil {
		return w
	}
	return log.Writer()
}
