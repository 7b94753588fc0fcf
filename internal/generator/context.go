package generator

import (
	"context"
	"path/filepath"
	"time"

	"github.com/solforge/solforge/internal/dotnet"
	"github.com/solforge/solforge/internal/logger"
	"github.com/solforge/solforge/internal/process"
	"github.com/solforge/solforge/internal/toolchain"
)

// SolutionExt is the extension of the generated solution file.
const SolutionExt = ".sln"

// SolutionContext identifies the solution being generated.
type SolutionContext struct {
	SolutionName    string
	RootPath        string
	TargetFramework string
}

// SolutionFile returns the solution file name relative to RootPath.
func (s SolutionContext) SolutionFile() string {
	return s.SolutionName + SolutionExt
}

// SolutionFilePath returns RootPath/<SolutionName>.sln.
func (s SolutionContext) SolutionFilePath() string {
	return filepath.Join(s.RootPath, s.SolutionFile())
}

// abs resolves a root-relative path.
func (s SolutionContext) abs(rel string) string {
	return filepath.Join(s.RootPath, rel)
}

// RunContext carries everything a generation step needs.
type RunContext struct {
	Solution SolutionContext
	Tools    *toolchain.Availability
	Runner   process.Runner
	Log      *logger.Logger

	// Timeout bounds each external invocation. Zero disables it.
	Timeout time.Duration

	// Strict makes reference wiring failures fatal. When false they are
	// recorded as warnings.
	Strict bool

	// CleanupOnFailure removes everything the run created when it fails.
	CleanupOnFailure bool

	journal *Journal
	summary *Summary
}

func (rc *RunContext) log() *logger.Logger {
	if rc.Log == nil {
		return logger.Discard()
	}
	return rc.Log
}

// Journal returns the record of paths created so far.
func (rc *RunContext) Journal() *Journal {
	if rc.journal == nil {
		rc.journal = &Journal{}
	}
	return rc.journal
}

// Summary returns what the run has produced so far.
func (rc *RunContext) Summary() *Summary {
	if rc.summary == nil {
		rc.summary = &Summary{SolutionPath: rc.Solution.SolutionFilePath()}
	}
	return rc.summary
}

func (rc *RunContext) cli() *dotnet.CLI {
	return dotnet.NewCLI(rc.Tools.BuildCLIPath, rc.Solution.RootPath)
}

func (rc *RunContext) ide() *dotnet.IDE {
	return dotnet.NewIDE(rc.Tools.IDEPath, rc.Solution.RootPath)
}

func (rc *RunContext) warn(format string, a ...any) {
	rc.log().Warnf(format, a...)
	rc.Summary().warn(format, a...)
}

// run executes inv under the per-invocation timeout.
func (rc *RunContext) run(ctx context.Context, inv process.Invocation) (*process.Result, error) {
	if rc.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, rc.Timeout)
		defer cancel()
	}
	return rc.Runner.Run(ctx, inv)
}

// mustRun executes inv and turns a launch failure, timeout or non-zero exit
// into an ExternalTool error.
func (rc *RunContext) mustRun(ctx context.Context, op string, inv process.Invocation) error {
	res, err := rc.run(ctx, inv)
	if err != nil {
		return externalToolError(op, err)
	}
	if !res.Succeeded() {
		return externalToolError(op, exitStatus(inv, res))
	}
	return nil
}

func (rc *RunContext) check() error {
	switch {
	case rc.Runner == nil:
		return preconditionError("checking run context", errNoRunner)
	case rc.Tools == nil:
		return preconditionError("checking run context", errNoTools)
	case rc.Solution.SolutionName == "" || rc.Solution.RootPath == "":
		return preconditionError("checking run context", errNoSolution)
	}
	return nil
}
