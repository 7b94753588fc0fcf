package generator

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/solforge/solforge/internal/logger"
	"github.com/solforge/solforge/internal/process"
	"github.com/solforge/solforge/internal/toolchain"
	"github.com/stretchr/testify/require"
)

const (
	fakeDotnet = "/usr/local/bin/dotnet"
	fakeIDE    = "/opt/ide/devenv.exe"
)

// fakeRunner records invocations and reproduces the filesystem effects of
// the dotnet CLI and the IDE so generation can run without an SDK.
type fakeRunner struct {
	t     *testing.T
	calls []process.Invocation

	// fail returns a non-zero exit code to simulate a failing call.
	fail func(inv process.Invocation) int
	// block makes matching calls wait for their context to end.
	block func(inv process.Invocation) bool

	skipCreate    map[string]bool // `new` succeeds but creates nothing
	noProjectFile map[string]bool // `new` creates the dir but no .csproj

	registered []string    // project files passed to `sln add`
	references [][2]string // (project, reference) pairs
}

func newFakeRunner(t *testing.T) *fakeRunner {
	return &fakeRunner{
		t:             t,
		skipCreate:    map[string]bool{},
		noProjectFile: map[string]bool{},
	}
}

func (f *fakeRunner) Run(ctx context.Context, inv process.Invocation) (*process.Result, error) {
	f.calls = append(f.calls, inv)

	if f.block != nil && f.block(inv) {
		<-ctx.Done()
		return &process.Result{ExitCode: -1}, fmt.Errorf("%s: %w: %v", inv.Label, process.ErrTimeout, ctx.Err())
	}
	if f.fail != nil {
		if code := f.fail(inv); code != 0 {
			return &process.Result{ExitCode: code, Stderr: "simulated failure"}, nil
		}
	}

	f.simulate(inv)
	return &process.Result{}, nil
}

func (f *fakeRunner) simulate(inv process.Invocation) {
	args := inv.Args
	switch {
	case inv.Path == fakeIDE:
		// sln /Command "Project.AddNewProject <template> <dir>"
		fields := strings.Fields(args[2])
		dir := fields[2]
		f.createProject(inv.Dir, filepath.Base(dir), dir, false)
	case args[0] == "new" && args[1] == "sln":
		name := flagValue(args, "--name")
		out := flagValue(args, "--output")
		f.write(filepath.Join(out, name+SolutionExt), "Microsoft Visual Studio Solution File")
	case args[0] == "new":
		f.createProject(inv.Dir, flagValue(args, "--name"), flagValue(args, "--output"), args[1] == "classlib")
	case args[0] == "sln":
		f.registered = append(f.registered, args[3])
	case args[0] == "add":
		f.references = append(f.references, [2]string{args[1], args[3]})
	}
}

func (f *fakeRunner) createProject(root, name, out string, placeholder bool) {
	if f.skipCreate[name] {
		return
	}
	dir := filepath.Join(root, out)
	require.NoError(f.t, os.MkdirAll(dir, 0755))
	if !f.noProjectFile[name] {
		f.write(filepath.Join(dir, name+".csproj"), "<Project Sdk=\"Microsoft.NET.Sdk\" />")
	}
	if placeholder {
		f.write(filepath.Join(dir, PlaceholderFile), "public class Class1 {}")
	}
}

func (f *fakeRunner) write(path, content string) {
	require.NoError(f.t, os.WriteFile(path, []byte(content), 0644))
}

// callsTo returns the invocations of the given executable.
func (f *fakeRunner) callsTo(path string) []process.Invocation {
	var out []process.Invocation
	for _, inv := range f.calls {
		if inv.Path == path {
			out = append(out, inv)
		}
	}
	return out
}

// indexOf returns the position of the first call matching match, or -1.
func (f *fakeRunner) indexOf(match func(process.Invocation) bool) int {
	return slices.IndexFunc(f.calls, match)
}

func flagValue(args []string, flag string) string {
	i := slices.Index(args, flag)
	if i < 0 || i+1 >= len(args) {
		return ""
	}
	return args[i+1]
}

// isCreate matches `dotnet new <template> --name <name>`.
func isCreate(name string) func(process.Invocation) bool {
	return func(inv process.Invocation) bool {
		return len(inv.Args) > 1 && inv.Args[0] == "new" && inv.Args[1] != "sln" &&
			flagValue(inv.Args, "--name") == name
	}
}

// isAddReference matches `dotnet add <from> reference <to>` by project name.
func isAddReference(from, to string) func(process.Invocation) bool {
	return func(inv process.Invocation) bool {
		return len(inv.Args) == 4 && inv.Args[0] == "add" &&
			strings.Contains(inv.Args[1], from+".csproj") &&
			strings.Contains(inv.Args[3], to+".csproj")
	}
}

type testEnv struct {
	rc   *RunContext
	fake *fakeRunner
	logs *bytes.Buffer
}

// newTestEnv returns a strict run context for MyApp/net9.0 in a fresh
// temp dir with only the dotnet CLI available.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fake := newFakeRunner(t)
	var logs bytes.Buffer
	rc := &RunContext{
		Solution: SolutionContext{
			SolutionName:    "MyApp",
			RootPath:        filepath.Join(t.TempDir(), "MyApp"),
			TargetFramework: "net9.0",
		},
		Tools:  &toolchain.Availability{BuildCLIPath: fakeDotnet},
		Runner: fake,
		Log:    logger.New(&logs, logger.Debug),
		Strict: true,
	}
	return &testEnv{rc: rc, fake: fake, logs: &logs}
}

func (e *testEnv) root(elem ...string) string {
	return filepath.Join(append([]string{e.rc.Solution.RootPath}, elem...)...)
}
