//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/solforge/solforge/internal/logger"
)

// dotnetStub stands in for the dotnet CLI. It reproduces the filesystem
// effects solforge relies on and appends every argv to $STUB_LOG.
//
// STUB_FAIL_TEMPLATE makes `new <template>` exit 7 for that template.
// STUB_SLEEP delays every call except --version.
const dotnetStub = `#!/bin/sh
[ -n "$STUB_LOG" ] && echo "$*" >> "$STUB_LOG"
if [ "$1" = "--version" ]; then
  echo "9.0.100"
  exit 0
fi
[ -n "$STUB_SLEEP" ] && sleep "$STUB_SLEEP"
case "$1" in
  new)
    tmpl="$2"
    shift 2
    name=""
    out=""
    while [ $# -gt 0 ]; do
      case "$1" in
        --name) name="$2"; shift 2 ;;
        --output) out="$2"; shift 2 ;;
        *) shift ;;
      esac
    done
    if [ "$tmpl" = "sln" ]; then
      mkdir -p "$out" && echo "Microsoft Visual Studio Solution File" > "$out/$name.sln"
      exit $?
    fi
    if [ "$tmpl" = "$STUB_FAIL_TEMPLATE" ]; then
      echo "template failure" >&2
      exit 7
    fi
    mkdir -p "$out" || exit 1
    echo '<Project Sdk="Microsoft.NET.Sdk">' > "$out/$name.csproj"
    if [ "$tmpl" = "classlib" ]; then
      echo "public class Class1 {}" > "$out/Class1.cs"
    fi
    exit 0
    ;;
  sln)
    [ -f "$2" ] && [ -f "$4" ] || exit 1
    echo "$4" >> "$2"
    ;;
  add)
    [ -f "$2" ] && [ -f "$4" ] || exit 1
    echo "<ProjectReference Include=\"$4\" />" >> "$2"
    ;;
  *)
    exit 64
    ;;
esac
`

// failingIDE is an IDE automation stand-in that always fails.
const failingIDE = `#!/bin/sh
echo "automation unavailable" >&2
exit 1
`

// testEnv holds paths to an isolated generation sandbox.
type testEnv struct {
	BinDir  string // Prepended to PATH, holds the dotnet stub
	WorkDir string // Parent of the solution root
	LogFile string // argv log written by the stub
	Logs    *bytes.Buffer
	Log     *logger.Logger
}

// setupTestEnv installs the dotnet stub on PATH and isolates the config
// directory.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("the dotnet stub is a POSIX shell script")
	}

	env := &testEnv{
		BinDir:  t.TempDir(),
		WorkDir: t.TempDir(),
		Logs:    &bytes.Buffer{},
	}
	env.LogFile = filepath.Join(env.BinDir, "calls.log")
	env.Log = logger.New(env.Logs, logger.Debug)

	writeExecutable(t, filepath.Join(env.BinDir, "dotnet"), dotnetStub)
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("STUB_LOG", env.LogFile)
	t.Setenv("SOLFORGE_CONFIG_DIR", t.TempDir())

	return env
}

// Root returns the solution root for name.
func (e *testEnv) Root(name string) string {
	return filepath.Join(e.WorkDir, name)
}

// Calls returns the argv lines the stub recorded, excluding --version.
func (e *testEnv) Calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if err != nil {
		t.Fatalf("reading stub log: %v", err)
	}
	var calls []string
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line != "" && line != "--version" {
			calls = append(calls, line)
		}
	}
	return calls
}

func writeExecutable(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory to exist: %s (error: %v)", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory, but it is a file", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("expected %s to contain %q, got:\n%s", path, substr, data)
	}
}

func assertFileNotContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if strings.Contains(string(data), substr) {
		t.Errorf("expected %s not to contain %q, got:\n%s", path, substr, data)
	}
}
