package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/solforge/solforge/internal/process"
)

func foundAt(path string) func(string) (string, error) {
	return func(string) (string, error) { return path, nil }
}

func notFound(string) (string, error) {
	return "", errors.New("executable file not found in $PATH")
}

// writeIDE creates a fake IDE executable and returns its path.
func writeIDE(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devenv.exe")
	if err := os.WriteFile(path, []byte("stub"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

type versionRunner struct {
	stdout string
	code   int
	calls  int
}

func (r *versionRunner) Run(_ context.Context, inv process.Invocation) (*process.Result, error) {
	r.calls++
	return &process.Result{ExitCode: r.code, Stdout: r.stdout}, nil
}

func TestProbe_BothPresent(t *testing.T) {
	ide := writeIDE(t)
	p := &Prober{LookPath: foundAt("/usr/bin/dotnet")}

	avail, err := p.Probe(context.Background(), ide)
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	if !avail.BuildCLIPresent() || avail.BuildCLIPath != "/usr/bin/dotnet" {
		t.Errorf("BuildCLIPath = %q", avail.BuildCLIPath)
	}
	if avail.IDEPath != ide {
		t.Errorf("IDEPath = %q, want %q", avail.IDEPath, ide)
	}
}

func TestProbe_NoIDEConfiguredDoesNotPrompt(t *testing.T) {
	var out bytes.Buffer
	p := &Prober{
		LookPath:         foundAt("/usr/bin/dotnet"),
		In:               strings.NewReader("/should/not/be/read\n"),
		Out:              &out,
		MaxPromptRetries: 1,
	}

	avail, err := p.Probe(context.Background(), "")
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	if avail.HasIDE() {
		t.Error("IDE should be disabled")
	}
	if out.Len() != 0 {
		t.Errorf("unexpected prompt: %q", out.String())
	}
}

func TestProbe_PromptAcceptsAlternatePath(t *testing.T) {
	ide := writeIDE(t)
	var out bytes.Buffer
	p := &Prober{
		LookPath:         foundAt("/usr/bin/dotnet"),
		In:               strings.NewReader(ide + "\n"),
		Out:              &out,
		MaxPromptRetries: 1,
	}

	avail, err := p.Probe(context.Background(), filepath.Join(t.TempDir(), "missing.exe"))
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	if avail.IDEPath != ide {
		t.Errorf("IDEPath = %q, want %q", avail.IDEPath, ide)
	}
	if !strings.Contains(out.String(), "Enter the path to the IDE executable") {
		t.Errorf("prompt not shown: %q", out.String())
	}
}

func TestProbe_PromptQuotedPath(t *testing.T) {
	ide := writeIDE(t)
	p := &Prober{
		LookPath:         foundAt("/usr/bin/dotnet"),
		In:               strings.NewReader(`"` + ide + `"` + "\n"),
		MaxPromptRetries: 1,
	}

	avail, err := p.Probe(context.Background(), "/missing/devenv.exe")
	if err != nil {
		t.Fatal(err)
	}
	if avail.IDEPath != ide {
		t.Errorf("IDEPath = %q, want %q", avail.IDEPath, ide)
	}
}

func TestProbe_BlankAnswerDisablesIDE(t *testing.T) {
	p := &Prober{
		LookPath:         foundAt("/usr/bin/dotnet"),
		In:               strings.NewReader("\n"),
		MaxPromptRetries: 1,
	}

	avail, err := p.Probe(context.Background(), "/missing/devenv.exe")
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	if avail.HasIDE() {
		t.Error("blank answer should disable the IDE")
	}
}

func TestProbe_RetryBound(t *testing.T) {
	ide := writeIDE(t)
	var out bytes.Buffer
	// The valid path comes third; only two prompts are allowed.
	input := "/bad/one\n/bad/two\n" + ide + "\n"
	p := &Prober{
		LookPath:         foundAt("/usr/bin/dotnet"),
		In:               strings.NewReader(input),
		Out:              &out,
		MaxPromptRetries: 2,
	}

	avail, err := p.Probe(context.Background(), "/missing/devenv.exe")
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	if avail.HasIDE() {
		t.Errorf("IDE should stay disabled after %d retries, got %q", p.MaxPromptRetries, avail.IDEPath)
	}
	if n := strings.Count(out.String(), "Enter the path"); n != 2 {
		t.Errorf("prompted %d times, want 2", n)
	}
}

func TestProbe_NoToolsIsFatal(t *testing.T) {
	p := &Prober{
		LookPath:         notFound,
		In:               strings.NewReader("\n"),
		MaxPromptRetries: 1,
	}

	_, err := p.Probe(context.Background(), "")
	if !errors.Is(err, ErrNoTools) {
		t.Fatalf("Probe() error = %v, want ErrNoTools", err)
	}
}

func TestProbe_NoCLIButIDEFromPrompt(t *testing.T) {
	ide := writeIDE(t)
	p := &Prober{
		LookPath:         notFound,
		In:               strings.NewReader(ide + "\n"),
		MaxPromptRetries: 1,
	}

	avail, err := p.Probe(context.Background(), "")
	if err != nil {
		t.Fatalf("Probe() error: %v", err)
	}
	if avail.BuildCLIPresent() || !avail.HasIDE() {
		t.Errorf("unexpected availability %+v", avail)
	}
}

func TestProbe_DirectoryIsNotAnIDE(t *testing.T) {
	p := &Prober{LookPath: foundAt("/usr/bin/dotnet")}
	avail, err := p.Probe(context.Background(), t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if avail.HasIDE() {
		t.Error("a directory must not validate as the IDE")
	}
}

func TestProbe_SDKVersion(t *testing.T) {
	r := &versionRunner{stdout: "9.0.100\n"}
	p := &Prober{LookPath: foundAt("/usr/bin/dotnet"), Runner: r}

	avail, err := p.Probe(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if r.calls != 1 {
		t.Errorf("version queried %d times, want 1", r.calls)
	}
	if avail.SDKVersion == nil || avail.SDKVersion.String() != "9.0.100" {
		t.Errorf("SDKVersion = %v, want 9.0.100", avail.SDKVersion)
	}
}

func TestProbe_SDKVersionFailureIsIgnored(t *testing.T) {
	r := &versionRunner{code: 1}
	p := &Prober{LookPath: foundAt("/usr/bin/dotnet"), Runner: r}

	avail, err := p.Probe(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if avail.SDKVersion != nil {
		t.Errorf("SDKVersion = %v, want nil", avail.SDKVersion)
	}
}

func TestCheckFramework(t *testing.T) {
	tests := []struct {
		sdk     string
		tfm     string
		wantErr bool
	}{
		{"9.0.100", "net9.0", false},
		{"9.0.100-rc.1.24452.12", "net9.0", false},
		{"8.0.404", "net9.0", true},
		{"8.0.404", "net6.0", false},
	}
	for _, tt := range tests {
		a := &Availability{BuildCLIPath: "dotnet", SDKVersion: semver.MustParse(tt.sdk)}
		err := a.CheckFramework(tt.tfm)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckFramework(%s, %s) error = %v, wantErr %v", tt.sdk, tt.tfm, err, tt.wantErr)
		}
	}

	unknown := &Availability{BuildCLIPath: "dotnet"}
	if err := unknown.CheckFramework("net9.0"); err != nil {
		t.Errorf("unknown SDK should not fail: %v", err)
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, &Availability{BuildCLIPath: "/usr/bin/dotnet", SDKVersion: semver.MustParse("8.0.1")}, "net9.0")

	out := buf.String()
	for _, want := range []string{"[ OK ] dotnet found at /usr/bin/dotnet", "[WARN] dotnet SDK 8.0.1 cannot target net9.0", "[MISS] IDE automation disabled"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
