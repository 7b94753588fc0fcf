package toolchain

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/solforge/solforge/internal/catalog"
	"github.com/solforge/solforge/internal/dotnet"
	"github.com/solforge/solforge/internal/logger"
	"github.com/solforge/solforge/internal/process"
)

// BuildCLI is the name of the build-tool executable looked up on PATH.
const BuildCLI = "dotnet"

// ErrNoTools means neither the build CLI nor a usable IDE is available.
var ErrNoTools = errors.New("neither the dotnet CLI nor a usable IDE executable was found")

// Availability records which tools a run may use.
type Availability struct {
	BuildCLIPath string          // Resolved dotnet path, or "" when absent
	IDEPath      string          // Validated IDE executable, or "" when disabled
	SDKVersion   *semver.Version // dotnet SDK version, nil when unknown
}

// BuildCLIPresent reports whether the dotnet CLI was found.
func (a *Availability) BuildCLIPresent() bool { return a != nil && a.BuildCLIPath != "" }

// HasIDE reports whether IDE automation may be attempted.
func (a *Availability) HasIDE() bool { return a != nil && a.IDEPath != "" }

// CheckFramework returns an error when the detected SDK is too old to target
// tfm. An unknown SDK version is not an error.
func (a *Availability) CheckFramework(tfm string) error {
	if a == nil || a.SDKVersion == nil {
		return nil
	}
	fv, err := catalog.FrameworkVersion(tfm)
	if err != nil {
		return err
	}
	// "-0" lets prerelease SDKs (e.g. 9.0.100-rc.1) satisfy the constraint.
	c, err := semver.NewConstraint(fmt.Sprintf(">= %d.0.0-0", fv.Major()))
	if err != nil {
		return fmt.Errorf("building SDK constraint: %w", err)
	}
	if !c.Check(a.SDKVersion) {
		return fmt.Errorf("dotnet SDK %s cannot target %s (needs SDK %d or newer)", a.SDKVersion, tfm, fv.Major())
	}
	return nil
}

// Prober looks for the build CLI and the IDE.
type Prober struct {
	// LookPath and Stat default to exec.LookPath and os.Stat.
	LookPath func(file string) (string, error)
	Stat     func(name string) (os.FileInfo, error)

	// In and Out carry the interactive IDE path prompt. A nil In disables
	// prompting.
	In  io.Reader
	Out io.Writer

	// MaxPromptRetries bounds how many alternate IDE paths are asked for.
	MaxPromptRetries int

	// Runner, when set, is used to query `dotnet --version`.
	Runner process.Runner

	Log *logger.Logger
}

// Probe checks for the build CLI and validates defaultIDEPath. When the IDE
// path is missing and either a path was configured or the build CLI is
// absent, the user is asked for an alternate path; a blank answer disables
// IDE automation for the run.
func (p *Prober) Probe(ctx context.Context, defaultIDEPath string) (*Availability, error) {
	log := p.log()
	avail := &Availability{}

	if path, err := p.lookPath(BuildCLI); err == nil {
		avail.BuildCLIPath = path
		log.Debugf("found %s at %s", BuildCLI, path)
	} else {
		log.Warnf("%s not found on PATH", BuildCLI)
	}

	switch {
	case p.validIDE(defaultIDEPath):
		avail.IDEPath = defaultIDEPath
		log.Debugf("found IDE at %s", defaultIDEPath)
	case defaultIDEPath != "" || !avail.BuildCLIPresent():
		if defaultIDEPath != "" {
			log.Warnf("IDE not found at %s", defaultIDEPath)
		}
		path, err := p.promptIDE()
		if err != nil {
			return nil, err
		}
		avail.IDEPath = path
	}

	if !avail.BuildCLIPresent() && !avail.HasIDE() {
		return nil, ErrNoTools
	}

	if avail.BuildCLIPresent() && p.Runner != nil {
		avail.SDKVersion = p.sdkVersion(ctx, avail.BuildCLIPath)
	}

	return avail, nil
}

// promptIDE asks for an alternate IDE path up to MaxPromptRetries times.
// It returns "" when the user leaves the answer blank, input ends, or every
// answer fails validation.
func (p *Prober) promptIDE() (string, error) {
	if p.In == nil || p.MaxPromptRetries <= 0 {
		return "", nil
	}
	out := p.Out
	if out == nil {
		out = io.Discard
	}
	reader := bufio.NewReader(p.In)

	for attempt := 1; attempt <= p.MaxPromptRetries; attempt++ {
		fmt.Fprint(out, "Enter the path to the IDE executable (leave blank to skip IDE automation): ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading IDE path: %w", err)
		}
		path := strings.Trim(strings.TrimSpace(line), `"`)
		if path == "" {
			p.log().Infof("IDE automation disabled for this run")
			return "", nil
		}
		if p.validIDE(path) {
			return path, nil
		}
		p.log().Warnf("IDE not found at %s", path)
		if errors.Is(err, io.EOF) {
			break
		}
	}
	return "", nil
}

// validIDE reports whether path names an existing regular file.
func (p *Prober) validIDE(path string) bool {
	if path == "" {
		return false
	}
	stat := p.Stat
	if stat == nil {
		stat = os.Stat
	}
	info, err := stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (p *Prober) sdkVersion(ctx context.Context, cliPath string) *semver.Version {
	res, err := p.Runner.Run(ctx, dotnet.NewCLI(cliPath, "").Version())
	if err != nil || !res.Succeeded() {
		p.log().Debugf("could not determine dotnet SDK version")
		return nil
	}
	v, err := semver.NewVersion(strings.TrimSpace(res.Stdout))
	if err != nil {
		p.log().Debugf("unparseable dotnet SDK version %q: %v", res.Stdout, err)
		return nil
	}
	return v
}

func (p *Prober) lookPath(file string) (string, error) {
	if p.LookPath != nil {
		return p.LookPath(file)
	}
	return exec.LookPath(file)
}

func (p *Prober) log() *logger.Logger {
	if p.Log == nil {
		return logger.Discard()
	}
	return p.Log
}
