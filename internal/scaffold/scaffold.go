package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/solforge/solforge/internal/branding"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// File names written to the solution root.
const (
	PropsFile   = "Directory.Build.props"
	TargetsFile = "Directory.Build.targets"
	// KeepFile marks otherwise empty folders so they survive version control.
	KeepFile = ".gitkeep"
)

// ErrRootNotEmpty is returned when the solution root already has entries.
var ErrRootNotEmpty = errors.New("destination is not empty")

// Data holds the template variables for the build configuration files.
type Data struct {
	SolutionName    string
	TargetFramework string
	OutputDir       string // Artifacts directory under the root; defaults to "out"
	Generator       string
}

// NewData returns Data with defaults filled in.
func NewData(solutionName, targetFramework string) *Data {
	return &Data{
		SolutionName:    solutionName,
		TargetFramework: targetFramework,
		OutputDir:       "out",
		Generator:       branding.CLIName(),
	}
}

// EnsureEmptyRoot creates root if needed and fails if it already contains
// anything.
func EnsureEmptyRoot(root string) error {
	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("reading output directory: %w", err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s has %d entries; remove existing files first", ErrRootNotEmpty, root, len(entries))
	}
	return nil
}

// WriteBuildPropertyOverrides writes Directory.Build.props to root,
// overwriting any existing file. It returns the written path.
func WriteBuildPropertyOverrides(root string, data *Data) (string, error) {
	return render(root, PropsFile, data)
}

// WriteBuildTargetHooks writes Directory.Build.targets to root, overwriting
// any existing file. It returns the written path.
func WriteBuildTargetHooks(root string, data *Data) (string, error) {
	return render(root, TargetsFile, data)
}

func render(root, name string, data *Data) (string, error) {
	tmplPath := "templates/" + name + ".tmpl"
	tmplBytes, err := templateFS.ReadFile(tmplPath)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", tmplPath, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(tmplBytes))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}

	outPath := filepath.Join(root, name)
	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return outPath, nil
}

// CreateFolders creates each folder under projectDir with a .gitkeep file
// inside. It returns the created folder paths.
func CreateFolders(projectDir string, folders []string) ([]string, error) {
	created := make([]string, 0, len(folders))
	for _, name := range folders {
		dir := filepath.Join(projectDir, name)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return created, fmt.Errorf("creating folder %s: %w", dir, err)
		}
		keep := filepath.Join(dir, KeepFile)
		if err := os.WriteFile(keep, nil, 0644); err != nil {
			return created, fmt.Errorf("writing %s: %w", keep, err)
		}
		created = append(created, dir)
	}
	return created, nil
}
