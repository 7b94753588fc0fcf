package catalog

import (
	"path/filepath"
	"regexp"
)

// namePattern matches names usable as a project, folder and root namespace.
// It mirrors the name pattern in schema/catalog.schema.json.
var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// ValidName reports whether name can be used for a solution or project.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// TemplateKind selects the dotnet template and default folder layout of a
// library project.
type TemplateKind string

// Supported library kinds.
const (
	KindClassLib  TemplateKind = "classlib"
	KindUILibrary TemplateKind = "uilib"
)

// ProjectFileExt is the extension of generated project files.
const ProjectFileExt = ".csproj"

// SourceDir is the directory, relative to the solution root, that holds
// every generated project.
const SourceDir = "src"

// DotnetTemplate returns the `dotnet new` short name for the kind.
func (k TemplateKind) DotnetTemplate() string {
	switch k {
	case KindUILibrary:
		return "wpflib"
	default:
		return "classlib"
	}
}

// DefaultFolders returns the sub-folders created under every project of
// this kind.
func (k TemplateKind) DefaultFolders() []string {
	switch k {
	case KindUILibrary:
		return []string{"Views", "ViewModels", "Controls", "Resources"}
	default:
		return []string{"Models", "Services", "Interfaces", "Extensions"}
	}
}

// Valid reports whether k is one of the known kinds.
func (k TemplateKind) Valid() bool {
	return k == KindClassLib || k == KindUILibrary
}

// ProjectSpec describes one library project and the projects it references.
type ProjectSpec struct {
	Name       string       `yaml:"name" json:"name"`
	Kind       TemplateKind `yaml:"kind" json:"kind"`
	References []string     `yaml:"references,omitempty" json:"references,omitempty"`
	Folders    []string     `yaml:"folders,omitempty" json:"folders,omitempty"`
}

// FolderSet returns the folders to create: the explicit list, or the kind
// defaults when none is given.
func (p ProjectSpec) FolderSet() []string {
	if len(p.Folders) > 0 {
		return p.Folders
	}
	return p.Kind.DefaultFolders()
}

// Catalog is the ordered list of library projects generated for a solution.
type Catalog struct {
	Projects []ProjectSpec `yaml:"projects" json:"projects"`
}

// Lookup returns the spec with the given name.
func (c *Catalog) Lookup(name string) (ProjectSpec, bool) {
	for _, p := range c.Projects {
		if p.Name == name {
			return p, true
		}
	}
	return ProjectSpec{}, false
}

// Edges returns the number of reference edges in the catalog.
func (c *Catalog) Edges() int {
	n := 0
	for _, p := range c.Projects {
		n += len(p.References)
	}
	return n
}

// ProjectDir returns src/<name> relative to the solution root.
func ProjectDir(name string) string {
	return filepath.Join(SourceDir, name)
}

// ProjectFile returns src/<name>/<name>.csproj relative to the solution root.
func ProjectFile(name string) string {
	return filepath.Join(SourceDir, name, name+ProjectFileExt)
}
