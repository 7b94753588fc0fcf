// Package dotnet builds the external invocations solforge issues: the dotnet
// CLI subcommands and the IDE's project automation command. It only
// describes calls; running them is the process.Runner's job.
package dotnet

import (
	"fmt"

	"github.com/solforge/solforge/internal/process"
)

// CLI builds dotnet invocations that run inside a solution root. Paths passed
// to its methods are relative to Root.
type CLI struct {
	Path string // Resolved dotnet executable
	Root string // Solution root, used as the working directory
}

// NewCLI returns a CLI for the executable at path, working in root.
func NewCLI(path, root string) *CLI {
	return &CLI{Path: path, Root: root}
}

func (c *CLI) invocation(label string, args ...string) process.Invocation {
	return process.Invocation{
		Label: label,
		Path:  c.Path,
		Args:  args,
		Dir:   c.Root,
	}
}

// NewSolution creates <Root>/<name>.sln.
func (c *CLI) NewSolution(name string) process.Invocation {
	return c.invocation("create solution "+name,
		"new", "sln", "--name", name, "--output", c.Root)
}

// NewProject instantiates template as project name in outDir.
func (c *CLI) NewProject(template, name, outDir, framework string) process.Invocation {
	args := []string{"new", template, "--name", name, "--output", outDir}
	if framework != "" {
		args = append(args, "--framework", framework)
	}
	return c.invocation(fmt.Sprintf("create project %s (%s)", name, template), args...)
}

// SolutionAdd registers project file proj in solution file sln.
func (c *CLI) SolutionAdd(sln, proj string) process.Invocation {
	return c.invocation("register "+proj, "sln", sln, "add", proj)
}

// AddReference adds a project reference from proj to ref.
func (c *CLI) AddReference(proj, ref string) process.Invocation {
	return c.invocation(fmt.Sprintf("reference %s -> %s", proj, ref),
		"add", proj, "reference", ref)
}

// Version queries the installed SDK version.
func (c *CLI) Version() process.Invocation {
	return c.invocation("query sdk version", "--version")
}

// IDE builds automation invocations for the IDE executable.
type IDE struct {
	Path string
	Root string
}

// NewIDE returns an IDE for the executable at path, working in root.
func NewIDE(path, root string) *IDE {
	return &IDE{Path: path, Root: root}
}

// AddNewProject asks the IDE to open sln and add a project from template in
// dir.
func (i *IDE) AddNewProject(sln, template, dir string) process.Invocation {
	return process.Invocation{
		Label: "add project via IDE " + template,
		Path:  i.Path,
		Args:  []string{sln, "/Command", fmt.Sprintf("Project.AddNewProject %s %s", template, dir)},
		Dir:   i.Root,
	}
}
