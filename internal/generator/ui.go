package generator

import (
	"context"
	"fmt"
	"os"

	"github.com/solforge/solforge/internal/catalog"
	"github.com/solforge/solforge/internal/scaffold"
)

// Ways the UI project can be created, reported in Summary.UIVia.
const (
	ViaIDE = "ide"
	ViaCLI = "dotnet"
)

type uiState int

const (
	uiStart uiState = iota
	uiTryIDE
	uiTryCLI
	uiVerify
	uiRegister
	uiFolders
	uiDone
)

// CreateUIProject creates the UI project. With an IDE available it makes one
// IDE automation call; if that fails, or there is no IDE, it makes exactly
// one dotnet call, passing a failing child's exit code through. The project
// directory is then verified and registered in the solution. A project the
// IDE created is already registered.
func CreateUIProject(ctx context.Context, rc *RunContext, tmpl catalog.UITemplate) error {
	name := tmpl.ProjectName
	dir := catalog.ProjectDir(name)
	absDir := rc.Solution.abs(dir)
	op := "creating UI project " + name
	sum := rc.Summary()

	state := uiStart
	for state != uiDone {
		switch state {
		case uiStart:
			state = uiTryCLI
			if rc.Tools.HasIDE() {
				state = uiTryIDE
			}

		case uiTryIDE:
			rc.Journal().Record(absDir)
			inv := rc.ide().AddNewProject(rc.Solution.SolutionFile(), tmpl.IDETemplate, dir)
			res, err := rc.run(ctx, inv)
			switch {
			case err != nil:
				rc.warn("IDE automation failed: %v; falling back to the dotnet CLI", err)
				state = uiTryCLI
			case !res.Succeeded():
				rc.warn("IDE automation exited with status %d; falling back to the dotnet CLI", res.ExitCode)
				state = uiTryCLI
			case !dirExists(absDir):
				rc.warn("IDE automation did not create %s; falling back to the dotnet CLI", dir)
				state = uiTryCLI
			default:
				sum.UIVia = ViaIDE
				state = uiFolders
			}

		case uiTryCLI:
			if !rc.Tools.BuildCLIPresent() {
				return preconditionError(op, errNoCLI)
			}
			rc.Journal().Record(rc.Solution.abs(catalog.SourceDir))
			rc.Journal().Record(absDir)
			inv := rc.cli().NewProject(tmpl.DotnetTemplate, name, dir, rc.Solution.TargetFramework)
			res, err := rc.run(ctx, inv)
			if err != nil {
				return externalToolError(op, err)
			}
			if !res.Succeeded() {
				return passthroughError(op, inv, res)
			}
			sum.UIVia = ViaCLI
			state = uiVerify

		case uiVerify:
			if !dirExists(absDir) {
				return externalToolError(op, fmt.Errorf("%s was not created", dir))
			}
			state = uiRegister

		case uiRegister:
			inv := rc.cli().SolutionAdd(rc.Solution.SolutionFile(), catalog.ProjectFile(name))
			if err := rc.mustRun(ctx, "registering project "+name, inv); err != nil {
				return err
			}
			state = uiFolders

		case uiFolders:
			if _, err := scaffold.CreateFolders(absDir, tmpl.Kind().DefaultFolders()); err != nil {
				return filesystemError(op, err)
			}
			state = uiDone
		}
	}

	sum.UIProject = name
	sum.Projects = append(sum.Projects, name)
	return nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
