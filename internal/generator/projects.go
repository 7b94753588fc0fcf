package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/solforge/solforge/internal/catalog"
	"github.com/solforge/solforge/internal/scaffold"
)

// PlaceholderFile is the default source file dotnet templates add to a new
// class library.
const PlaceholderFile = "Class1.cs"

// CreateLibraryProjects generates every catalog project in catalog order.
// The catalog is validated first so an out-of-order reference fails before
// any external call.
func CreateLibraryProjects(ctx context.Context, rc *RunContext, cat *catalog.Catalog) error {
	if err := cat.Validate(); err != nil {
		return preconditionError("validating catalog", err)
	}
	if !rc.Tools.BuildCLIPresent() {
		return preconditionError("creating library projects", errNoCLI)
	}
	for _, spec := range cat.Projects {
		if err := createLibraryProject(ctx, rc, spec); err != nil {
			return err
		}
	}
	return nil
}

func createLibraryProject(ctx context.Context, rc *RunContext, spec catalog.ProjectSpec) error {
	cli := rc.cli()
	dir := catalog.ProjectDir(spec.Name)
	proj := catalog.ProjectFile(spec.Name)
	absDir := rc.Solution.abs(dir)
	op := "creating project " + spec.Name

	rc.Journal().Record(rc.Solution.abs(catalog.SourceDir))
	rc.Journal().Record(absDir)
	inv := cli.NewProject(spec.Kind.DotnetTemplate(), spec.Name, dir, rc.Solution.TargetFramework)
	if err := rc.mustRun(ctx, op, inv); err != nil {
		return err
	}

	if err := rc.mustRun(ctx, "registering project "+spec.Name, cli.SolutionAdd(rc.Solution.SolutionFile(), proj)); err != nil {
		return err
	}

	removePlaceholder(rc, absDir)

	for _, ref := range spec.References {
		if err := addReference(ctx, rc, spec.Name, ref); err != nil {
			return err
		}
	}

	if _, err := scaffold.CreateFolders(absDir, spec.FolderSet()); err != nil {
		return filesystemError(op, err)
	}

	rc.Summary().Projects = append(rc.Summary().Projects, spec.Name)
	return nil
}

func removePlaceholder(rc *RunContext, absDir string) {
	path := filepath.Join(absDir, PlaceholderFile)
	err := os.Remove(path)
	switch {
	case err == nil:
		rc.log().Debugf("removed %s", path)
	case os.IsNotExist(err):
		rc.log().Debugf("no %s in %s", PlaceholderFile, absDir)
	default:
		rc.warn("could not remove %s: %v", path, err)
	}
}

// addReference wires name -> ref. Under the strict policy a missing sibling
// project or a failed call is fatal; otherwise it becomes a warning.
func addReference(ctx context.Context, rc *RunContext, name, ref string) error {
	proj := catalog.ProjectFile(name)
	refProj := catalog.ProjectFile(ref)
	op := fmt.Sprintf("adding reference %s -> %s", name, ref)

	if _, err := os.Stat(rc.Solution.abs(refProj)); err != nil {
		if rc.Strict {
			return preconditionError(op, fmt.Errorf("referenced project %s not found", refProj))
		}
		rc.warn("skipping reference %s -> %s: %s not found", name, ref, refProj)
		return nil
	}

	inv := rc.cli().AddReference(proj, refProj)
	res, err := rc.run(ctx, inv)
	if err == nil && !res.Succeeded() {
		err = exitStatus(inv, res)
	}
	if err != nil {
		if rc.Strict {
			return externalToolError(op, err)
		}
		rc.warn("reference %s -> %s was not added: %v", name, ref, err)
		return nil
	}

	rc.Summary().References++
	return nil
}
