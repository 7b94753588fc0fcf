package generator

import (
	"context"
	"errors"
	"os"

	"github.com/solforge/solforge/internal/scaffold"
)

// EnsureEmptyRoot creates the solution root if it is missing and fails with
// a precondition error if it already has entries. A root it creates is
// recorded in the journal.
func EnsureEmptyRoot(rc *RunContext) error {
	root := rc.Solution.RootPath
	_, statErr := os.Stat(root)
	existed := statErr == nil

	if err := scaffold.EnsureEmptyRoot(root); err != nil {
		if errors.Is(err, scaffold.ErrRootNotEmpty) {
			return preconditionError("checking destination", err)
		}
		return filesystemError("checking destination", err)
	}
	if !existed {
		rc.Journal().Record(root)
	}
	return nil
}

// CreateSolution creates the empty solution file. A non-zero exit is fatal.
func CreateSolution(ctx context.Context, rc *RunContext) error {
	if !rc.Tools.BuildCLIPresent() {
		return preconditionError("creating solution", errNoCLI)
	}
	rc.Journal().Record(rc.Solution.SolutionFilePath())
	return rc.mustRun(ctx, "creating solution", rc.cli().NewSolution(rc.Solution.SolutionName))
}

// WriteBuildFiles writes Directory.Build.props and Directory.Build.targets
// to the solution root.
func WriteBuildFiles(rc *RunContext) error {
	data := scaffold.NewData(rc.Solution.SolutionName, rc.Solution.TargetFramework)
	for _, write := range []func(string, *scaffold.Data) (string, error){
		scaffold.WriteBuildPropertyOverrides,
		scaffold.WriteBuildTargetHooks,
	} {
		path, err := write(rc.Solution.RootPath, data)
		if path != "" {
			rc.Journal().Record(path)
		}
		if err != nil {
			return filesystemError("writing build configuration", err)
		}
		rc.log().Infof("wrote %s", path)
	}
	return nil
}
