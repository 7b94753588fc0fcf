package generator

import (
	"context"
	"fmt"

	"github.com/solforge/solforge/internal/catalog"
)

// Run generates a complete solution: it checks that the root is empty,
// creates the solution, writes the build configuration files, generates the
// catalog's library projects and finally the UI project. Tool availability
// must already have been probed into rc.Tools.
//
// On failure with rc.CleanupOnFailure set, every path the run created is
// removed so the root can be reused.
func Run(ctx context.Context, rc *RunContext, cat *catalog.Catalog, tmpl catalog.UITemplate) (sum *Summary, err error) {
	if err := rc.check(); err != nil {
		return nil, err
	}
	if err := cat.Validate(); err != nil {
		return nil, preconditionError("validating catalog", err)
	}
	if _, clash := cat.Lookup(tmpl.ProjectName); clash {
		return nil, preconditionError("validating catalog",
			fmt.Errorf("catalog project %s clashes with the UI project name", tmpl.ProjectName))
	}
	if !rc.Tools.BuildCLIPresent() {
		return nil, preconditionError("creating solution", errNoCLI)
	}

	log := rc.log()
	if err := EnsureEmptyRoot(rc); err != nil {
		return nil, err
	}

	defer func() {
		if err == nil || !rc.CleanupOnFailure {
			return
		}
		log.Warnf("cleaning up after failure")
		if cleanupErr := rc.Journal().Rollback(log); cleanupErr != nil {
			log.Errorf("cleanup incomplete: %v", cleanupErr)
		}
	}()

	log.Infof("generating %s in %s", rc.Solution.SolutionName, rc.Solution.RootPath)

	if err := CreateSolution(ctx, rc); err != nil {
		return rc.Summary(), err
	}
	if err := WriteBuildFiles(rc); err != nil {
		return rc.Summary(), err
	}
	if err := CreateLibraryProjects(ctx, rc, cat); err != nil {
		return rc.Summary(), err
	}
	if err := CreateUIProject(ctx, rc, tmpl); err != nil {
		return rc.Summary(), err
	}

	log.Infof("generated %s", rc.Solution.SolutionFilePath())
	return rc.Summary(), nil
}
