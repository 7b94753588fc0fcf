package generator

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/solforge/solforge/internal/logger"
)

// Journal records the paths a run created, in creation order.
type Journal struct {
	paths []string
}

// Record appends path unless it is already recorded.
func (j *Journal) Record(path string) {
	if slices.Contains(j.paths, path) {
		return
	}
	j.paths = append(j.paths, path)
}

// Paths returns the recorded paths in creation order.
func (j *Journal) Paths() []string {
	return slices.Clone(j.paths)
}

// Rollback removes the recorded paths in reverse order. Paths that no longer
// exist are skipped.
func (j *Journal) Rollback(log *logger.Logger) error {
	var errs []error
	for i := len(j.paths) - 1; i >= 0; i-- {
		path := j.paths[i]
		if _, err := os.Lstat(path); os.IsNotExist(err) {
			continue
		}
		if err := os.RemoveAll(path); err != nil {
			errs = append(errs, fmt.Errorf("removing %s: %w", path, err))
			continue
		}
		log.Debugf("removed %s", path)
	}
	j.paths = nil
	return errors.Join(errs...)
}
