package catalog

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Frameworks lists the supported target framework monikers, oldest first.
var Frameworks = []string{"net6.0", "net7.0", "net8.0", "net9.0"}

// DefaultFramework is the latest supported framework.
var DefaultFramework = Frameworks[len(Frameworks)-1]

// ValidateFramework returns an error unless tfm is a supported framework.
func ValidateFramework(tfm string) error {
	for _, f := range Frameworks {
		if f == tfm {
			return nil
		}
	}
	return fmt.Errorf("unsupported framework %q: must be one of %s", tfm, strings.Join(Frameworks, ", "))
}

// FrameworkVersion parses the version part of a moniker, e.g. "net9.0" → 9.0.0.
func FrameworkVersion(tfm string) (*semver.Version, error) {
	if !strings.HasPrefix(tfm, "net") {
		return nil, fmt.Errorf("framework %q does not start with \"net\"", tfm)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(tfm, "net"))
	if err != nil {
		return nil, fmt.Errorf("parsing framework %q: %w", tfm, err)
	}
	return v, nil
}
