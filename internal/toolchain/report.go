package toolchain

import (
	"fmt"
	"io"
)

// Report prints a doctor-style summary of a probe result.
func Report(w io.Writer, a *Availability, tfm string) {
	fmt.Fprintln(w, "Toolchain check:")
	if a.BuildCLIPresent() {
		fmt.Fprintf(w, "  [ OK ] %s found at %s\n", BuildCLI, a.BuildCLIPath)
	} else {
		fmt.Fprintf(w, "  [MISS] %s not found on PATH\n", BuildCLI)
	}

	switch {
	case a.SDKVersion == nil && a.BuildCLIPresent():
		fmt.Fprintln(w, "  [WARN] dotnet SDK version unknown")
	case a.SDKVersion != nil:
		if err := a.CheckFramework(tfm); err != nil {
			fmt.Fprintf(w, "  [WARN] %v\n", err)
		} else {
			fmt.Fprintf(w, "  [ OK ] dotnet SDK %s can target %s\n", a.SDKVersion, tfm)
		}
	}

	if a.HasIDE() {
		fmt.Fprintf(w, "  [ OK ] IDE found at %s\n", a.IDEPath)
	} else {
		fmt.Fprintln(w, "  [MISS] IDE automation disabled")
	}
}
