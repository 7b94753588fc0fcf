package generator

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Summary describes what a run produced.
type Summary struct {
	SolutionPath string
	Projects     []string // In creation order, UI project last
	References   int      // Reference edges added
	UIProject    string
	UIVia        string // ViaIDE or ViaCLI
	Warnings     []string
}

func (s *Summary) warn(format string, a ...any) {
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, a...))
}

// Print writes a short human-readable report.
func (s *Summary) Print(w io.Writer) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Solution: %s\n", s.SolutionPath)
	p.Fprintf(w, "Projects: %d created, %d references added\n", len(s.Projects), s.References)
	for _, name := range s.Projects {
		suffix := ""
		if name == s.UIProject && s.UIVia != "" {
			suffix = " (via " + s.UIVia + ")"
		}
		fmt.Fprintf(w, "  - %s%s\n", name, suffix)
	}
	if len(s.Warnings) > 0 {
		p.Fprintf(w, "Warnings: %d\n", len(s.Warnings))
		for _, warning := range s.Warnings {
			fmt.Fprintf(w, "  ! %s\n", warning)
		}
	}
}
