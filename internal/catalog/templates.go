package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// UITemplate maps an abstract UI template selector to the identifiers the
// dotnet CLI and the IDE use for it.
type UITemplate struct {
	Selector       string // Value of --template, e.g. "wpf"
	DotnetTemplate string // `dotnet new` short name
	IDETemplate    string // IDE project template identifier
	ProjectName    string // Name of the generated project
	Description    string
}

// Kind returns the folder layout kind of UI projects.
func (t UITemplate) Kind() TemplateKind { return KindUILibrary }

var uiTemplates = map[string]UITemplate{
	"wpf": {
		Selector:       "wpf",
		DotnetTemplate: "wpf",
		IDETemplate:    "Microsoft.CSharp.WPF.Application",
		ProjectName:    "WpfUI",
		Description:    "WPF desktop application",
	},
	"winforms": {
		Selector:       "winforms",
		DotnetTemplate: "winforms",
		IDETemplate:    "Microsoft.CSharp.WinForms.Application",
		ProjectName:    "WinFormsUI",
		Description:    "Windows Forms desktop application",
	},
	"maui": {
		Selector:       "maui",
		DotnetTemplate: "maui",
		IDETemplate:    "Microsoft.Maui.App",
		ProjectName:    "MauiUI",
		Description:    ".NET MAUI cross-platform application",
	},
}

// LookupUITemplate returns the template for selector (case-insensitive).
func LookupUITemplate(selector string) (UITemplate, error) {
	t, ok := uiTemplates[strings.ToLower(strings.TrimSpace(selector))]
	if !ok {
		return UITemplate{}, fmt.Errorf("unknown UI template %q: supported templates are %s",
			selector, strings.Join(UISelectors(), ", "))
	}
	return t, nil
}

// UISelectors returns the supported selectors, sorted.
func UISelectors() []string {
	names := make([]string, 0, len(uiTemplates))
	for name := range uiTemplates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
