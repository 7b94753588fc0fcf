package dotnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLI_NewSolution(t *testing.T) {
	c := NewCLI("/usr/bin/dotnet", "/work/MyApp")
	inv := c.NewSolution("MyApp")

	assert.Equal(t, "/usr/bin/dotnet", inv.Path)
	assert.Equal(t, "/work/MyApp", inv.Dir)
	assert.Empty(t, inv.Command)
	assert.Equal(t, []string{"new", "sln", "--name", "MyApp", "--output", "/work/MyApp"}, inv.Args)
	assert.Contains(t, inv.Label, "MyApp")
}

func TestCLI_NewProject(t *testing.T) {
	c := NewCLI("dotnet", "/work/MyApp")

	t.Run("with framework", func(t *testing.T) {
		inv := c.NewProject("classlib", "Core", "src/Core", "net9.0")
		assert.Equal(t, []string{
			"new", "classlib", "--name", "Core", "--output", "src/Core", "--framework", "net9.0",
		}, inv.Args)
	})

	t.Run("without framework", func(t *testing.T) {
		inv := c.NewProject("wpf", "WpfUI", "src/WpfUI", "")
		assert.NotContains(t, inv.Args, "--framework")
	})
}

func TestCLI_SolutionAdd(t *testing.T) {
	inv := NewCLI("dotnet", "/r").SolutionAdd("MyApp.sln", "src/Core/Core.csproj")
	assert.Equal(t, []string{"sln", "MyApp.sln", "add", "src/Core/Core.csproj"}, inv.Args)
	assert.Equal(t, "/r", inv.Dir)
}

func TestCLI_AddReference(t *testing.T) {
	inv := NewCLI("dotnet", "/r").AddReference("src/Core/Core.csproj", "src/Domain/Domain.csproj")
	assert.Equal(t, []string{"add", "src/Core/Core.csproj", "reference", "src/Domain/Domain.csproj"}, inv.Args)
	assert.Equal(t, "reference src/Core/Core.csproj -> src/Domain/Domain.csproj", inv.Label)
}

func TestCLI_Version(t *testing.T) {
	inv := NewCLI("dotnet", "").Version()
	assert.Equal(t, []string{"--version"}, inv.Args)
}

func TestIDE_AddNewProject(t *testing.T) {
	ide := NewIDE(`C:\VS\devenv.exe`, `C:\work\MyApp`)
	inv := ide.AddNewProject("MyApp.sln", "Microsoft.CSharp.WPF.Application", `src\WpfUI`)

	assert.Equal(t, `C:\VS\devenv.exe`, inv.Path)
	assert.Equal(t, []string{
		"MyApp.sln", "/Command", `Project.AddNewProject Microsoft.CSharp.WPF.Application src\WpfUI`,
	}, inv.Args)
	assert.Equal(t, `C:\work\MyApp`, inv.Dir)
}
