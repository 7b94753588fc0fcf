package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/solforge/solforge/internal/branding"
	"github.com/solforge/solforge/internal/catalog"
	"github.com/solforge/solforge/internal/config"
	"github.com/solforge/solforge/internal/generator"
	"github.com/solforge/solforge/internal/platform"
	"github.com/solforge/solforge/internal/process"
	"github.com/solforge/solforge/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	newTemplate  string
	newFramework string
	newOutputDir string
	newIDEPath   string
	newCatalog   string
	newNoPrompt  bool
	newLenient   bool
	newCleanup   bool
	newTimeout   time.Duration

	// newInput answers the IDE path prompt.
	newInput io.Reader = os.Stdin
)

func init() {
	newCmd.Flags().StringVarP(&newTemplate, "template", "t", "wpf", "UI project template: "+joinSelectors())
	newCmd.Flags().StringVarP(&newFramework, "framework", "f", "", "Target framework (default from config, else "+catalog.DefaultFramework+")")
	newCmd.Flags().StringVarP(&newOutputDir, "output", "o", "", "Solution root directory (default: ./<SolutionName>)")
	newCmd.Flags().StringVar(&newIDEPath, "ide", "", "IDE automation executable (default from config)")
	newCmd.Flags().StringVar(&newCatalog, "catalog", "", "YAML catalog replacing the built-in projects")
	newCmd.Flags().BoolVar(&newNoPrompt, "no-prompt", false, "Never ask for an alternate IDE path")
	newCmd.Flags().BoolVar(&newLenient, "lenient-references", false, "Warn instead of failing when a project reference cannot be added")
	newCmd.Flags().BoolVar(&newCleanup, "cleanup-on-failure", false, "Remove everything the run created when it fails")
	newCmd.Flags().DurationVar(&newTimeout, "timeout", config.DefaultTimeout, "Timeout for each external command (0 disables)")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <SolutionName>",
	Short: "Generate a new solution skeleton",
	Long: `Generate a solution with the catalog's class libraries and one UI project.

The solution root must be empty or missing. Projects are created with the
dotnet CLI in catalog order, registered in the solution, wired with project
references and given a standard folder layout. When an IDE executable is
available the UI project is added through its automation interface, falling
back to the dotnet CLI.

Exit codes: 0 success, 2 precondition or tool failure, otherwise the exit
code of a failed UI project command.

Examples:
  solforge new MyApp
  solforge new MyApp --template winforms --framework net8.0
  solforge new Contoso.Billing --output ./billing --ide "C:\Program Files\Microsoft Visual Studio\2022\Community\Common7\IDE\devenv.exe"`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	name := args[0]
	if err := validateSolutionName(name); err != nil {
		return err
	}

	tmpl, err := catalog.LookupUITemplate(newTemplate)
	if err != nil {
		return err
	}

	framework := firstNonEmpty(newFramework, config.Framework(), catalog.DefaultFramework)
	if err := catalog.ValidateFramework(framework); err != nil {
		return err
	}

	cat, err := loadCatalog(firstNonEmpty(newCatalog, config.CatalogFile()))
	if err != nil {
		return err
	}

	root, err := resolveRoot(name)
	if err != nil {
		return err
	}

	timeout := config.Timeout()
	if cmd.Flags().Changed("timeout") {
		timeout = newTimeout
	}

	log := newLogger(cmd.ErrOrStderr())
	runner := process.NewExecRunner(log, timeout)

	prober := &toolchain.Prober{
		Out:              cmd.ErrOrStderr(),
		MaxPromptRetries: config.PromptRetries(),
		Runner:           runner,
		Log:              log,
	}
	if !newNoPrompt {
		prober.In = newInput
	}

	tools, err := prober.Probe(cmd.Context(), firstNonEmpty(newIDEPath, config.IDEPath(), platform.DefaultIDEPath()))
	if err != nil {
		return err
	}
	if err := tools.CheckFramework(framework); err != nil {
		log.Warnf("%v", err)
	}

	rc := &generator.RunContext{
		Solution: generator.SolutionContext{
			SolutionName:    name,
			RootPath:        root,
			TargetFramework: framework,
		},
		Tools:            tools,
		Runner:           runner,
		Log:              log,
		Timeout:          timeout,
		Strict:           config.StrictReferences() && !newLenient,
		CleanupOnFailure: newCleanup,
	}

	sum, err := generator.Run(cmd.Context(), rc, cat, tmpl)
	if err != nil {
		if sum != nil && len(sum.Projects) > 0 && !newCleanup {
			log.Warnf("partial output left in %s; remove it or rerun with --cleanup-on-failure", root)
		}
		return err
	}

	out := cmd.OutOrStdout()
	sum.Print(out)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. cd %s\n", root)
	fmt.Fprintf(out, "  2. dotnet build %s%s\n", name, generator.SolutionExt)
	fmt.Fprintf(out, "  3. Run '%s graph --solution %s' to see the project references\n", branding.CLIName(), name)
	return nil
}

// ─── Helpers ───────────────────────────────────────────────────────

func validateSolutionName(name string) error {
	if !catalog.ValidName(name) {
		return fmt.Errorf("invalid solution name %q: must start with a letter or underscore and contain only letters, digits, '_' and '.'", name)
	}
	return nil
}

// resolveRoot returns the absolute solution root.
func resolveRoot(name string) (string, error) {
	dir := newOutputDir
	if dir == "" {
		dir = filepath.Join(".", name)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving output directory: %w", err)
	}
	return abs, nil
}

// loadCatalog returns the catalog at path, or the built-in one when path is
// empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
