package cli

import (
	"errors"
	"fmt"

	"github.com/solforge/solforge/internal/catalog"
	"github.com/solforge/solforge/internal/config"
	"github.com/solforge/solforge/internal/platform"
	"github.com/solforge/solforge/internal/process"
	"github.com/solforge/solforge/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	doctorFramework string
	doctorIDEPath   string
)

func init() {
	doctorCmd.Flags().StringVarP(&doctorFramework, "framework", "f", "", "Target framework to check the SDK against")
	doctorCmd.Flags().StringVar(&doctorIDEPath, "ide", "", "IDE automation executable to check (default from config)")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the dotnet CLI and the IDE can be found",
	Long: `Run diagnostic checks on the tools solforge drives.

Reports whether the dotnet CLI is on PATH, whether its SDK can target the
requested framework, whether the IDE executable exists, and whether the
configured catalog is valid. Never prompts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		log := newLogger(cmd.ErrOrStderr())

		framework := firstNonEmpty(doctorFramework, config.Framework(), catalog.DefaultFramework)
		if err := catalog.ValidateFramework(framework); err != nil {
			return err
		}

		prober := &toolchain.Prober{
			Runner: process.NewExecRunner(log, config.Timeout()),
			Log:    log,
		}
		tools, probeErr := prober.Probe(cmd.Context(), firstNonEmpty(doctorIDEPath, config.IDEPath(), platform.DefaultIDEPath()))
		if probeErr != nil && !errors.Is(probeErr, toolchain.ErrNoTools) {
			return probeErr
		}
		if tools == nil {
			tools = &toolchain.Availability{}
		}
		toolchain.Report(out, tools, framework)

		fmt.Fprintln(out, "\nConfiguration:")
		fmt.Fprintf(out, "  config file: %s\n", config.FilePath())
		catalogErr := reportCatalog(cmd, config.CatalogFile())

		if probeErr != nil {
			return probeErr
		}
		return catalogErr
	},
}

func reportCatalog(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()
	if path == "" {
		fmt.Fprintln(out, "  [ OK ] built-in catalog")
		return nil
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] catalog %s\n", path)
		return err
	}
	fmt.Fprintf(out, "  [ OK ] catalog %s (%d projects)\n", path, len(cat.Projects))
	return nil
}
