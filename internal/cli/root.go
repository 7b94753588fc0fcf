package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/solforge/solforge/internal/branding"
	"github.com/solforge/solforge/internal/config"
	"github.com/solforge/solforge/internal/generator"
	"github.com/solforge/solforge/internal/logger"
	"github.com/solforge/solforge/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// verbosity is the persistent --verbosity flag; -1 means "use config".
var verbosity int

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates multi-project .NET solution skeletons: a solution file,
a catalog of class libraries wired with project references, and one UI project,
by driving the dotnet CLI and, when configured, the IDE's automation interface.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", -1,
		"Log verbosity: 0 warnings and errors, 1 progress, 2 debug and tool output (default from config)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var genErr *generator.Error
	if errors.As(err, &genErr) {
		return genErr.Code
	}
	if errors.Is(err, toolchain.ErrNoTools) {
		return generator.ExitFailure
	}
	return 1
}

// newLogger returns a logger on w honoring --verbosity, then the config.
func newLogger(w io.Writer) *logger.Logger {
	level := verbosity
	if level < 0 {
		level = config.Verbosity()
	}
	return logger.New(w, level)
}
