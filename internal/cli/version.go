package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/solforge/solforge/internal/branding"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

type versionInfo struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Date     string `json:"date"`
	Platform string `json:"platform"`
}

func currentVersion() versionInfo {
	return versionInfo{
		Name:     branding.CLIName(),
		Version:  buildVersion,
		Commit:   buildCommit,
		Date:     buildDate,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		info := currentVersion()

		switch {
		case versionShort:
			fmt.Fprintln(out, info.Version)
		case versionJSON:
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
		default:
			fmt.Fprintf(out, "%s version %s (commit: %s, built: %s, %s)\n",
				info.Name, info.Version, info.Commit, info.Date, info.Platform)
		}
		return nil
	},
}
