package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/solforge/solforge/internal/catalog"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the UI project templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TEMPLATE\tPROJECT\tDOTNET\tIDE\tDESCRIPTION")
		for _, sel := range catalog.UISelectors() {
			t, err := catalog.LookupUITemplate(sel)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.Selector, t.ProjectName, t.DotnetTemplate, t.IDETemplate, t.Description)
		}
		return w.Flush()
	},
}

func joinSelectors() string {
	return strings.Join(catalog.UISelectors(), ", ")
}
