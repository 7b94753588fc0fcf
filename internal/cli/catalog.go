package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/solforge/solforge/internal/catalog"
	"github.com/solforge/solforge/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var catalogFile string

func init() {
	catalogListCmd.Flags().StringVar(&catalogFile, "catalog", "", "Catalog file to list (default from config, else built-in)")
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate project catalogs",
	Long: `A catalog lists the class libraries generated for every solution, in
creation order, with the projects each one references. The built-in catalog
is Domain, Core (references Domain) and Infrastructure (references Core).

A custom catalog is a YAML file:

  projects:
    - name: Domain
      kind: classlib
    - name: Core
      kind: classlib
      references: [Domain]
      folders: [Models, Services]

Use it with 'solforge new --catalog FILE' or 'solforge config set catalog.file FILE'.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the projects a run would generate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(firstNonEmpty(catalogFile, config.CatalogFile()))
		if err != nil {
			return err
		}

		title := cases.Title(language.English)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tKIND\tREFERENCES\tFOLDERS")
		for _, p := range cat.Projects {
			refs := "-"
			if len(p.References) > 0 {
				refs = strings.Join(p.References, ", ")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, title.String(string(p.Kind)), refs, strings.Join(p.FolderSet(), ", "))
		}
		return w.Flush()
	},
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog file",
	Long: `Validate a catalog file against the catalog schema and the ordering rules:
names are unique, and every reference names a project listed earlier.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cat, err := catalog.LoadFile(args[0])
		if err != nil {
			var invalid *catalog.InvalidError
			if errors.As(err, &invalid) {
				fmt.Fprintf(out, "%s is invalid:\n", args[0])
				for _, issue := range invalid.Issues {
					fmt.Fprintf(out, "  - %s\n", issue)
				}
			}
			return err
		}

		order, _ := catalog.TopoOrder(cat)
		fmt.Fprintf(out, "%s is valid: %d projects, %d references\n", args[0], len(cat.Projects), cat.Edges())
		fmt.Fprintf(out, "Creation order: %s\n", strings.Join(order, " -> "))
		return nil
	},
}
