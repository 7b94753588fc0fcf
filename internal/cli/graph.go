package cli

import (
	"github.com/solforge/solforge/internal/catalog"
	"github.com/solforge/solforge/internal/config"
	"github.com/solforge/solforge/internal/generator"
	"github.com/solforge/solforge/internal/graph"
	"github.com/spf13/cobra"
)

var (
	graphFormat   string
	graphTemplate string
	graphCatalog  string
	graphSolution string
	graphCluster  bool
)

func init() {
	graphCmd.Flags().StringVar(&graphFormat, "format", "dot", "Output format: dot or mermaid")
	graphCmd.Flags().StringVarP(&graphTemplate, "template", "t", "", "Include the UI project of this template")
	graphCmd.Flags().StringVar(&graphCatalog, "catalog", "", "Catalog file (default from config, else built-in)")
	graphCmd.Flags().StringVar(&graphSolution, "solution", "", "Add a node for this solution name")
	graphCmd.Flags().BoolVar(&graphCluster, "cluster", false, "Group projects by kind")
	rootCmd.AddCommand(graphCmd)
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print the project reference graph",
	Long: `Print the reference graph of the catalog in Graphviz DOT or Mermaid format.

Examples:
  solforge graph | dot -Tsvg > refs.svg
  solforge graph --format mermaid --template wpf`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := graph.ParseFormat(graphFormat)
		if err != nil {
			return err
		}

		cat, err := loadCatalog(firstNonEmpty(graphCatalog, config.CatalogFile()))
		if err != nil {
			return err
		}

		var ui *catalog.UITemplate
		if graphTemplate != "" {
			t, err := catalog.LookupUITemplate(graphTemplate)
			if err != nil {
				return err
			}
			ui = &t
		}

		gen := &graph.Generator{Format: format, ClusterByKind: graphCluster}
		if graphSolution != "" {
			gen.Solution = graphSolution + generator.SolutionExt
		}
		return gen.Generate(cat, ui, cmd.OutOrStdout())
	},
}
