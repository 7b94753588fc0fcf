// Package graph renders the project reference graph of a catalog in DOT or
// Mermaid format.
package graph

import (
	"fmt"
	"io"
	"strings"

	"github.com/emicklei/dot"
	"github.com/solforge/solforge/internal/catalog"
)

// Format specifies the output format for the graph.
type Format string

const (
	// FormatDOT outputs Graphviz DOT format.
	FormatDOT Format = "dot"
	// FormatMermaid outputs Mermaid format for markdown rendering.
	FormatMermaid Format = "mermaid"
)

// ParseFormat converts a --format value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "", FormatDOT:
		return FormatDOT, nil
	case FormatMermaid:
		return f, nil
	default:
		return "", fmt.Errorf("unknown graph format %q: use dot or mermaid", s)
	}
}

// Generator creates reference graphs from a catalog.
type Generator struct {
	// Format specifies the output format. Defaults to dot.
	Format Format

	// Solution, when set, adds a node for the solution file with an edge to
	// every project it contains.
	Solution string

	// ClusterByKind groups projects by template kind.
	ClusterByKind bool
}

// Generate writes the graph of cat, plus the UI project when ui is non-nil,
// to w.
func (g *Generator) Generate(cat *catalog.Catalog, ui *catalog.UITemplate, w io.Writer) error {
	graph := g.buildGraph(cat, ui)

	var output string
	if g.Format == FormatMermaid {
		output = dot.MermaidGraph(graph, dot.MermaidTopToBottom)
	} else {
		output = graph.String()
	}

	_, err := io.WriteString(w, output)
	return err
}

// GenerateString is a convenience method that returns the graph as a string.
func (g *Generator) GenerateString(cat *catalog.Catalog, ui *catalog.UITemplate) (string, error) {
	var sb strings.Builder
	if err := g.Generate(cat, ui, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *Generator) buildGraph(cat *catalog.Catalog, ui *catalog.UITemplate) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)
	graph.Attr("rankdir", "BT")

	graph.NodeInitializer(func(n dot.Node) {
		n.Attr("shape", "box")
		n.Attr("fontname", "Arial")
	})
	graph.EdgeInitializer(func(e dot.Edge) {
		e.Attr("fontname", "Arial")
		e.Attr("fontsize", "10")
	})

	parents := map[catalog.TemplateKind]*dot.Graph{}
	parent := func(kind catalog.TemplateKind) *dot.Graph {
		if !g.ClusterByKind {
			return graph
		}
		if sub, ok := parents[kind]; ok {
			return sub
		}
		sub := graph.Subgraph(string(kind), dot.ClusterOption{})
		sub.Attr("label", string(kind))
		sub.Attr("style", "rounded")
		parents[kind] = sub
		return sub
	}

	nodes := map[string]dot.Node{}
	for _, p := range cat.Projects {
		n := parent(p.Kind).Node(p.Name)
		n.Label(fmt.Sprintf("%s\\n[%s]", p.Name, p.Kind))
		nodes[p.Name] = n
	}

	var uiName string
	if ui != nil {
		uiName = ui.ProjectName
		n := parent(ui.Kind()).Node(uiName)
		n.Label(fmt.Sprintf("%s\\n[%s]", uiName, ui.DotnetTemplate))
		n.Attr("style", "bold")
		nodes[uiName] = n
	}

	for _, p := range cat.Projects {
		for _, ref := range p.References {
			to, ok := nodes[ref]
			if !ok {
				continue
			}
			graph.Edge(nodes[p.Name], to)
		}
	}

	if g.Solution != "" {
		sln := graph.Node(g.Solution)
		sln.Attr("shape", "folder")
		for _, p := range cat.Projects {
			graph.Edge(nodes[p.Name], sln).Attr("style", "dashed").Attr("arrowhead", "none")
		}
		if uiName != "" {
			graph.Edge(nodes[uiName], sln).Attr("style", "dashed").Attr("arrowhead", "none")
		}
	}

	return graph
}
