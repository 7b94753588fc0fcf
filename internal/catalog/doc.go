// Package catalog holds the static description of what a generated solution
// contains: the ordered library ProjectSpecs with their reference edges, the
// closed set of UI project templates, and the supported target frameworks.
//
// The default catalog is embedded. A catalog can also be read from a YAML
// file; it is validated against an embedded JSON Schema and then checked for
// duplicate names and for references that do not point at earlier entries.
// Catalog order is never rearranged: it must already be a valid
// dependencies-first order.
package catalog
