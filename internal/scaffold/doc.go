// Package scaffold writes the files the generator owns directly rather than
// through the dotnet CLI: the solution-level Directory.Build.props and
// Directory.Build.targets (rendered from embedded templates) and the
// per-project folder layout with .gitkeep placeholders. It also enforces that
// the solution root is empty before anything is generated.
package scaffold
