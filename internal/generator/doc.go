// Package generator orchestrates solution scaffolding: it checks the
// destination root, creates the solution, writes the build configuration
// files, then generates the catalog's library projects and the UI project by
// driving the dotnet CLI (and the IDE, when one is available) through a
// process.Runner.
//
// Every step receives an explicit *RunContext. Failures are returned as
// *Error values whose Code is the process exit code the CLI should use.
package generator
