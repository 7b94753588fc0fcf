// Package process runs external commands synchronously for the generator.
// An Invocation is either a shell command line, run through the platform
// interpreter, or an executable plus arguments, run directly. Every run logs a
// start line and a done/failed line; a non-zero exit is reported in the
// Result rather than as an error.
package process
