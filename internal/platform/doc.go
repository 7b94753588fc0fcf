// Package platform hides the OS differences the generator runs into: which
// command interpreter runs a shell command line, how its window is hidden on
// Windows, and what the default executable names and IDE location are.
package platform
