// Package toolchain probes the environment for the tools the generator drives:
// the dotnet CLI on PATH and an optional IDE executable. When the configured
// IDE path is wrong it can ask the user for another one, a bounded number of
// times. The result is an immutable Availability used for the rest of a run.
package toolchain
