package platform

import (
	"os/exec"
	"runtime"
)

// ShellArgv returns the interpreter argv that runs commandLine without
// loading any profile or startup scripts.
func ShellArgv(commandLine string) []string {
	return shellArgv(runtime.GOOS, commandLine)
}

func shellArgv(goos, commandLine string) []string {
	if goos == "windows" {
		return []string{"powershell.exe", "-NoLogo", "-NoProfile", "-NonInteractive", "-Command", commandLine}
	}
	return []string{"/bin/sh", "-c", commandLine}
}

// ShellCommand builds an exec.Cmd that runs commandLine through the
// interpreter with a hidden window.
func ShellCommand(commandLine string) *exec.Cmd {
	argv := ShellArgv(commandLine)
	cmd := exec.Command(argv[0], argv[1:]...)
	HideWindow(cmd)
	return cmd
}

// ExecutableName appends ".exe" on Windows.
func ExecutableName(name string) string {
	return executableName(runtime.GOOS, name)
}

func executableName(goos, name string) string {
	if goos == "windows" {
		return name + ".exe"
	}
	return name
}

// DefaultIDEPath returns the conventional Visual Studio location, or "" on
// platforms without one.
func DefaultIDEPath() string {
	return defaultIDEPath(runtime.GOOS)
}

func defaultIDEPath(goos string) string {
	if goos == "windows" {
		return `C:\Program Files\Microsoft Visual Studio\2022\Community\Common7\IDE\devenv.exe`
	}
	return ""
}
