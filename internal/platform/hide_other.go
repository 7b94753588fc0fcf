//go:build !windows

package platform

import "os/exec"

// HideWindow is a no-op outside Windows.
func HideWindow(cmd *exec.Cmd) {}
