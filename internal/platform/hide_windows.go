//go:build windows

package platform

import (
	"os/exec"
	"syscall"
)

// HideWindow keeps console children from flashing a window.
func HideWindow(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.HideWindow = true
}
