//go:build !windows

package process

import "syscall"

// KillProcessGroup sends SIGKILL to the browser's whole process group so
// Chrome helper processes do not outlive a render. Non-positive PIDs are
// ignored: -0 would target our own group.
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	// Best-effort; launcher.Kill() is the fallback.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
