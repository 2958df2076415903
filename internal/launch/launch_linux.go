//go:build linux

package launch

import (
	"os/exec"
	"os/signal"
	"syscall"
)

// IgnoreChildren disowns SIGCHLD so exited children are reaped by the
// kernel and never linger as zombies.
func IgnoreChildren() {
	signal.Ignore(syscall.SIGCHLD)
}

// detach starts the child in its own session.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
