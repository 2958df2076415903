//go:build !linux

package launch

import "os/exec"

// IgnoreChildren is a no-op off linux.
func IgnoreChildren() {}

func detach(cmd *exec.Cmd) {}
