// Package launch starts external programs detached from the window manager.
package launch

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Detached runs command lines in a new session and never waits on them.
type Detached struct{}

// Spawn starts cmdline ("st", "chromium --incognito") and releases it.
func (Detached) Spawn(cmdline string) error {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return errors.New("spawn: empty command")
	}
	cmd := exec.Command(fields[0], fields[1:]...)
	detach(cmd)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("spawn %s: %w", fields[0], err)
	}
	return cmd.Process.Release()
}
