//go:build !windows

package shellsetup

import (
	"fmt"
	"os"
	"strings"
)

// ParentShellName returns the command name of the parent process where
// /proc exposes it, an empty string elsewhere.
func ParentShellName() string {
	comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", os.Getppid()))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(comm))
}
