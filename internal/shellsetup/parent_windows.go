//go:build windows

package shellsetup

import (
	"os"

	"golang.org/x/sys/windows"
)

// ParentShellName returns the executable of the parent process, which is
// the shell when rdirverb is launched from a console.
func ParentShellName() string {
	ppid := os.Getppid()
	if ppid <= 0 {
		return ""
	}
	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_LIMITED_INFORMATION, false, uint32(ppid))
	if err != nil {
		return ""
	}
	defer func() {
		_ = windows.CloseHandle(handle)
	}()

	buf := make([]uint16, windows.MAX_LONG_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(handle, 0, &buf[0], &size); err != nil {
		return ""
	}
	return windows.UTF16ToString(buf[:size])
}
