//go:build windows

package fs

import (
	"strings"

	"golang.org/x/sys/windows"
)

func fileAttributes(fullPath string) (uint32, bool) {
	if fullPath == "" {
		return 0, false
	}
	p, err := windows.UTF16PtrFromString(fullPath)
	if err != nil {
		return 0, false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil {
		return 0, false
	}
	return attrs, true
}

// IsHidden reports dot files and files with the hidden attribute.
func IsHidden(fullPath string, name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	attrs, ok := fileAttributes(fullPath)
	return ok && attrs&windows.FILE_ATTRIBUTE_HIDDEN != 0
}

// ShouldHideFromListing reports the compatibility junctions of the system,
// e.g. "Application Data", which are never listed.
func ShouldHideFromListing(fullPath, _ string) bool {
	const junction = windows.FILE_ATTRIBUTE_SYSTEM | windows.FILE_ATTRIBUTE_REPARSE_POINT
	attrs, ok := fileAttributes(fullPath)
	return ok && attrs&junction == junction
}
