//go:build !windows

package fs

import "strings"

// IsHidden reports dot files.
func IsHidden(_ string, name string) bool {
	return strings.HasPrefix(name, ".")
}

// ShouldHideFromListing reports entries never listed. There are none
// outside Windows.
func ShouldHideFromListing(_, _ string) bool {
	return false
}
