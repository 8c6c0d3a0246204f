package app

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"

	inputui "github.com/kk-code-lab/rdirverb/internal/ui/input"
)

// clipboardWriteAll and clipboardReadAll are swapped in tests.
var (
	clipboardWriteAll = clipboard.WriteAll
	clipboardReadAll  = clipboard.ReadAll
)

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	return clipboardReadAll()
}

func (systemClipboard) WriteAll(text string) error {
	return clipboardWriteAll(text)
}

// SystemClipboard returns the clipboard of the OS, nil when no clipboard
// tool (pbcopy, xclip, xsel, wl-copy, clip.exe) was found.
func SystemClipboard() inputui.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return systemClipboard{}
}

func normalizeClipboardPath(inputPath string, goos string) string {
	if strings.EqualFold(goos, "windows") {
		cleaned := filepath.Clean(inputPath)
		return strings.ReplaceAll(cleaned, "/", `\`)
	}
	return path.Clean(filepath.ToSlash(inputPath))
}
