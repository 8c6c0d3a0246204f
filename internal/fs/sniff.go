package fs

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	sniffSize = 4096
	// content with more unprintable bytes than this is binary
	maxUnprintablePercent = 30
)

var binaryExtensions = map[string]bool{
	".7z": true, ".a": true, ".avi": true, ".bin": true, ".bmp": true,
	".bz2": true, ".class": true, ".dll": true, ".dylib": true, ".exe": true,
	".flac": true, ".gif": true, ".gz": true, ".ico": true, ".iso": true,
	".jar": true, ".jpeg": true, ".jpg": true, ".mkv": true, ".mov": true,
	".mp3": true, ".mp4": true, ".o": true, ".ogg": true, ".pdf": true,
	".png": true, ".so": true, ".tar": true, ".tgz": true, ".ttf": true,
	".wasm": true, ".wav": true, ".webp": true, ".woff": true, ".woff2": true,
	".xz": true, ".zip": true, ".zst": true,
}

// ReadHead reads at most limit bytes from the start of path.
func ReadHead(fsys afero.Fs, path string, limit int64) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return io.ReadAll(io.LimitReader(f, limit))
}

// DecodeText returns content as UTF-8 text, ok being false for binary
// content. A byte order mark selects the UTF-8 or UTF-16 decoding and is
// dropped.
func DecodeText(path string, content []byte) (text string, ok bool) {
	if binaryExtensions[strings.ToLower(filepath.Ext(path))] {
		return "", false
	}
	if hasBOM(content) {
		decoder := unicode.BOMOverride(encoding.Nop.NewDecoder())
		if out, _, err := transform.Bytes(decoder, content); err == nil {
			return string(out), true
		}
	}
	sample := content[:min(len(content), sniffSize)]
	if bytes.IndexByte(sample, 0) >= 0 {
		return "", false
	}
	if !utf8.Valid(sample) && unprintablePercent(sample) >= maxUnprintablePercent {
		return "", false
	}
	return string(content), true
}

func hasBOM(content []byte) bool {
	return bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}) ||
		bytes.HasPrefix(content, []byte{0xFF, 0xFE}) ||
		bytes.HasPrefix(content, []byte{0xFE, 0xFF})
}

func unprintablePercent(sample []byte) int {
	if len(sample) == 0 {
		return 0
	}
	unprintable := 0
	for _, b := range sample {
		switch {
		case b == '\t', b == '\n', b == '\r', b == 0x1B:
		case b >= 0x20 && b != 0x7F:
		default:
			unprintable++
		}
	}
	return unprintable * 100 / len(sample)
}
