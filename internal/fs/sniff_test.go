package fs

import (
	"runtime"
	"testing"

	"github.com/spf13/afero"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content []byte
		want    string
		ok      bool
	}{
		{"plain", "a.txt", []byte("hello\n"), "hello\n", true},
		{"empty", "a.txt", nil, "", true},
		{"utf8 bom", "a.txt", []byte("\xEF\xBB\xBFhi"), "hi", true},
		{"utf16 le", "config.ini", []byte{0xFF, 0xFE, 0x41, 0x00, 0x0D, 0x00, 0x0A, 0x00}, "A\r\n", true},
		{"utf16 be", "config.ini", []byte{0xFE, 0xFF, 0x00, 0x41}, "A", true},
		{"nul byte", "data", []byte("ab\x00cd"), "", false},
		{"binary extension", "logo.PNG", []byte("not really"), "", false},
		{"latin1", "old.txt", []byte("caf\xe9 cr\xe8me"), "caf\xe9 cr\xe8me", true},
		{"control bytes", "blob", []byte("\x01\x02\x03\x04\xff"), "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecodeText(tt.path, tt.content)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("DecodeText(%q) = (%q, %v), want (%q, %v)", tt.content, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestReadHeadStopsAtLimit(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := afero.WriteFile(fsys, "/f", []byte("0123456789"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ReadHead(fsys, "/f", 4)
	if err != nil {
		t.Fatalf("ReadHead: %v", err)
	}
	if string(got) != "0123" {
		t.Fatalf("ReadHead = %q, want %q", got, "0123")
	}
	if _, err := ReadHead(fsys, "/missing", 4); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestEntryFromFileInfo(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/d/sub", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fsys, "/d/.rc", []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	info, err := fsys.Stat("/d/sub")
	if err != nil {
		t.Fatal(err)
	}
	dir := NewEntry(fsys, "/d", info)
	if !dir.IsDir || dir.FullPath != "/d/sub" || dir.IsHidden() {
		t.Fatalf("unexpected directory entry %+v", dir)
	}
	if got := dir.DisplayName(); got != "sub/" {
		t.Fatalf("DisplayName = %q", got)
	}

	info, err = fsys.Stat("/d/.rc")
	if err != nil {
		t.Fatal(err)
	}
	file := NewEntry(fsys, "/d", info)
	if file.IsDir || file.Size != 1 || file.DisplayName() != ".rc" {
		t.Fatalf("unexpected file entry %+v", file)
	}
	if !file.IsHidden() {
		t.Fatalf("dot files are hidden")
	}
}

func TestEntryNameIsNFC(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix paths")
	}
	fsys := afero.NewMemMapFs()
	decomposed := "cafe\u0301"
	if err := afero.WriteFile(fsys, "/"+decomposed, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	info, err := fsys.Stat("/" + decomposed)
	if err != nil {
		t.Fatal(err)
	}
	e := NewEntry(fsys, "/", info)
	if e.Name != "caf\u00e9" {
		t.Fatalf("Name = %q, want NFC form", e.Name)
	}
	if e.FullPath != "/"+decomposed {
		t.Fatalf("FullPath = %q keeps the name on disk", e.FullPath)
	}
}
