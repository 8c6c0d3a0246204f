package state

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPreviewTextFile(t *testing.T) {
	con := newMemContext(t, map[string]string{
		"/proj/main.go": "package main\n\nfunc main() {\n\tprintln()\n}\n",
	})
	p := NewPreviewState("/proj/main.go", DefaultTreeOptions(), con)
	if p.Err() != nil {
		t.Fatalf("unexpected error: %v", p.Err())
	}
	want := []string{"package main", "", "func main() {", "    println()", "}"}
	if diff := cmp.Diff(want, p.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
	if p.Title() != "main.go" || p.IsRootSelected() || p.SelectedPath() != "/proj/main.go" {
		t.Fatalf("unexpected preview identity %q %q", p.Title(), p.SelectedPath())
	}

	if p.SelectedLine() != 0 || p.SelectedText() != "" {
		t.Fatalf("no line should be selected initially")
	}
	p.MoveSelection(3)
	if p.SelectedLine() != 3 || p.SelectedText() != "func main() {" {
		t.Fatalf("selected line %d %q", p.SelectedLine(), p.SelectedText())
	}
	p.MoveSelection(100)
	if p.SelectedLine() != 5 {
		t.Fatalf("selection should stop at the last line, got %d", p.SelectedLine())
	}
}

func TestPreviewBinaryFile(t *testing.T) {
	con := newMemContext(t, map[string]string{
		"/proj/blob.bin": string([]byte{0x00, 0x01, 0x02, 0xff, 0x00}),
	})
	p := NewPreviewState("/proj/blob.bin", DefaultTreeOptions(), con)
	if !p.IsBinary() {
		t.Fatal("expected a binary preview")
	}
	if diff := cmp.Diff([]string{"binary file, 5 bytes"}, p.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestPreviewDirectory(t *testing.T) {
	con := newMemContext(t, map[string]string{
		"/proj/a.txt":   "x",
		"/proj/sub/b.c": "x",
	})
	p := NewPreviewState("/proj", DefaultTreeOptions(), con)
	if diff := cmp.Diff([]string{"sub/", "a.txt"}, p.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestPreviewMissingFile(t *testing.T) {
	con := newMemContext(t, nil, "/proj")
	p := NewPreviewState("/proj/missing", DefaultTreeOptions(), con)
	if p.Err() == nil {
		t.Fatal("expected an error for a missing file")
	}
	if len(p.Lines()) != 0 {
		t.Fatalf("expected no lines, got %v", p.Lines())
	}
}

func TestPreviewDecodesUTF16(t *testing.T) {
	// "hi\n" in UTF-16LE behind its byte order mark
	con := newMemContext(t, map[string]string{
		"/proj/wide.txt": string([]byte{0xff, 0xfe, 'h', 0, 'i', 0, '\n', 0}),
	})
	p := NewPreviewState("/proj/wide.txt", DefaultTreeOptions(), con)
	if p.IsBinary() || p.Err() != nil {
		t.Fatalf("expected text, binary=%v err=%v", p.IsBinary(), p.Err())
	}
	if diff := cmp.Diff([]string{"hi"}, p.Lines()); diff != "" {
		t.Fatalf("lines mismatch (-want +got):\n%s", diff)
	}
}
