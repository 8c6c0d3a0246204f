package textutil

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"safe", "safe-file.txt", "safe-file.txt"},
		{"escape sequence", "bad\x1b[31m\npath", "bad?[31m path"},
		{"tab", "a\tb", "a b"},
		{"bidi override", "a\u202eb", "a<U+202E>b"},
		{"zero width space", "a\u200bb", "a<U+200B>b"},
		{"soft hyphen", "a\u00adb", "a<U+00AD>b"},
		{"line separator", "a\u2028b", "a<U+2028>b"},
		{"wide", "日本.txt", "日本.txt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"\tx", "    x"},
		{"ab\tx", "ab  x"},
		{"abcd\tx", "abcd    x"},
		{"日\tx", "日  x"},
		{"no tabs", "no tabs"},
	}
	for _, tt := range tests {
		if got := ExpandTabs(tt.in, DefaultTabWidth); got != tt.want {
			t.Fatalf("ExpandTabs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayWidthGraphemeClusters(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"ascii", "abc", 3},
		{"wide", "日本", 4},
		{"thumbs up with skin tone", "\U0001F44D\U0001F3FB", 2},
		{"family zwj", "\U0001F468\u200d\U0001F469\u200d\U0001F467", 2},
		{"flag regional indicators", "\U0001F1F5\U0001F1F1", 2},
		{"combining accent", "e\u0301", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := PadLeft("12 B", 7); got != "   12 B" {
		t.Fatalf("PadLeft = %q", got)
	}
	if got := PadRight("日本", 6); got != "日本  " {
		t.Fatalf("PadRight = %q", got)
	}
	if got := PadRight("toolong", 3); got != "toolong" {
		t.Fatalf("PadRight should not cut, got %q", got)
	}
}
