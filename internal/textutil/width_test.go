package textutil

import "testing"

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"ascii", "slide_a", 7},
		{"wide runes", "你好", 4},
		{"combining accent", "café", 4},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{"fits without truncation", "slide_a", 20, "slide_a"},
		{"adds ellipsis when needed", "verylongname", 6, "veryl…"},
		{"only ellipsis when width too small", "example", 1, "…"},
		{"multi-byte characters respected", "你好世界", 5, "你好…"},
		{"returns empty when width is zero", "anything", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.width); got != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, got, tt.width)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Fatalf("expected padding, got %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("expected untouched text, got %q", got)
	}
}
