package debug

import (
	"strings"
	"testing"
)

func TestNewTreeWriter(t *testing.T) {
	tw := NewTreeWriter()
	if tw == nil {
		t.Fatal("NewTreeWriter() returned nil")
	}
	if tw.w == nil {
		t.Error("TreeWriter builder is nil")
	}
}

func TestTreeWriter_String(t *testing.T) {
	tw := NewTreeWriter()
	if tw.String() != "" {
		t.Error("Expected empty string from new TreeWriter")
	}

	tw.w.WriteString("test content")
	if tw.String() != "test content" {
		t.Errorf("String() = %q, want %q", tw.String(), "test content")
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no indent", 0, "root", nil, "root\n"},
		{"one level", 1, "child", nil, "  child\n"},
		{"three levels", 3, "deep", nil, "      deep\n"},
		{"formatted", 1, "%s %d", []any{"node", 42}, "  node 42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() produced %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_MultipleLine(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "document")
	tw.Line(1, "page %d", 1)
	tw.Line(2, "frame")

	want := "document\n  page 1\n    frame\n"
	if got := tw.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		max   int
		want  string
	}{
		{"empty value", 0, "characters", "", 10, "characters: \n"},
		{"short value", 1, "characters", "Hello", 10, "  characters: \"Hello\"\n"},
		{"truncated", 0, "characters", "Hello, world", 5, "characters: \"Hello...\"\n"},
		{"no limit", 0, "characters", "Hello, world", 0, "characters: \"Hello, world\"\n"},
		{"escapes kept visible", 0, "characters", "a\nb", 10, "characters: \"a\\nb\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value, tt.max)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() produced %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlockRuneTruncation(t *testing.T) {
	tw := NewTreeWriter()
	tw.TextBlock(0, "characters", strings.Repeat("я", 8), 4)

	want := "characters: \"яяяя...\"\n"
	if got := tw.String(); got != want {
		t.Errorf("TextBlock() produced %q, want %q", got, want)
	}
}
