// Package debug contains small helpers for dumping internal state into
// bug reports.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

// Line writes a single formatted line indented to the requested depth.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	for range depth {
		tw.w.WriteString("  ")
	}
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes a labeled text value, quoted and truncated to at most
// max runes. Zero or negative max keeps the whole value.
func (tw TreeWriter) TextBlock(depth int, label, value string, max int) {
	for range depth {
		tw.w.WriteString("  ")
	}
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value, max))
	tw.w.WriteByte('\n')
}

func encodeText(raw string, max int) string {
	if raw == "" {
		return raw
	}
	if max > 0 {
		if runes := []rune(raw); len(runes) > max {
			raw = string(runes[:max]) + "..."
		}
	}
	return strconv.Quote(raw)
}
