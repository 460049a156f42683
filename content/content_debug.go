package content

import (
	"fig2html/utils/debug"
)

// String returns a readable tree of the whole Content starting with the
// parsed document. It exists solely for manual inspection during debugging.
func (c *Content) String() string {
	if c == nil {
		return "<nil Content>"
	}

	tw := debug.NewTreeWriter()
	tw.Line(0, "source %q ref %s (%d bytes of JSON)", c.SrcName, c.RefID, len(c.Raw))

	out := tw.String()
	if c.File != nil {
		out += c.File.Dump()
	}
	return out
}
