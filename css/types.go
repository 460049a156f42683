// Package css models the stylesheet side of a conversion run: ordered
// declarations grouped into class rules, accumulated during the tree walk
// and serialized exactly once at the end.
package css

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single line inside a rule body. Property and Value
// render as "property: value;". A Declaration with an empty Property
// carries Value verbatim, which is how comment placeholders travel.
type Declaration struct {
	Property string
	Value    string
}

// Decl builds a property declaration.
func Decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// Comment builds a comment placeholder carried as a declaration.
func Comment(text string) Declaration {
	return Declaration{Value: "/* " + text + " */"}
}

// String renders the declaration the way it appears inside a rule body.
func (d Declaration) String() string {
	if d.Property == "" {
		return d.Value
	}
	return d.Property + ": " + d.Value + ";"
}

// Rule is one class selector with its declarations in insertion order.
// Later same-property declarations override earlier ones when the browser
// applies the rule, so order is preserved and duplicates are kept.
type Rule struct {
	Class        string
	Declarations []Declaration
}

// Stylesheet accumulates rules for a single conversion run in insertion
// order. Entries are never merged or removed. It is owned by one
// conversion call and must not be shared between calls.
type Stylesheet struct {
	rules []Rule
}

// Add appends a rule for class. Empty rules are kept but skipped at
// serialization time.
func (s *Stylesheet) Add(class string, decls []Declaration) {
	s.rules = append(s.rules, Rule{Class: class, Declarations: decls})
}

// Rules returns the accumulated rules in insertion order.
func (s *Stylesheet) Rules() []Rule {
	return s.rules
}

// WriteTo writes every non-empty rule in insertion order, blank line
// separated, implementing io.WriterTo. Declarations are indented by four
// spaces and the last rule ends with a newline.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	first := true
	for _, rule := range s.rules {
		if len(rule.Declarations) == 0 {
			continue
		}
		if !first {
			n, err := io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		first = false
		n, err := writeRule(w, rule)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the CSS text of the accumulated rules.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

func writeRule(w io.Writer, rule Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, ".%s {\n", rule.Class)
	total += n
	if err != nil {
		return total, err
	}
	for _, d := range rule.Declarations {
		n, err = fmt.Fprintf(w, "    %s\n", d.String())
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = io.WriteString(w, "}\n")
	total += n
	return total, err
}
