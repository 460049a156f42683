package css

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	cssparse "github.com/tdewolff/parse/v2/css"
)

// ParsedRule is one rule read back from stylesheet text.
type ParsedRule struct {
	Selector     string
	Declarations []Declaration
}

// Class returns the class name for a plain class selector, empty for
// anything else.
func (r ParsedRule) Class() string {
	if strings.HasPrefix(r.Selector, ".") && !strings.ContainsAny(r.Selector[1:], ".:#[ \t") {
		return r.Selector[1:]
	}
	return ""
}

// Parse reads stylesheet text back into rules in document order. Comments
// and at-rules are dropped, rules nested inside at-rule blocks surface
// flattened. It exists to double check generated output, it is not a
// general CSS reader.
func Parse(data []byte) ([]ParsedRule, error) {
	var (
		rules []ParsedRule
		open  bool
	)

	p := cssparse.NewParser(parse.NewInput(bytes.NewReader(data)), false)
	for {
		gt, _, tok := p.Next()
		switch gt {
		case cssparse.ErrorGrammar:
			if err := p.Err(); err != nil && !errors.Is(err, io.EOF) {
				return rules, fmt.Errorf("stylesheet is not well formed: %w", err)
			}
			return rules, nil

		case cssparse.BeginRulesetGrammar, cssparse.QualifiedRuleGrammar:
			rules = append(rules, ParsedRule{Selector: joinTokens(tok, p.Values())})
			open = true

		case cssparse.DeclarationGrammar:
			if !open {
				continue
			}
			cur := &rules[len(rules)-1]
			cur.Declarations = append(cur.Declarations, Declaration{
				Property: string(tok),
				Value:    joinTokens(nil, p.Values()),
			})

		case cssparse.EndRulesetGrammar:
			open = false
		}
	}
}

// joinTokens reassembles token text collapsing whitespace runs to a single
// space.
func joinTokens(head []byte, values []cssparse.Token) string {
	var sb strings.Builder
	sb.Write(head)
	space := false
	for _, v := range values {
		if v.TokenType == cssparse.WhitespaceToken {
			space = sb.Len() > 0
			continue
		}
		if space {
			sb.WriteByte(' ')
			space = false
		}
		sb.Write(v.Data)
	}
	return strings.TrimSpace(sb.String())
}
