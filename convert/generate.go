package convert

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"fig2html/css"
	"fig2html/figma"
)

// baseStyles opens every stylesheet: a box sizing and spacing reset plus the
// platform font stack. Generated rules follow it.
const baseStyles = `/* Base styles */
* {
    box-sizing: border-box;
    margin: 0;
    padding: 0;
}

body {
    margin: 0;
    padding: 0;
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', 'Helvetica', 'Arial', sans-serif;
}

/* Figma styles */`

const htmlSkeleton = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Figma to HTML</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
%s
</body>
</html>`

const noContent = "<div>No content</div>"

// classNameLimit caps the sanitized node name part of a class name.
const classNameLimit = 30

// Options adjust how a document is rendered.
type Options struct {
	// Constraints adds edge pinning rules derived from node constraints.
	Constraints bool
}

// generator owns the mutable state of one conversion pass: the stylesheet
// side table and the class name counter. Never share one across calls.
type generator struct {
	sheet   css.Stylesheet
	counter int
	opts    Options
	log     *zap.Logger
}

// Convert renders a parsed document into a standalone HTML page and the
// stylesheet it links. Only the first page of the document takes part, use
// ConvertPage to render a chosen one. A document without pages produces a
// fallback page and the bare base stylesheet.
func Convert(f *figma.File, opts Options, log *zap.Logger) (string, string) {
	if f == nil || f.Document == nil || len(f.Document.Children) == 0 {
		log.Warn("Document has no pages, producing fallback markup")
		return wrapHTML(noContent), baseStyles
	}
	return ConvertPage(f.Document.Children[0], opts, log)
}

// ConvertPage renders a single page subtree. Every call runs over fresh
// state, class names restart from one, so output is deterministic for a
// fixed tree.
func ConvertPage(page *figma.Node, opts Options, log *zap.Logger) (string, string) {
	g := &generator{opts: opts, log: log}
	content := g.visit(page, nil)
	log.Debug("Rendered page", zap.String("page", page.Name), zap.Int("classes", g.counter))
	return wrapHTML(content), g.stylesheet()
}

// visit renders one node and its subtree, returning the markup fragment.
// Structural nodes pass through to their children, invisible nodes and their
// subtrees produce nothing.
func (g *generator) visit(n, parent *figma.Node) string {
	switch n.Kind() {
	case figma.NodeKindDocument, figma.NodeKindCanvas:
		return g.visitChildren(n)
	}

	if !n.IsVisible() {
		return ""
	}

	class := g.className(n)

	styles := LayoutStyles(n, parent)
	if g.opts.Constraints {
		styles = append(styles, constraintStyles(n)...)
	}
	styles = append(styles, VisualStyles(n)...)

	if n.Kind() == figma.NodeKindText {
		// Text is centered vertically by default, flex containers keep
		// their own alignment.
		if !n.AutoLayout() {
			styles = append(styles, css.Decl("display", "flex"))
		}
		styles = append(styles, css.Decl("align-items", "center"))
	}

	g.sheet.Add(class, styles)

	switch n.Kind() {
	case figma.NodeKindText:
		return fmt.Sprintf("<div class=%q>%s</div>", class, escapeText(n.Characters))
	case figma.NodeKindRectangle, figma.NodeKindEllipse, figma.NodeKindVector,
		figma.NodeKindStar, figma.NodeKindPolygon:
		if len(n.Children) == 0 {
			return fmt.Sprintf("<div class=%q></div>", class)
		}
		return fmt.Sprintf("<div class=%q>\n%s\n</div>", class, g.visitChildren(n))
	default:
		// Frames, groups, components, instances and anything unknown
		// render as plain containers.
		return fmt.Sprintf("<div class=%q>\n%s\n</div>", class, g.visitChildren(n))
	}
}

// visitChildren joins the non-empty child fragments with newlines.
func (g *generator) visitChildren(n *figma.Node) string {
	parts := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		if frag := g.visit(child, n); len(frag) > 0 {
			parts = append(parts, frag)
		}
	}
	return strings.Join(parts, "\n")
}

// className allocates the next class name: a fixed tag, the sanitized node
// name and the counter value, unique within the run even for duplicate or
// empty names.
func (g *generator) className(n *figma.Node) string {
	name := n.Name
	if len(name) == 0 {
		name = "element"
	}

	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	safe := b.String()
	if runes := []rune(safe); len(runes) > classNameLimit {
		safe = string(runes[:classNameLimit])
	}

	g.counter++
	return fmt.Sprintf("figma-%s-%d", safe, g.counter)
}

// escapeText makes node text safe for markup, keeping line breaks.
func escapeText(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}

// stylesheet serializes the side table: the base block first, then the
// accumulated rules in insertion order.
func (g *generator) stylesheet() string {
	rules := g.sheet.String()
	if len(rules) == 0 {
		return baseStyles
	}
	return baseStyles + "\n" + rules
}

func wrapHTML(content string) string {
	return fmt.Sprintf(htmlSkeleton, content)
}
