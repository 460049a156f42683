package figma

import (
	"strings"
	"time"
)

// File is the top level payload of the files endpoint.
type File struct {
	Name          string    `json:"name"`
	LastModified  time.Time `json:"lastModified"`
	ThumbnailURL  string    `json:"thumbnailUrl"`
	Version       string    `json:"version"`
	Role          string    `json:"role"`
	EditorType    string    `json:"editorType"`
	SchemaVersion int       `json:"schemaVersion"`
	Document      *Node     `json:"document"`
}

// Pages lists the canvases of the document in file order.
func (f *File) Pages() []*Node {
	if f.Document == nil {
		return nil
	}
	pages := make([]*Node, 0, len(f.Document.Children))
	for _, n := range f.Document.Children {
		if n.Kind() == NodeKindCanvas {
			pages = append(pages, n)
		}
	}
	return pages
}

// Node is a single element of the document tree. Fields cover the union of
// node types we render, absent properties stay at their zero values and are
// interpreted at the point of use.
type Node struct {
	ID                     string         `json:"id"`
	Name                   string         `json:"name"`
	Type                   string         `json:"type"`
	Visible                *bool          `json:"visible"`
	Opacity                *float64       `json:"opacity"`
	BlendMode              string         `json:"blendMode"`
	Children               []*Node        `json:"children"`
	Box                    *Rect          `json:"absoluteBoundingBox"`
	Constraints            *Constraints   `json:"constraints"`
	ClipsContent           bool           `json:"clipsContent"`
	Rotation               float64        `json:"rotation"`
	LayoutMode             string         `json:"layoutMode"`
	LayoutWrap             string         `json:"layoutWrap"`
	LayoutSizingHorizontal string         `json:"layoutSizingHorizontal"`
	LayoutSizingVertical   string         `json:"layoutSizingVertical"`
	PrimaryAxisAlignItems  string         `json:"primaryAxisAlignItems"`
	CounterAxisAlignItems  string         `json:"counterAxisAlignItems"`
	ItemSpacing            float64        `json:"itemSpacing"`
	PaddingLeft            float64        `json:"paddingLeft"`
	PaddingRight           float64        `json:"paddingRight"`
	PaddingTop             float64        `json:"paddingTop"`
	PaddingBottom          float64        `json:"paddingBottom"`
	Fills                  []Paint        `json:"fills"`
	Strokes                []Paint        `json:"strokes"`
	StrokeWeight           float64        `json:"strokeWeight"`
	StrokeAlign            string         `json:"strokeAlign"`
	StrokeWeights          *StrokeWeights `json:"individualStrokeWeights"`
	CornerRadius           float64        `json:"cornerRadius"`
	RectangleCornerRadii   []float64      `json:"rectangleCornerRadii"`
	Effects                []Effect       `json:"effects"`
	Characters             string         `json:"characters"`
	Style                  *TextStyle     `json:"style"`
}

// Kind interprets the node type. Unknown and missing types come back as the
// zero kind and render as plain containers.
func (n *Node) Kind() NodeKind {
	k, err := ParseNodeKind(strings.ToLower(n.Type))
	if err != nil {
		return NodeKind("")
	}
	return k
}

// IsVisible tells if the node takes part in rendering, missing visibility
// means visible.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// Layout returns the auto layout mode, none when missing or unknown.
func (n *Node) Layout() LayoutMode {
	m, err := ParseLayoutMode(strings.ToLower(n.LayoutMode))
	if err != nil {
		return LayoutModeNone
	}
	return m
}

// AutoLayout tells if the node arranges children with flexbox.
func (n *Node) AutoLayout() bool {
	m := n.Layout()
	return m == LayoutModeHorizontal || m == LayoutModeVertical
}

// PrimaryAlign returns the main axis alignment, min when not set. An
// unrecognized value is returned as the invalid zero so the consumer can
// skip it.
func (n *Node) PrimaryAlign() AxisAlign {
	return parseAxisAlign(n.PrimaryAxisAlignItems)
}

// CounterAlign returns the cross axis alignment, min when not set.
func (n *Node) CounterAlign() AxisAlign {
	return parseAxisAlign(n.CounterAxisAlignItems)
}

func parseAxisAlign(wire string) AxisAlign {
	if wire == "" {
		return AxisAlignMin
	}
	a, err := ParseAxisAlign(strings.ToLower(wire))
	if err != nil {
		return AxisAlign("")
	}
	return a
}

// HorizontalSizing returns how the node sizes itself along the horizontal
// axis, fixed when missing or unknown.
func (n *Node) HorizontalSizing() SizingMode {
	m, err := ParseSizingMode(strings.ToLower(n.LayoutSizingHorizontal))
	if err != nil {
		return SizingModeFixed
	}
	return m
}

// VerticalSizing returns how the node sizes itself along the vertical axis,
// fixed when missing or unknown.
func (n *Node) VerticalSizing() SizingMode {
	m, err := ParseSizingMode(strings.ToLower(n.LayoutSizingVertical))
	if err != nil {
		return SizingModeFixed
	}
	return m
}

// Wrapping returns the auto layout wrap mode, no wrap when missing or unknown.
func (n *Node) Wrapping() LayoutWrap {
	w, err := ParseLayoutWrap(strings.ToLower(n.LayoutWrap))
	if err != nil {
		return LayoutWrapNoWrap
	}
	return w
}

// StrokePlacement returns where strokes sit relative to the node boundary,
// inside when missing or unknown.
func (n *Node) StrokePlacement() StrokeAlign {
	a, err := ParseStrokeAlign(strings.ToLower(n.StrokeAlign))
	if err != nil {
		return StrokeAlignInside
	}
	return a
}

// Blend returns the compositing mode, pass through when missing or unknown.
func (n *Node) Blend() BlendMode {
	m, err := ParseBlendMode(strings.ToLower(n.BlendMode))
	if err != nil {
		return BlendModePassThrough
	}
	return m
}

// Rect is an axis aligned bounding box in absolute canvas coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Constraints pin a node to the edges of its containing frame.
type Constraints struct {
	Horizontal string `json:"horizontal"`
	Vertical   string `json:"vertical"`
}

// Horiz returns the horizontal pin rule, left when missing or unknown.
func (c *Constraints) Horiz() Constraint {
	if c == nil {
		return ConstraintLeft
	}
	r, err := ParseConstraint(strings.ToLower(c.Horizontal))
	if err != nil {
		return ConstraintLeft
	}
	return r
}

// Vert returns the vertical pin rule, top when missing or unknown.
func (c *Constraints) Vert() Constraint {
	if c == nil {
		return ConstraintTop
	}
	r, err := ParseConstraint(strings.ToLower(c.Vertical))
	if err != nil {
		return ConstraintTop
	}
	return r
}

// Paint describes a single fill or stroke.
type Paint struct {
	Type                    string         `json:"type"`
	Visible                 *bool          `json:"visible"`
	Opacity                 *float64       `json:"opacity"`
	Color                   *Color         `json:"color"`
	GradientHandlePositions []Vec2         `json:"gradientHandlePositions"`
	GradientStops           []GradientStop `json:"gradientStops"`
	ImageRef                string         `json:"imageRef"`
}

// Kind interprets the paint type, unknown values come back as the zero kind.
func (p Paint) Kind() PaintKind {
	k, err := ParsePaintKind(strings.ToLower(p.Type))
	if err != nil {
		return PaintKind("")
	}
	return k
}

// IsVisible tells if the paint takes part in rendering, missing visibility
// means visible.
func (p Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// Alpha returns the paint level opacity multiplier, 1 when not set.
func (p Paint) Alpha() float64 {
	if p.Opacity == nil {
		return 1
	}
	return *p.Opacity
}

// Color is an RGBA color with channels in the 0 to 1 range.
type Color struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a"`
}

// Alpha returns the alpha channel, fully opaque when not set.
func (c *Color) Alpha() float64 {
	if c == nil || c.A == nil {
		return 1
	}
	return *c.A
}

// GradientStop is a color keyed to a position along the gradient axis.
type GradientStop struct {
	Position *float64 `json:"position"`
	Color    *Color   `json:"color"`
}

// Vec2 is a 2D point. Missing coordinates are kept apart from zero ones
// because gradient handles default differently per handle.
type Vec2 struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// XY returns the coordinates substituting def for the missing ones.
func (v *Vec2) XY(def float64) (float64, float64) {
	x, y := def, def
	if v != nil {
		if v.X != nil {
			x = *v.X
		}
		if v.Y != nil {
			y = *v.Y
		}
	}
	return x, y
}

// Effect is a visual effect attached to a node.
type Effect struct {
	Type    string   `json:"type"`
	Visible *bool    `json:"visible"`
	Radius  float64  `json:"radius"`
	Color   *Color   `json:"color"`
	Offset  *Vec2    `json:"offset"`
}

// Kind interprets the effect type, unknown values come back as the zero kind.
func (e Effect) Kind() EffectKind {
	k, err := ParseEffectKind(strings.ToLower(e.Type))
	if err != nil {
		return EffectKind("")
	}
	return k
}

// IsVisible tells if the effect is applied, missing visibility means visible.
func (e Effect) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

// StrokeWeights carries per side border widths for nodes with mixed strokes.
type StrokeWeights struct {
	Top    *float64 `json:"top"`
	Right  *float64 `json:"right"`
	Bottom *float64 `json:"bottom"`
	Left   *float64 `json:"left"`
}

// Sides returns the top, right, bottom and left widths in CSS order,
// substituting def for the missing ones.
func (w StrokeWeights) Sides(def float64) [4]float64 {
	out := [4]float64{def, def, def, def}
	for i, p := range []*float64{w.Top, w.Right, w.Bottom, w.Left} {
		if p != nil {
			out[i] = *p
		}
	}
	return out
}

// TextStyle carries the typography of a text node. Numeric fields are
// pointers, absence and an explicit zero mean different things here.
type TextStyle struct {
	FontFamily                string   `json:"fontFamily"`
	FontSize                  *float64 `json:"fontSize"`
	FontWeight                *float64 `json:"fontWeight"`
	LineHeightPx              *float64 `json:"lineHeightPx"`
	LineHeightPercent         *float64 `json:"lineHeightPercent"`
	LineHeightPercentFontSize *float64 `json:"lineHeightPercentFontSize"`
	LetterSpacing             *float64 `json:"letterSpacing"`
	TextAlignHorizontal       string   `json:"textAlignHorizontal"`
	TextAlignVertical         string   `json:"textAlignVertical"`
	TextDecoration            string   `json:"textDecoration"`
	TextCase                  string   `json:"textCase"`
}
