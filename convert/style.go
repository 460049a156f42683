package convert

import (
	"strings"

	"fig2html/css"
	"fig2html/figma"
)

// VisualStyles derives paint, border, corner, effect, opacity, blend mode and
// typography declarations for a node. The order is fixed so that later
// declarations override earlier ones the way the browser applies them.
func VisualStyles(n *figma.Node) []css.Declaration {
	var ds []css.Declaration
	ds = append(ds, fillStyles(n)...)
	ds = append(ds, strokeStyles(n)...)
	ds = append(ds, radiusStyles(n)...)
	ds = append(ds, effectStyles(n)...)
	if n.Opacity != nil && *n.Opacity < 1 {
		ds = append(ds, css.Decl("opacity", ftoa(*n.Opacity)))
	}
	if mode, ok := n.Blend().CSS(); ok {
		ds = append(ds, css.Decl("mix-blend-mode", mode))
	}
	if n.Kind() == figma.NodeKindText {
		ds = append(ds, textStyles(n.Style)...)
	}
	return ds
}

// fillStyles walks the fill stack in order, every visible fill contributes a
// declaration. Image fills become an inert placeholder comment, embedding the
// actual image is out of scope.
func fillStyles(n *figma.Node) []css.Declaration {
	var ds []css.Declaration
	for _, fill := range n.Fills {
		if !fill.IsVisible() {
			continue
		}
		switch fill.Kind() {
		case figma.PaintKindSolid:
			ds = append(ds, css.Decl("background-color", ColorToCSS(fill.Color, fill.Alpha())))
		case figma.PaintKindGradientLinear, figma.PaintKindGradientRadial, figma.PaintKindGradientAngular:
			if g, ok := gradientCSS(fill); ok {
				ds = append(ds, css.Decl("background", g))
			}
		case figma.PaintKindImage:
			if len(fill.ImageRef) > 0 {
				ds = append(ds, css.Comment("background-image: requires image ref "+fill.ImageRef))
			}
		}
	}
	return ds
}

// strokeStyles renders strokes as borders. Nothing is emitted without strokes
// or with a zero stroke weight. Per side weights, when present, override the
// shorthand width after it.
func strokeStyles(n *figma.Node) []css.Declaration {
	if len(n.Strokes) == 0 || n.StrokeWeight == 0 {
		return nil
	}

	var ds []css.Declaration
	for _, stroke := range n.Strokes {
		if !stroke.IsVisible() {
			continue
		}
		switch stroke.Kind() {
		case figma.PaintKindSolid:
			ds = append(ds, css.Decl("border", px(n.StrokeWeight)+" solid "+ColorToCSS(stroke.Color, 1)))
			if n.StrokePlacement() == figma.StrokeAlignOutside {
				ds = append(ds, css.Decl("box-sizing", "content-box"))
			}
		case figma.PaintKindGradientLinear:
			if g, ok := gradientCSS(stroke); ok {
				ds = append(ds, css.Decl("border", px(n.StrokeWeight)+" solid"))
				ds = append(ds, css.Decl("border-image", g+" 1"))
			}
		}
	}

	if n.StrokeWeights != nil {
		sides := n.StrokeWeights.Sides(n.StrokeWeight)
		ds = append(ds,
			css.Decl("border-top-width", px(sides[0])),
			css.Decl("border-right-width", px(sides[1])),
			css.Decl("border-bottom-width", px(sides[2])),
			css.Decl("border-left-width", px(sides[3])))
	}
	return ds
}

// radiusStyles emits the uniform radius and the per corner radii, either or
// both may be present.
func radiusStyles(n *figma.Node) []css.Declaration {
	var ds []css.Declaration
	if n.CornerRadius > 0 {
		ds = append(ds, css.Decl("border-radius", px(n.CornerRadius)))
	}
	if len(n.RectangleCornerRadii) == 4 {
		r := n.RectangleCornerRadii
		ds = append(ds, css.Decl("border-radius", px(r[0])+" "+px(r[1])+" "+px(r[2])+" "+px(r[3])))
	}
	return ds
}

// effectStyles folds every visible shadow into a single box-shadow
// declaration emitted after the loop, blur effects are emitted inline as
// they are met.
func effectStyles(n *figma.Node) []css.Declaration {
	if len(n.Effects) == 0 {
		return nil
	}

	var ds []css.Declaration
	var shadows []string
	for _, e := range n.Effects {
		if !e.IsVisible() {
			continue
		}
		switch e.Kind() {
		case figma.EffectKindDropShadow, figma.EffectKindInnerShadow:
			x, y := e.Offset.XY(0)
			shadow := px(x) + " " + px(y) + " " + px(e.Radius) + " " + ColorToCSS(e.Color, 1)
			if e.Kind() == figma.EffectKindInnerShadow {
				shadow = "inset " + shadow
			}
			shadows = append(shadows, shadow)
		case figma.EffectKindLayerBlur:
			if e.Radius > 0 {
				ds = append(ds, css.Decl("filter", "blur("+px(e.Radius)+")"))
			}
		case figma.EffectKindBackgroundBlur:
			if e.Radius > 0 {
				ds = append(ds, css.Decl("backdrop-filter", "blur("+px(e.Radius)+")"))
			}
		}
	}
	if len(shadows) > 0 {
		ds = append(ds, css.Decl("box-shadow", strings.Join(shadows, ", ")))
	}
	return ds
}

// textStyles converts typography properties, each one independently optional.
func textStyles(st *figma.TextStyle) []css.Declaration {
	if st == nil {
		return nil
	}

	var ds []css.Declaration
	if len(st.FontFamily) > 0 {
		ds = append(ds, css.Decl("font-family", "'"+st.FontFamily+"', sans-serif"))
	}
	if st.FontSize != nil {
		ds = append(ds, css.Decl("font-size", px(*st.FontSize)))
	}
	if st.FontWeight != nil {
		ds = append(ds, css.Decl("font-weight", ftoa(*st.FontWeight)))
	}

	switch {
	case st.LineHeightPx != nil:
		ds = append(ds, css.Decl("line-height", px(*st.LineHeightPx)))
	case st.LineHeightPercent != nil:
		ds = append(ds, css.Decl("line-height", ftoa(*st.LineHeightPercent/100)))
	case st.LineHeightPercentFontSize != nil:
		ds = append(ds, css.Decl("line-height", ftoa(*st.LineHeightPercentFontSize/100)))
	}

	if st.LetterSpacing != nil {
		ds = append(ds, css.Decl("letter-spacing", px(*st.LetterSpacing)))
	}

	if a, err := figma.ParseHorizontalAlign(strings.ToLower(st.TextAlignHorizontal)); err == nil {
		v := a.String()
		if a == figma.HorizontalAlignJustified {
			v = "justify"
		}
		ds = append(ds, css.Decl("text-align", v))
	}

	// Vertical alignment relies on the element being a flex container,
	// which the tree walker guarantees for text nodes.
	if a, err := figma.ParseVerticalAlign(strings.ToLower(st.TextAlignVertical)); err == nil {
		switch a {
		case figma.VerticalAlignTop:
			ds = append(ds, css.Decl("align-items", "flex-start"))
		case figma.VerticalAlignCenter:
			ds = append(ds, css.Decl("align-items", "center"))
		case figma.VerticalAlignBottom:
			ds = append(ds, css.Decl("align-items", "flex-end"))
		}
	}

	dec := strings.ToLower(st.TextDecoration)
	if dec == "line-through" {
		// CSS spelling, same meaning.
		dec = figma.TextDecorationStrikethrough.String()
	}
	switch d, _ := figma.ParseTextDecoration(dec); d {
	case figma.TextDecorationUnderline:
		ds = append(ds, css.Decl("text-decoration", "underline"))
	case figma.TextDecorationStrikethrough:
		ds = append(ds, css.Decl("text-decoration", "line-through"))
	}

	switch c, _ := figma.ParseTextCase(strings.ToLower(st.TextCase)); c {
	case figma.TextCaseUpper:
		ds = append(ds, css.Decl("text-transform", "uppercase"))
	case figma.TextCaseLower:
		ds = append(ds, css.Decl("text-transform", "lowercase"))
	case figma.TextCaseTitle:
		ds = append(ds, css.Decl("text-transform", "capitalize"))
	}
	return ds
}
