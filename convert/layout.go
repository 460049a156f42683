package convert

import (
	"fig2html/css"
	"fig2html/figma"
)

// LayoutStyles derives flexbox, positioning, sizing, overflow and transform
// declarations for a node, in that order. The parent is needed to translate
// absolute coordinates and to suppress absolute positioning under auto
// layout, pass nil for the page root.
func LayoutStyles(n, parent *figma.Node) []css.Declaration {
	var ds []css.Declaration
	ds = append(ds, autoLayoutStyles(n)...)
	ds = append(ds, positionStyles(n, parent)...)
	ds = append(ds, sizeStyles(n)...)
	if n.ClipsContent {
		ds = append(ds, css.Decl("overflow", "hidden"))
	}
	if n.Rotation != 0 {
		ds = append(ds, css.Decl("transform", "rotate("+ftoa(n.Rotation)+"deg)"))
	}
	return ds
}

// autoLayoutStyles sets up the node as a flex container. Only nodes that
// themselves declare a horizontal or vertical layout mode become one.
func autoLayoutStyles(n *figma.Node) []css.Declaration {
	if !n.AutoLayout() {
		return nil
	}

	ds := []css.Declaration{css.Decl("display", "flex")}
	if n.Layout() == figma.LayoutModeHorizontal {
		ds = append(ds, css.Decl("flex-direction", "row"))
	} else {
		ds = append(ds, css.Decl("flex-direction", "column"))
	}

	// The main axis mapping does not depend on the direction.
	switch n.PrimaryAlign() {
	case figma.AxisAlignMin:
		ds = append(ds, css.Decl("justify-content", "flex-start"))
	case figma.AxisAlignCenter:
		ds = append(ds, css.Decl("justify-content", "center"))
	case figma.AxisAlignMax:
		ds = append(ds, css.Decl("justify-content", "flex-end"))
	case figma.AxisAlignSpaceBetween:
		ds = append(ds, css.Decl("justify-content", "space-between"))
	}

	switch n.CounterAlign() {
	case figma.AxisAlignMin:
		ds = append(ds, css.Decl("align-items", "flex-start"))
	case figma.AxisAlignCenter:
		ds = append(ds, css.Decl("align-items", "center"))
	case figma.AxisAlignMax:
		ds = append(ds, css.Decl("align-items", "flex-end"))
	case figma.AxisAlignBaseline:
		ds = append(ds, css.Decl("align-items", "baseline"))
	}

	if n.ItemSpacing > 0 {
		ds = append(ds, css.Decl("gap", px(n.ItemSpacing)))
	}
	ds = append(ds, paddingStyles(n)...)
	if n.Wrapping() == figma.LayoutWrapWrap {
		ds = append(ds, css.Decl("flex-wrap", "wrap"))
	}
	return ds
}

// paddingStyles collapses equal paddings into the single value shorthand and
// emits the four value one otherwise. All zero paddings emit nothing.
func paddingStyles(n *figma.Node) []css.Declaration {
	t, r, b, l := n.PaddingTop, n.PaddingRight, n.PaddingBottom, n.PaddingLeft
	if t == r && r == b && b == l {
		if t > 0 {
			return []css.Declaration{css.Decl("padding", px(t))}
		}
		return nil
	}
	if t > 0 || r > 0 || b > 0 || l > 0 {
		return []css.Declaration{css.Decl("padding", px(t)+" "+px(r)+" "+px(b)+" "+px(l))}
	}
	return nil
}

// positionStyles places the node absolutely relative to its parent's origin.
// Children of auto layout containers are placed by flexbox instead and get
// nothing here.
func positionStyles(n, parent *figma.Node) []css.Declaration {
	var x, y float64
	if n.Box != nil {
		x, y = n.Box.X, n.Box.Y
	}
	if parent != nil && parent.Box != nil {
		x -= parent.Box.X
		y -= parent.Box.Y
	}
	if parent != nil && parent.AutoLayout() {
		return nil
	}
	return []css.Declaration{
		css.Decl("position", "absolute"),
		css.Decl("left", px(x)),
		css.Decl("top", px(y)),
	}
}

// sizeStyles resolves each axis independently: fill and hug sizing win over
// the bounding box, explicit dimensions are emitted only when positive.
func sizeStyles(n *figma.Node) []css.Declaration {
	var w, h float64
	if n.Box != nil {
		w, h = n.Box.Width, n.Box.Height
	}

	var ds []css.Declaration
	switch n.HorizontalSizing() {
	case figma.SizingModeFill:
		ds = append(ds, css.Decl("width", "100%"))
	case figma.SizingModeHug:
		ds = append(ds, css.Decl("width", "fit-content"))
	default:
		if w > 0 {
			ds = append(ds, css.Decl("width", px(w)))
		}
	}
	switch n.VerticalSizing() {
	case figma.SizingModeFill:
		ds = append(ds, css.Decl("height", "100%"))
	case figma.SizingModeHug:
		ds = append(ds, css.Decl("height", "fit-content"))
	default:
		if h > 0 {
			ds = append(ds, css.Decl("height", px(h)))
		}
	}
	return ds
}

// constraintStyles pins the node to the edges of its containing frame. Off by
// default, enabled with the document.constraints configuration switch.
func constraintStyles(n *figma.Node) []css.Declaration {
	if n.Constraints == nil {
		return nil
	}

	var ds []css.Declaration
	switch n.Constraints.Horiz() {
	case figma.ConstraintLeftRight:
		ds = append(ds, css.Decl("left", "0"), css.Decl("right", "0"))
	case figma.ConstraintRight:
		ds = append(ds, css.Decl("right", "0"))
	case figma.ConstraintCenter:
		ds = append(ds, css.Decl("left", "50%"), css.Decl("transform", "translateX(-50%)"))
	case figma.ConstraintScale:
		ds = append(ds, css.Decl("width", "100%"))
	}
	switch n.Constraints.Vert() {
	case figma.ConstraintTopBottom:
		ds = append(ds, css.Decl("top", "0"), css.Decl("bottom", "0"))
	case figma.ConstraintBottom:
		ds = append(ds, css.Decl("bottom", "0"))
	case figma.ConstraintCenter:
		ds = append(ds, css.Decl("top", "50%"), css.Decl("transform", "translateY(-50%)"))
	case figma.ConstraintScale:
		ds = append(ds, css.Decl("height", "100%"))
	}
	return ds
}
