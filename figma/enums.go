// Package figma models the design document tree returned by the Figma web
// API and implements retrieval over its REST surface. Wire values arrive
// in UPPER_SNAKE form and are parsed tolerantly: anything unknown falls
// back to the documented default at the point of use.
package figma

// Node kind as reported by the API.
// ENUM(document, canvas, frame, group, component, instance, text, rectangle, ellipse, vector, star, polygon)
type NodeKind string

// Paint kind of a fill or stroke entry.
// ENUM(solid, gradient_linear, gradient_radial, gradient_angular, image)
type PaintKind string

// Effect kind.
// ENUM(drop_shadow, inner_shadow, layer_blur, background_blur)
type EffectKind string

// Layer blend mode.
// ENUM(pass_through, normal, darken, multiply, linear_burn, color_burn, lighten, screen, linear_dodge, color_dodge, overlay, soft_light, hard_light, difference, exclusion, hue, saturation, color, luminosity)
type BlendMode string

// Auto-layout flow direction.
// ENUM(none, horizontal, vertical)
type LayoutMode string

// Axis alignment of an auto-layout container.
// ENUM(min, center, max, space_between, baseline)
type AxisAlign string

// Sizing behavior along one axis.
// ENUM(fixed, fill, hug)
type SizingMode string

// Stroke placement relative to the node boundary.
// ENUM(inside, outside, center)
type StrokeAlign string

// Auto-layout wrapping behavior.
// ENUM(no_wrap, wrap)
type LayoutWrap string

// Text case transformation.
// ENUM(original, upper, lower, title, small_caps, small_caps_forced)
type TextCase string

// Text decoration.
// ENUM(none, underline, strikethrough)
type TextDecoration string

// Horizontal text alignment.
// ENUM(left, right, center, justified)
type HorizontalAlign string

// Vertical text alignment.
// ENUM(top, center, bottom)
type VerticalAlign string

// Layout constraint relative to the parent container.
// ENUM(left, right, top, bottom, center, left_right, top_bottom, scale)
type Constraint string

// CSS returns the equivalent mix-blend-mode keyword. The second return is
// false for modes without a CSS counterpart, pass-through included.
func (b BlendMode) CSS() (string, bool) {
	v, ok := blendModeCSS[b]
	return v, ok
}

var blendModeCSS = map[BlendMode]string{
	BlendModeNormal:     "normal",
	BlendModeDarken:     "darken",
	BlendModeMultiply:   "multiply",
	BlendModeColorBurn:  "color-burn",
	BlendModeLighten:    "lighten",
	BlendModeScreen:     "screen",
	BlendModeColorDodge: "color-dodge",
	BlendModeOverlay:    "overlay",
	BlendModeSoftLight:  "soft-light",
	BlendModeHardLight:  "hard-light",
	BlendModeDifference: "difference",
	BlendModeExclusion:  "exclusion",
	BlendModeHue:        "hue",
	BlendModeSaturation: "saturation",
	BlendModeColor:      "color",
	BlendModeLuminosity: "luminosity",
}
