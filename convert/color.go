package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"fig2html/figma"
)

// ftoa renders a float the shortest way that round trips, so whole values
// come out without a fraction.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// px renders a pixel dimension.
func px(v float64) string {
	return ftoa(v) + "px"
}

// ColorToCSS converts a normalized color to a CSS rgba() value. Channels are
// scaled to the 0 to 255 range truncating the fraction, alpha is multiplied
// by the paint level opacity. A nil color is opaque black.
func ColorToCSS(c *figma.Color, opacity float64) string {
	var r, g, b float64
	if c != nil {
		r, g, b = c.R, c.G, c.B
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", int(r*255), int(g*255), int(b*255), ftoa(c.Alpha()*opacity))
}

// GradientAngle derives the CSS gradient angle in degrees from the first two
// gradient handles. Fewer than two handles fall back to a vertical gradient.
func GradientAngle(handles []figma.Vec2) float64 {
	if len(handles) < 2 {
		return 180
	}
	x1, y1 := handles[0].XY(0)
	x2, y2 := handles[1].XY(1)
	return math.Atan2(y2-y1, x2-x1)*180/math.Pi + 90
}

// gradientCSS renders a gradient paint as the value of a CSS background.
// Paints without stops produce nothing.
func gradientCSS(p figma.Paint) (string, bool) {
	if len(p.GradientStops) == 0 {
		return "", false
	}
	switch p.Kind() {
	case figma.PaintKindGradientLinear:
		return fmt.Sprintf("linear-gradient(%.1fdeg, %s)",
			GradientAngle(p.GradientHandlePositions), gradientStops(p.GradientStops, 100, "%")), true
	case figma.PaintKindGradientRadial:
		return fmt.Sprintf("radial-gradient(circle, %s)", gradientStops(p.GradientStops, 100, "%")), true
	case figma.PaintKindGradientAngular:
		return fmt.Sprintf("conic-gradient(%s)", gradientStops(p.GradientStops, 360, "deg")), true
	}
	return "", false
}

// gradientStops renders stop colors with positions scaled to percent for
// linear and radial gradients or to degrees for angular ones, always with
// one decimal.
func gradientStops(stops []figma.GradientStop, scale float64, unit string) string {
	parts := make([]string, 0, len(stops))
	for _, s := range stops {
		var pos float64
		if s.Position != nil {
			pos = *s.Position
		}
		parts = append(parts, fmt.Sprintf("%s %.1f%s", ColorToCSS(s.Color, 1), pos*scale, unit))
	}
	return strings.Join(parts, ", ")
}
