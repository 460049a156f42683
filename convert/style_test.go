package convert

import (
	"testing"

	"fig2html/figma"
)

func TestFillStyles(t *testing.T) {
	gradient := figma.Paint{
		Type: "GRADIENT_LINEAR",
		GradientStops: []figma.GradientStop{
			{Position: ptr(0.0), Color: &figma.Color{R: 1}},
			{Position: ptr(1.0), Color: &figma.Color{B: 1}},
		},
	}

	tests := []struct {
		name  string
		fills []figma.Paint
		want  string
	}{
		{
			"solid",
			[]figma.Paint{{Type: "SOLID", Color: &figma.Color{R: 1}}},
			"background-color: rgba(255, 0, 0, 1);",
		},
		{
			"solid with paint opacity",
			[]figma.Paint{{Type: "SOLID", Color: &figma.Color{B: 1, A: ptr(0.8)}, Opacity: ptr(0.5)}},
			"background-color: rgba(0, 0, 255, 0.4);",
		},
		{
			"invisible skipped",
			[]figma.Paint{{Type: "SOLID", Color: &figma.Color{R: 1}, Visible: ptr(false)}},
			"",
		},
		{
			"stacked fills keep order",
			[]figma.Paint{{Type: "SOLID", Color: &figma.Color{G: 1}}, gradient},
			"background-color: rgba(0, 255, 0, 1); background: linear-gradient(180.0deg, rgba(255, 0, 0, 1) 0.0%, rgba(0, 0, 255, 1) 100.0%);",
		},
		{
			"image placeholder",
			[]figma.Paint{{Type: "IMAGE", ImageRef: "abc123"}},
			"/* background-image: requires image ref abc123 */",
		},
		{
			"image without ref",
			[]figma.Paint{{Type: "IMAGE"}},
			"",
		},
		{
			"gradient without stops",
			[]figma.Paint{{Type: "GRADIENT_RADIAL"}},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &figma.Node{Fills: tt.fills}
			if got := declText(fillStyles(n)); got != tt.want {
				t.Errorf("fillStyles() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStrokeStyles(t *testing.T) {
	red := figma.Paint{Type: "SOLID", Color: &figma.Color{R: 1}}

	tests := []struct {
		name string
		node *figma.Node
		want string
	}{
		{
			"zero weight",
			&figma.Node{Strokes: []figma.Paint{red}},
			"",
		},
		{
			"no strokes",
			&figma.Node{StrokeWeight: 2},
			"",
		},
		{
			"solid inside",
			&figma.Node{Strokes: []figma.Paint{red}, StrokeWeight: 2, StrokeAlign: "INSIDE"},
			"border: 2px solid rgba(255, 0, 0, 1);",
		},
		{
			"solid outside",
			&figma.Node{Strokes: []figma.Paint{red}, StrokeWeight: 1.5, StrokeAlign: "OUTSIDE"},
			"border: 1.5px solid rgba(255, 0, 0, 1); box-sizing: content-box;",
		},
		{
			"gradient stroke",
			&figma.Node{
				Strokes: []figma.Paint{{
					Type: "GRADIENT_LINEAR",
					GradientStops: []figma.GradientStop{
						{Position: ptr(0.0), Color: &figma.Color{R: 1}},
						{Position: ptr(1.0), Color: &figma.Color{B: 1}},
					},
				}},
				StrokeWeight: 2,
			},
			"border: 2px solid; border-image: linear-gradient(180.0deg, rgba(255, 0, 0, 1) 0.0%, rgba(0, 0, 255, 1) 100.0%) 1;",
		},
		{
			"per side widths",
			&figma.Node{
				Strokes:       []figma.Paint{red},
				StrokeWeight:  2,
				StrokeWeights: &figma.StrokeWeights{Top: ptr(1.0), Left: ptr(4.0)},
			},
			"border: 2px solid rgba(255, 0, 0, 1); border-top-width: 1px; border-right-width: 2px; border-bottom-width: 2px; border-left-width: 4px;",
		},
		{
			"per side widths with invisible stroke",
			&figma.Node{
				Strokes:       []figma.Paint{{Type: "SOLID", Color: &figma.Color{R: 1}, Visible: ptr(false)}},
				StrokeWeight:  3,
				StrokeWeights: &figma.StrokeWeights{Bottom: ptr(6.0)},
			},
			"border-top-width: 3px; border-right-width: 3px; border-bottom-width: 6px; border-left-width: 3px;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := declText(strokeStyles(tt.node)); got != tt.want {
				t.Errorf("strokeStyles() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRadiusStyles(t *testing.T) {
	tests := []struct {
		name string
		node *figma.Node
		want string
	}{
		{"uniform", &figma.Node{CornerRadius: 8}, "border-radius: 8px;"},
		{"per corner", &figma.Node{RectangleCornerRadii: []float64{1, 2, 3, 4}}, "border-radius: 1px 2px 3px 4px;"},
		{
			"both",
			&figma.Node{CornerRadius: 8, RectangleCornerRadii: []float64{1, 2, 3, 4}},
			"border-radius: 8px; border-radius: 1px 2px 3px 4px;",
		},
		{"wrong corner count", &figma.Node{RectangleCornerRadii: []float64{1, 2}}, ""},
		{"zero radius", &figma.Node{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := declText(radiusStyles(tt.node)); got != tt.want {
				t.Errorf("radiusStyles() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEffectStyles(t *testing.T) {
	tests := []struct {
		name    string
		effects []figma.Effect
		want    string
	}{
		{
			"drop shadow",
			[]figma.Effect{{
				Type:   "DROP_SHADOW",
				Offset: &figma.Vec2{X: ptr(2.0), Y: ptr(4.0)},
				Radius: 6,
				Color:  &figma.Color{A: ptr(0.25)},
			}},
			"box-shadow: 2px 4px 6px rgba(0, 0, 0, 0.25);",
		},
		{
			"inner shadow with defaults",
			[]figma.Effect{{Type: "INNER_SHADOW", Radius: 5}},
			"box-shadow: inset 0px 0px 5px rgba(0, 0, 0, 1);",
		},
		{
			"layer blur",
			[]figma.Effect{{Type: "LAYER_BLUR", Radius: 4}},
			"filter: blur(4px);",
		},
		{
			"background blur",
			[]figma.Effect{{Type: "BACKGROUND_BLUR", Radius: 10}},
			"backdrop-filter: blur(10px);",
		},
		{
			"zero radius blur",
			[]figma.Effect{{Type: "LAYER_BLUR"}},
			"",
		},
		{
			"invisible effect",
			[]figma.Effect{{Type: "DROP_SHADOW", Radius: 6, Visible: ptr(false)}},
			"",
		},
		{
			"shadows fold after blurs",
			[]figma.Effect{
				{Type: "DROP_SHADOW", Offset: &figma.Vec2{X: ptr(2.0), Y: ptr(2.0)}, Radius: 4},
				{Type: "LAYER_BLUR", Radius: 3},
				{Type: "INNER_SHADOW", Radius: 2},
			},
			"filter: blur(3px); box-shadow: 2px 2px 4px rgba(0, 0, 0, 1), inset 0px 0px 2px rgba(0, 0, 0, 1);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &figma.Node{Effects: tt.effects}
			if got := declText(effectStyles(n)); got != tt.want {
				t.Errorf("effectStyles() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTextStyles(t *testing.T) {
	tests := []struct {
		name  string
		style *figma.TextStyle
		want  string
	}{
		{
			"nothing set",
			nil,
			"",
		},
		{
			"everything set",
			&figma.TextStyle{
				FontFamily:          "Inter",
				FontSize:            ptr(32.0),
				FontWeight:          ptr(700.0),
				LineHeightPx:        ptr(40.0),
				LetterSpacing:       ptr(0.5),
				TextAlignHorizontal: "CENTER",
				TextAlignVertical:   "BOTTOM",
				TextDecoration:      "STRIKETHROUGH",
				TextCase:            "UPPER",
			},
			"font-family: 'Inter', sans-serif; font-size: 32px; font-weight: 700; line-height: 40px; " +
				"letter-spacing: 0.5px; text-align: center; align-items: flex-end; " +
				"text-decoration: line-through; text-transform: uppercase;",
		},
		{
			"percent line height",
			&figma.TextStyle{LineHeightPercent: ptr(150.0)},
			"line-height: 1.5;",
		},
		{
			"percent of font size line height",
			&figma.TextStyle{LineHeightPercentFontSize: ptr(120.0)},
			"line-height: 1.2;",
		},
		{
			"pixel line height wins",
			&figma.TextStyle{LineHeightPx: ptr(24.0), LineHeightPercent: ptr(150.0)},
			"line-height: 24px;",
		},
		{
			"justified alignment",
			&figma.TextStyle{TextAlignHorizontal: "JUSTIFIED"},
			"text-align: justify;",
		},
		{
			"zero letter spacing still emitted",
			&figma.TextStyle{LetterSpacing: ptr(0.0)},
			"letter-spacing: 0px;",
		},
		{
			"plain decoration and case",
			&figma.TextStyle{TextDecoration: "NONE", TextCase: "ORIGINAL"},
			"",
		},
		{
			"css spelling of strikethrough",
			&figma.TextStyle{TextDecoration: "LINE-THROUGH"},
			"text-decoration: line-through;",
		},
		{
			"unknown alignment ignored",
			&figma.TextStyle{TextAlignHorizontal: "DIAGONAL", TextAlignVertical: "MIDDLE"},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := declText(textStyles(tt.style)); got != tt.want {
				t.Errorf("textStyles() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVisualStyles(t *testing.T) {
	tests := []struct {
		name string
		node *figma.Node
		want string
	}{
		{
			"opacity below one",
			&figma.Node{Opacity: ptr(0.5)},
			"opacity: 0.5;",
		},
		{
			"full opacity",
			&figma.Node{Opacity: ptr(1.0)},
			"",
		},
		{
			"blend mode",
			&figma.Node{BlendMode: "MULTIPLY"},
			"mix-blend-mode: multiply;",
		},
		{
			"pass through blend",
			&figma.Node{BlendMode: "PASS_THROUGH"},
			"",
		},
		{
			"typography only on text nodes",
			&figma.Node{Type: "RECTANGLE", Style: &figma.TextStyle{FontFamily: "Inter"}},
			"",
		},
		{
			"text node typography",
			&figma.Node{Type: "TEXT", Style: &figma.TextStyle{FontFamily: "Inter"}},
			"font-family: 'Inter', sans-serif;",
		},
		{
			"fixed order",
			&figma.Node{
				Fills:        []figma.Paint{{Type: "SOLID", Color: &figma.Color{R: 1}}},
				Strokes:      []figma.Paint{{Type: "SOLID", Color: &figma.Color{G: 1}}},
				StrokeWeight: 1,
				CornerRadius: 4,
				Effects:      []figma.Effect{{Type: "LAYER_BLUR", Radius: 2}},
				Opacity:      ptr(0.9),
				BlendMode:    "SCREEN",
			},
			"background-color: rgba(255, 0, 0, 1); border: 1px solid rgba(0, 255, 0, 1); " +
				"border-radius: 4px; filter: blur(2px); opacity: 0.9; mix-blend-mode: screen;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := declText(VisualStyles(tt.node)); got != tt.want {
				t.Errorf("VisualStyles() = %q, want %q", got, tt.want)
			}
		})
	}
}
