package scene

// PaintStyle is the typed paint record applied to shapes.
// Colors are CSS color strings ("#FCC509", "rgba(0,0,0,0.85)",
// "transparent"); an empty string leaves the attribute unset.
type PaintStyle struct {
	Stroke    string  // outline color
	Fill      string  // fill color
	LineWidth float64 // outline width in pixels
}

// Transparent is the color string for a fully transparent paint.
const Transparent = "transparent"

// IsZero reports whether the style carries no paint at all.
func (s PaintStyle) IsZero() bool {
	return s.Stroke == "" && s.Fill == "" && s.LineWidth == 0
}
