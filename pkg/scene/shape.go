package scene

// ShapeKind distinguishes the leaf drawable types.
type ShapeKind int

const (
	// KindMarker is a filled glyph described by an outline path.
	KindMarker ShapeKind = iota
	// KindText is a text label anchored at (X, Y).
	KindText
)

// Align is the horizontal anchoring of a text shape.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Baseline is the vertical anchoring of a text shape relative to its
// anchor point.
type Baseline int

const (
	// BaselineTop anchors the top of the text at Y (text hangs below).
	BaselineTop Baseline = iota
	// BaselineBottom anchors the bottom of the text at Y (text sits above).
	BaselineBottom
)

// Shape is a leaf drawable in the scene graph.
//
// Marker shapes carry an outline path and a nominal radius used for hit
// testing. Text shapes carry the string plus alignment and baseline.
// The zero value is not usable on its own; shapes are attached to the
// tree with [Group.AddShape].
type Shape struct {
	Name string    // identifier, e.g. "point-3"
	Kind ShapeKind // marker or text

	X, Y    float64 // anchor position (box top-left when W/H are set)
	R       float64 // marker radius (hit testing)
	W, H    float64 // optional box extent for rectangular markers
	Outline Path    // marker outline, resolved from a symbol

	Text     string
	Align    Align
	Baseline Baseline
	FontSize float64 // 0 means the sink default

	style  PaintStyle
	data   any
	origin any
	parent *Group
}

// Parent returns the group the shape is attached to, or nil if detached.
func (s *Shape) Parent() *Group { return s.parent }

func (s *Shape) setParent(g *Group) { s.parent = g }

// Style returns the currently applied paint.
func (s *Shape) Style() PaintStyle { return s.style }

// SetStyle replaces the shape's paint attributes.
func (s *Shape) SetStyle(style PaintStyle) { s.style = style }

// Data returns the caller-attached data record.
func (s *Shape) Data() any { return s.data }

// SetData attaches an arbitrary data record to the shape.
func (s *Shape) SetData(v any) { s.data = v }

// Origin returns the caller-attached origin record.
func (s *Shape) Origin() any { return s.origin }

// SetOrigin attaches an arbitrary origin record to the shape.
func (s *Shape) SetOrigin(v any) { s.origin = v }

// textHitHalfWidth approximates glyph width for text hit testing.
// Good enough for pointer dispatch; sinks use real metrics.
const textHitHalfWidth = 3.5

func (s *Shape) contains(x, y float64) bool {
	switch s.Kind {
	case KindMarker:
		if s.W > 0 && s.H > 0 {
			return x >= s.X && x <= s.X+s.W && y >= s.Y && y <= s.Y+s.H
		}
		dx, dy := x-s.X, y-s.Y
		return dx*dx+dy*dy <= s.R*s.R
	case KindText:
		hw := textHitHalfWidth * float64(len([]rune(s.Text)))
		if hw == 0 {
			return false
		}
		top, bottom := s.Y, s.Y+10
		if s.Baseline == BaselineBottom {
			top, bottom = s.Y-10, s.Y
		}
		return x >= s.X-hw && x <= s.X+hw && y >= top && y <= bottom
	}
	return false
}
