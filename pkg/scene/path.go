package scene

// Op identifies a path command. The values mirror SVG path letters so
// sinks can emit them directly.
type Op byte

const (
	// OpMoveTo starts a new subpath at (X, Y).
	OpMoveTo Op = 'M'
	// OpLineTo draws a straight segment to (X, Y).
	OpLineTo Op = 'L'
	// OpCubicTo draws a cubic Bézier through control points
	// (X1, Y1) and (X2, Y2) to (X, Y).
	OpCubicTo Op = 'C'
	// OpClose closes the current subpath.
	OpClose Op = 'Z'
)

// Cmd is a single path command. Control point fields are only
// meaningful for OpCubicTo.
type Cmd struct {
	Op             Op
	X1, Y1, X2, Y2 float64 // cubic control points
	X, Y           float64 // endpoint
}

// Path is an ordered list of path commands describing a marker outline.
type Path []Cmd

// MoveTo appends a move command.
func (p *Path) MoveTo(x, y float64) {
	*p = append(*p, Cmd{Op: OpMoveTo, X: x, Y: y})
}

// LineTo appends a line command.
func (p *Path) LineTo(x, y float64) {
	*p = append(*p, Cmd{Op: OpLineTo, X: x, Y: y})
}

// CubicTo appends a cubic Bézier command.
func (p *Path) CubicTo(x1, y1, x2, y2, x, y float64) {
	*p = append(*p, Cmd{Op: OpCubicTo, X1: x1, Y1: y1, X2: x2, Y2: y2, X: x, Y: y})
}

// Close appends a close command.
func (p *Path) Close() {
	*p = append(*p, Cmd{Op: OpClose})
}

// kappa is the standard cubic Bézier approximation constant for a
// quarter circle.
const kappa = 0.5522847498307936

// CirclePath returns a closed path approximating a circle of radius r
// centered at (x, y), built from four cubic Bézier quadrants.
func CirclePath(x, y, r float64) Path {
	k := kappa * r
	var p Path
	p.MoveTo(x+r, y)
	p.CubicTo(x+r, y+k, x+k, y+r, x, y+r)
	p.CubicTo(x-k, y+r, x-r, y+k, x-r, y)
	p.CubicTo(x-r, y-k, x-k, y-r, x, y-r)
	p.CubicTo(x+k, y-r, x+r, y-k, x+r, y)
	p.Close()
	return p
}

// RectPath returns a closed path for the axis-aligned rectangle with
// top-left corner (x, y).
func RectPath(x, y, w, h float64) Path {
	var p Path
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
	return p
}
