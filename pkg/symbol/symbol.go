// Package symbol provides marker glyph outlines for chart annotations.
//
// A [Symbol] is either a name resolved against the built-in registry
// (circle, square, diamond, triangle, cross) or a caller-supplied
// drawing function. Resolution happens once per render pass; unknown
// names fall back to the circle glyph rather than failing.
package symbol

import "github.com/plotmark/plotmark/pkg/scene"

// Func builds a marker outline of radius r centered at (x, y).
type Func func(x, y, r float64) scene.Path

// Symbol is a tagged variant: a registry name or a custom drawing
// function. The zero value resolves to the default circle.
type Symbol struct {
	name string
	fn   Func
}

// Named returns a symbol resolved by registry name at render time.
func Named(name string) Symbol { return Symbol{name: name} }

// Custom returns a symbol drawn by fn.
func Custom(fn Func) Symbol { return Symbol{fn: fn} }

// Name returns the registry name, or "" for custom symbols.
func (s Symbol) Name() string { return s.name }

// Resolve returns the drawing function for the symbol. Named symbols
// not present in the registry and the zero Symbol resolve to Circle.
func (s Symbol) Resolve() Func {
	if s.fn != nil {
		return s.fn
	}
	if fn, ok := registry[s.name]; ok {
		return fn
	}
	return Circle
}

// Known reports whether name is a registered symbol name.
func Known(name string) bool {
	_, ok := registry[name]
	return ok
}

// registry maps symbol names to their drawing functions.
var registry = map[string]Func{
	"circle":   Circle,
	"square":   Square,
	"diamond":  Diamond,
	"triangle": Triangle,
	"cross":    Cross,
}

// Circle draws the default round marker.
func Circle(x, y, r float64) scene.Path {
	return scene.CirclePath(x, y, r)
}

// Square draws an axis-aligned square inscribed in radius r.
func Square(x, y, r float64) scene.Path {
	return scene.RectPath(x-r, y-r, 2*r, 2*r)
}

// Diamond draws a square rotated 45 degrees.
func Diamond(x, y, r float64) scene.Path {
	var p scene.Path
	p.MoveTo(x, y-r)
	p.LineTo(x+r, y)
	p.LineTo(x, y+r)
	p.LineTo(x-r, y)
	p.Close()
	return p
}

// Triangle draws an upward-pointing triangle.
func Triangle(x, y, r float64) scene.Path {
	var p scene.Path
	p.MoveTo(x, y-r)
	p.LineTo(x+r, y+r)
	p.LineTo(x-r, y+r)
	p.Close()
	return p
}

// Cross draws a diagonal cross of arm length r.
func Cross(x, y, r float64) scene.Path {
	var p scene.Path
	p.MoveTo(x-r, y-r)
	p.LineTo(x+r, y+r)
	p.MoveTo(x+r, y-r)
	p.LineTo(x-r, y+r)
	return p
}
