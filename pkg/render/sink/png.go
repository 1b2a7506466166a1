package sink

import (
	"bytes"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/plotmark/plotmark/pkg/scene"
)

// PNGOption configures PNG rasterization.
type PNGOption func(*pngEncoder)

type pngEncoder struct {
	background string
	scale      float64
}

// WithPNGBackground fills the image with the given color before any
// content is drawn. Defaults to white.
func WithPNGBackground(color string) PNGOption {
	return func(e *pngEncoder) { e.background = color }
}

// WithPNGScale sets the raster scale factor (default 1.0).
func WithPNGScale(s float64) PNGOption {
	return func(e *pngEncoder) { e.scale = s }
}

// PNG rasterizes the canvas scene graph to PNG bytes.
func PNG(c *scene.Canvas, opts ...PNGOption) ([]byte, error) {
	e := pngEncoder{background: "#FFFFFF", scale: 1.0}
	for _, opt := range opts {
		opt(&e)
	}

	w, h := c.Size()
	dc := gg.NewContext(int(w*e.scale), int(h*e.scale))
	dc.Scale(e.scale, e.scale)

	if r, g, b, a, ok := parseColor(e.background); ok {
		dc.SetRGBA(r, g, b, a)
		dc.Clear()
	}
	dc.SetFontFace(basicfont.Face7x13)

	e.drawGroup(dc, c.Root())

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *pngEncoder) drawGroup(dc *gg.Context, g *scene.Group) {
	for _, n := range g.Children() {
		switch child := n.(type) {
		case *scene.Group:
			e.drawGroup(dc, child)
		case *scene.Shape:
			e.drawShape(dc, child)
		}
	}
}

func (e *pngEncoder) drawShape(dc *gg.Context, s *scene.Shape) {
	switch s.Kind {
	case scene.KindMarker:
		tracePath(dc, s.Outline)
		st := s.Style()
		if r, g, b, a, ok := parseColor(st.Fill); ok {
			dc.SetRGBA(r, g, b, a)
			dc.FillPreserve()
		}
		if r, g, b, a, ok := parseColor(st.Stroke); ok && st.LineWidth > 0 {
			dc.SetRGBA(r, g, b, a)
			dc.SetLineWidth(st.LineWidth)
			dc.Stroke()
		}
		dc.ClearPath()
	case scene.KindText:
		r, g, b, a, ok := parseColor(s.Style().Fill)
		if !ok {
			r, g, b, a = 0, 0, 0, 1
		}
		dc.SetRGBA(r, g, b, a)
		ax := 0.0
		switch s.Align {
		case scene.AlignCenter:
			ax = 0.5
		case scene.AlignEnd:
			ax = 1.0
		}
		// ay=1 hangs the text below the anchor (top baseline), ay=0
		// sits it above (bottom baseline).
		ay := 1.0
		if s.Baseline == scene.BaselineBottom {
			ay = 0.0
		}
		dc.DrawStringAnchored(s.Text, s.X, s.Y, ax, ay)
	}
}

func tracePath(dc *gg.Context, p scene.Path) {
	for _, cmd := range p {
		switch cmd.Op {
		case scene.OpMoveTo:
			dc.MoveTo(cmd.X, cmd.Y)
		case scene.OpLineTo:
			dc.LineTo(cmd.X, cmd.Y)
		case scene.OpCubicTo:
			dc.CubicTo(cmd.X1, cmd.Y1, cmd.X2, cmd.Y2, cmd.X, cmd.Y)
		case scene.OpClose:
			dc.ClosePath()
		}
	}
}
