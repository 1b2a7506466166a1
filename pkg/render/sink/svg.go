package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/plotmark/plotmark/pkg/scene"
)

// defaultFontSize is used for text shapes that do not set their own.
const defaultFontSize = 12.0

// SVGOption configures SVG encoding.
type SVGOption func(*svgEncoder)

type svgEncoder struct {
	background string
	fontFamily string
}

// WithBackground fills the viewport with the given color before any
// content is drawn.
func WithBackground(color string) SVGOption {
	return func(e *svgEncoder) { e.background = color }
}

// WithFontFamily sets the font-family attribute on text elements.
func WithFontFamily(family string) SVGOption {
	return func(e *svgEncoder) { e.fontFamily = family }
}

// SVG encodes the canvas scene graph as an SVG document.
func SVG(c *scene.Canvas, opts ...SVGOption) []byte {
	e := svgEncoder{fontFamily: "sans-serif"}
	for _, opt := range opts {
		opt(&e)
	}

	w, h := c.Size()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		w, h, w, h)

	if e.background != "" {
		fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", w, h, e.background)
	}

	e.writeGroup(&buf, c.Root(), 1)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (e *svgEncoder) writeGroup(buf *bytes.Buffer, g *scene.Group, depth int) {
	pad := strings.Repeat("  ", depth)
	fmt.Fprintf(buf, `%s<g data-name="%s">`+"\n", pad, escape(g.Name()))
	for _, n := range g.Children() {
		switch child := n.(type) {
		case *scene.Group:
			e.writeGroup(buf, child, depth+1)
		case *scene.Shape:
			e.writeShape(buf, child, depth+1)
		}
	}
	fmt.Fprintf(buf, "%s</g>\n", pad)
}

func (e *svgEncoder) writeShape(buf *bytes.Buffer, s *scene.Shape, depth int) {
	pad := strings.Repeat("  ", depth)
	switch s.Kind {
	case scene.KindMarker:
		fmt.Fprintf(buf, `%s<path`, pad)
		if s.Name != "" {
			fmt.Fprintf(buf, ` id="%s"`, escape(s.Name))
		}
		fmt.Fprintf(buf, ` d="%s"%s/>`+"\n", pathData(s.Outline), paintAttrs(s.Style()))
	case scene.KindText:
		size := s.FontSize
		if size == 0 {
			size = defaultFontSize
		}
		fill := s.Style().Fill
		if fill == "" {
			fill = "#000"
		}
		fmt.Fprintf(buf, `%s<text x="%.1f" y="%.1f" text-anchor="%s" dominant-baseline="%s" font-family="%s" font-size="%.0f" fill="%s">%s</text>`+"\n",
			pad, s.X, s.Y, anchor(s.Align), baseline(s.Baseline), e.fontFamily, size, fill, escape(s.Text))
	}
}

// pathData renders a path as an SVG "d" attribute.
func pathData(p scene.Path) string {
	var b strings.Builder
	for i, cmd := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch cmd.Op {
		case scene.OpMoveTo:
			fmt.Fprintf(&b, "M %.1f %.1f", cmd.X, cmd.Y)
		case scene.OpLineTo:
			fmt.Fprintf(&b, "L %.1f %.1f", cmd.X, cmd.Y)
		case scene.OpCubicTo:
			fmt.Fprintf(&b, "C %.1f %.1f %.1f %.1f %.1f %.1f",
				cmd.X1, cmd.Y1, cmd.X2, cmd.Y2, cmd.X, cmd.Y)
		case scene.OpClose:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// paintAttrs renders a PaintStyle as SVG presentation attributes.
func paintAttrs(st scene.PaintStyle) string {
	var b strings.Builder
	fill := st.Fill
	if fill == "" || fill == scene.Transparent {
		fill = "none"
	}
	fmt.Fprintf(&b, ` fill="%s"`, fill)
	if st.Stroke != "" && st.Stroke != scene.Transparent {
		fmt.Fprintf(&b, ` stroke="%s"`, st.Stroke)
	}
	if st.LineWidth > 0 {
		fmt.Fprintf(&b, ` stroke-width="%.1f"`, st.LineWidth)
	}
	return b.String()
}

func anchor(a scene.Align) string {
	switch a {
	case scene.AlignCenter:
		return "middle"
	case scene.AlignEnd:
		return "end"
	}
	return "start"
}

func baseline(b scene.Baseline) string {
	if b == scene.BaselineTop {
		return "hanging"
	}
	return "auto"
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
