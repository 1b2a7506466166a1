package sink

import (
	"strings"
	"testing"

	"github.com/plotmark/plotmark/pkg/scene"
)

func testScene() *scene.Canvas {
	c := scene.New(200, 100)
	layer := c.Root().AddGroup("layer")

	dot := layer.AddShape(&scene.Shape{
		Name:    "point-0",
		Kind:    scene.KindMarker,
		X:       50, Y: 40, R: 3,
		Outline: scene.CirclePath(50, 40, 3),
	})
	dot.SetStyle(scene.PaintStyle{Stroke: "#FFF", Fill: "#FCC509", LineWidth: 1})

	label := layer.AddShape(&scene.Shape{
		Kind:     scene.KindText,
		X:        50, Y: 32,
		Text:     "Q1 <peak>",
		Align:    scene.AlignCenter,
		Baseline: scene.BaselineBottom,
	})
	label.SetStyle(scene.PaintStyle{Fill: "#333"})

	return c
}

func TestSVG_Document(t *testing.T) {
	out := string(SVG(testScene()))

	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200.0 100.0"`) {
		t.Errorf("svg header missing or malformed:\n%s", out)
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("svg document is not closed")
	}
	if !strings.Contains(out, `<g data-name="layer">`) {
		t.Error("group element missing its data-name")
	}
}

func TestSVG_MarkerElement(t *testing.T) {
	out := string(SVG(testScene()))

	if !strings.Contains(out, `id="point-0"`) {
		t.Error("marker path missing its id")
	}
	if !strings.Contains(out, `d="M 53.0 40.0 C`) {
		t.Errorf("marker path data missing or malformed:\n%s", out)
	}
	if !strings.Contains(out, `fill="#FCC509" stroke="#FFF" stroke-width="1.0"`) {
		t.Errorf("marker paint attributes missing:\n%s", out)
	}
}

func TestSVG_TextElement(t *testing.T) {
	out := string(SVG(testScene()))

	if !strings.Contains(out, `text-anchor="middle"`) {
		t.Error("text element not center-anchored")
	}
	if !strings.Contains(out, `dominant-baseline="auto"`) {
		t.Error("bottom-baseline text should map to dominant-baseline auto")
	}
	if !strings.Contains(out, `fill="#333"`) {
		t.Error("text fill missing")
	}
	if !strings.Contains(out, "Q1 &lt;peak&gt;") {
		t.Error("text content not XML-escaped")
	}
}

func TestSVG_Background(t *testing.T) {
	out := string(SVG(testScene(), WithBackground("#FFFFFF")))

	if !strings.Contains(out, `<rect width="200.0" height="100.0" fill="#FFFFFF"/>`) {
		t.Errorf("background rect missing:\n%s", out)
	}
}

func TestSVG_FontFamily(t *testing.T) {
	out := string(SVG(testScene(), WithFontFamily("monospace")))

	if !strings.Contains(out, `font-family="monospace"`) {
		t.Error("font family option not applied")
	}
}

func TestPaintAttrs_TransparentMapsToNone(t *testing.T) {
	got := paintAttrs(scene.PaintStyle{Stroke: scene.Transparent, Fill: scene.Transparent})
	if got != ` fill="none"` {
		t.Errorf("paintAttrs(transparent) = %q, want fill none with no stroke", got)
	}
}

func TestPathData(t *testing.T) {
	var p scene.Path
	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.Close()

	if got := pathData(p); got != "M 1.0 2.0 L 3.0 4.0 Z" {
		t.Errorf("pathData() = %q", got)
	}
}
