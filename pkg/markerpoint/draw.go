package markerpoint

import (
	"fmt"

	"github.com/plotmark/plotmark/pkg/chart"
	"github.com/plotmark/plotmark/pkg/scene"
)

// drawMarker renders one matched target: a tagged child group holding
// the marker glyph at the datum's resolved position, the optional label
// as a sibling shape, and the target/datum attached to the group for
// interaction lookup. Index i is the target's position in the
// configured data list, so marker names stay stable even when earlier
// targets failed to match.
func (o *Overlay) drawMarker(i int, target chart.Record, d chart.MappedDatum) {
	x, y := first(d.X), first(d.Y)
	r := o.size / 2

	g := o.container.AddGroup(o.tag)

	m := g.AddShape(&scene.Shape{
		Name:    fmt.Sprintf("point-%d", i),
		Kind:    scene.KindMarker,
		X:       x,
		Y:       y,
		R:       r,
		Outline: o.glyph(x, y, r),
	})
	m.SetStyle(o.normal)

	if o.labelVisible {
		o.drawLabel(g, i, d, x, y)
	}

	g.SetData(target)
	g.SetOrigin(d)
}

// drawLabel adds the text label immediately after its marker within
// the same sub-group.
func (o *Overlay) drawLabel(g *scene.Group, i int, d chart.MappedDatum, x, y float64) {
	text := fieldText(d.Origin, o.field)
	if o.labelFmt != nil {
		text = o.labelFmt(text, d.Origin, i)
	}

	baseline := scene.BaselineTop
	if o.labelPos == PositionTop {
		baseline = scene.BaselineBottom
	}

	label := g.AddShape(&scene.Shape{
		Kind:     scene.KindText,
		X:        x + o.labelOffsetX,
		Y:        y + o.labelOffsetY,
		Text:     text,
		Align:    scene.AlignCenter,
		Baseline: baseline,
	})
	label.SetStyle(o.labelStyle)
}

// fieldText stringifies the configured field of an origin record.
// Absent fields yield the empty string.
func fieldText(origin chart.Record, field string) string {
	v, ok := origin[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// first reduces a scalar-or-pair coordinate to its first component.
func first(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	return vals[0]
}
