package chart

import (
	"errors"
	"fmt"

	"github.com/plotmark/plotmark/pkg/scene"
)

var (
	// ErrInvalidSize is returned by [NewView] when width or height is
	// not positive.
	ErrInvalidSize = errors.New("view size must be positive")

	// ErrMissingField is returned by [NewView] when the x or y field
	// name is empty.
	ErrMissingField = errors.New("x and y field names are required")
)

// Default view geometry constants.
const (
	defaultPadding = 20.0      // pixel inset around the plot area
	columnFill     = "#1890FF" // default column paint
	columnWidthPct = 0.5       // column width as a fraction of the band
)

// Config describes a chart view.
type Config struct {
	Width, Height float64
	Data          []Record
	XField        string // categorical field plotted on x
	YField        string // numeric (or numeric pair) field plotted on y
	Kind          GeomKind
	Padding       float64 // plot inset, defaults to 20
}

// View is the host chart: a layered canvas, a data set, and one
// geometry. It is single-threaded; all methods must be called from the
// embedder's event loop.
type View struct {
	cfg    Config
	canvas *scene.Canvas
	back   *scene.Group
	plot   *scene.Group
	fore   *scene.Group
	geom   *Geometry

	subs      []beforeRenderSub
	nextSubID int
}

type beforeRenderSub struct {
	id int
	fn func()
}

// NewView creates a view and renders it once.
func NewView(cfg Config) (*View, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, ErrInvalidSize
	}
	if cfg.XField == "" || cfg.YField == "" {
		return nil, ErrMissingField
	}
	if cfg.Padding == 0 {
		cfg.Padding = defaultPadding
	}

	canvas := scene.New(cfg.Width, cfg.Height)
	root := canvas.Root()
	v := &View{
		cfg:    cfg,
		canvas: canvas,
		back:   root.AddGroup("background"),
		plot:   root.AddGroup("plot"),
		fore:   root.AddGroup("foreground"),
		geom:   &Geometry{kind: cfg.Kind},
	}
	v.Render()
	return v, nil
}

// Canvas returns the scene canvas.
func (v *View) Canvas() *scene.Canvas { return v.canvas }

// ForegroundGroup returns the layer above all plotted content.
// Overlays parent their containers here.
func (v *View) ForegroundGroup() *scene.Group { return v.fore }

// Geometries returns the view's geometries. Only one geometry exists
// today but the slice keeps the consumer contract stable.
func (v *View) Geometries() []*Geometry { return []*Geometry{v.geom} }

// Data returns the current source rows.
func (v *View) Data() []Record { return v.cfg.Data }

// OnBeforeRender subscribes fn to run at the start of every render
// pass, after mapped data is recomputed and before the plot layer is
// redrawn. The returned function cancels the subscription.
func (v *View) OnBeforeRender(fn func()) (cancel func()) {
	v.nextSubID++
	id := v.nextSubID
	v.subs = append(v.subs, beforeRenderSub{id: id, fn: fn})
	return func() {
		for i, s := range v.subs {
			if s.id == id {
				v.subs = append(v.subs[:i], v.subs[i+1:]...)
				return
			}
		}
	}
}

// OnClick subscribes to the view-level click stream. Handlers fire for
// every click on the canvas, whether or not a shape was hit. The
// returned function cancels the subscription.
func (v *View) OnClick(h scene.Handler) (cancel func()) {
	return v.canvas.On(scene.Click, h)
}

// Render runs a full render pass: remap data, notify before-render
// subscribers, rebuild the plot layer, flush the canvas.
func (v *View) Render() {
	v.geom.data = v.mapData()

	for _, s := range append([]beforeRenderSub(nil), v.subs...) {
		s.fn()
	}

	v.plot.Clear()
	v.drawColumns()
	v.canvas.Draw()
}

// ChangeData swaps the data set and re-renders. Mapped geometry from
// the previous pass is discarded.
func (v *View) ChangeData(data []Record) {
	v.cfg.Data = data
	v.Render()
}

// mapData resolves each record to screen coordinates.
func (v *View) mapData() []MappedDatum {
	xs := newBandScale(len(v.cfg.Data), v.cfg.Padding, v.cfg.Width-v.cfg.Padding)
	ys := newLinearScale(0, v.yMax(), v.cfg.Height-v.cfg.Padding, v.cfg.Padding)

	mapped := make([]MappedDatum, 0, len(v.cfg.Data))
	for i, rec := range v.cfg.Data {
		vals := numbers(rec[v.cfg.YField])
		if len(vals) == 0 {
			continue
		}
		d := MappedDatum{
			X:      []float64{xs.Center(i)},
			Origin: rec,
		}
		switch v.cfg.Kind {
		case GeomRange:
			lo, hi := vals[0], vals[0]
			if len(vals) > 1 {
				hi = vals[1]
			}
			if lo > hi {
				lo, hi = hi, lo
			}
			// High end first so consumers anchoring to Y[0] sit on
			// top of the column.
			d.Y = []float64{ys.Map(hi), ys.Map(lo)}
		default:
			d.Y = []float64{ys.Map(vals[0])}
		}
		mapped = append(mapped, d)
	}
	return mapped
}

// yMax returns the largest y value across all records.
func (v *View) yMax() float64 {
	max := 0.0
	for _, rec := range v.cfg.Data {
		for _, n := range numbers(rec[v.cfg.YField]) {
			if n > max {
				max = n
			}
		}
	}
	return max
}

// drawColumns rebuilds the plot layer from the mapped data.
func (v *View) drawColumns() {
	xs := newBandScale(len(v.cfg.Data), v.cfg.Padding, v.cfg.Width-v.cfg.Padding)
	w := xs.Width() * columnWidthPct
	zero := v.cfg.Height - v.cfg.Padding

	for i, d := range v.geom.data {
		top := d.Y[0]
		bottom := zero
		if v.geom.kind == GeomRange && len(d.Y) > 1 {
			bottom = d.Y[1]
		}
		x := d.X[0] - w/2
		col := &scene.Shape{
			Name:    fmt.Sprintf("column-%d", i),
			Kind:    scene.KindMarker,
			X:       x,
			Y:       top,
			W:       w,
			H:       bottom - top,
			Outline: scene.RectPath(x, top, w, bottom-top),
		}
		col.SetStyle(scene.PaintStyle{Fill: columnFill})
		col.SetOrigin(d)
		v.plot.AddShape(col)
	}
}
