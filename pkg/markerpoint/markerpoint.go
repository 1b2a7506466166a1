package markerpoint

import (
	"errors"

	"github.com/google/uuid"

	"github.com/plotmark/plotmark/pkg/chart"
	"github.com/plotmark/plotmark/pkg/observability"
	"github.com/plotmark/plotmark/pkg/scene"
	"github.com/plotmark/plotmark/pkg/symbol"
)

// ErrNilView is returned by [New] when no host view is supplied.
var ErrNilView = errors.New("marker overlay requires a host view")

// DefaultSize is the marker diameter in pixels when none is configured.
const DefaultSize = 6.0

// Default paint tables for the three visual states.
var (
	defaultNormal   = scene.PaintStyle{Stroke: scene.Transparent, Fill: "#FCC509", LineWidth: 0}
	defaultActive   = scene.PaintStyle{Stroke: "#FFF", Fill: "#FCC509", LineWidth: 1}
	defaultSelected = scene.PaintStyle{Stroke: "rgba(0,0,0,0.85)", Fill: "#FCC509", LineWidth: 1}
)

// Label defaults.
const (
	defaultLabelOffsetY = -8.0
	defaultLabelFill    = "#333"
)

// LabelPosition places a marker's label above or below the glyph.
type LabelPosition int

const (
	PositionTop LabelPosition = iota
	PositionBottom
)

// Formatter transforms a label's raw field text. It receives the text
// read from the matched origin record, the origin record itself, and
// the target's index in the configured data list.
type Formatter func(text string, origin chart.Record, index int) string

// LabelConfig controls the optional text label next to each marker.
// Offset pointers distinguish "unset" from an explicit zero; unset
// offsets default to (0, -8).
type LabelConfig struct {
	Visible   bool
	Formatter Formatter
	Position  LabelPosition
	OffsetX   *float64
	OffsetY   *float64
	Style     *scene.PaintStyle // nil applies the default dark text fill
}

// StateStyles overrides the per-state paint tables. A nil entry keeps
// the default for that state.
type StateStyles struct {
	Normal   *scene.PaintStyle
	Active   *scene.PaintStyle
	Selected *scene.PaintStyle
}

// Callbacks are caller hooks run at the start of each interaction
// transition. Nil callbacks are no-ops. Callbacks are invoked without a
// protective boundary: a panicking callback aborts the transition.
type Callbacks struct {
	MouseEnter scene.Handler
	MouseLeave scene.Handler
	Click      scene.Handler
}

// Config describes a marker-point overlay.
type Config struct {
	View   *chart.View
	Data   []chart.Record // target records, in marker order
	Field  string         // origin field rendered as the label text
	Symbol symbol.Symbol
	Size   float64
	Label  *LabelConfig
	Style  StateStyles
	Events Callbacks
}

// Overlay is a live marker-point annotation layer. All methods must be
// called from the embedder's event loop; the overlay owns its container
// group exclusively.
type Overlay struct {
	view   *chart.View
	data   []chart.Record
	field  string
	glyph  symbol.Func
	size   float64
	events Callbacks

	labelVisible bool
	labelFmt     Formatter
	labelPos     LabelPosition
	labelOffsetX float64
	labelOffsetY float64
	labelStyle   scene.PaintStyle

	normal   scene.PaintStyle
	active   scene.PaintStyle
	selected scene.PaintStyle

	tag       string
	container *scene.Group
	selection *scene.Shape

	cancelRender func()
	cancelClick  func()
	wired        bool
	destroyed    bool
}

// New constructs the overlay against a live view, renders it once, and
// subscribes to the view's before-render event so markers are rebuilt
// on every host redraw. Destroy releases the subscription.
func New(cfg Config) (*Overlay, error) {
	if cfg.View == nil {
		return nil, ErrNilView
	}

	o := &Overlay{
		view:   cfg.View,
		data:   cfg.Data,
		field:  cfg.Field,
		glyph:  cfg.Symbol.Resolve(),
		size:   cfg.Size,
		events: cfg.Events,

		normal:   styleOr(cfg.Style.Normal, defaultNormal),
		active:   styleOr(cfg.Style.Active, defaultActive),
		selected: styleOr(cfg.Style.Selected, defaultSelected),

		labelOffsetY: defaultLabelOffsetY,
		labelStyle:   scene.PaintStyle{Fill: defaultLabelFill},
	}
	if o.size <= 0 {
		o.size = DefaultSize
	}
	if l := cfg.Label; l != nil {
		o.labelVisible = l.Visible
		o.labelFmt = l.Formatter
		o.labelPos = l.Position
		if l.OffsetX != nil {
			o.labelOffsetX = *l.OffsetX
		}
		if l.OffsetY != nil {
			o.labelOffsetY = *l.OffsetY
		}
		if l.Style != nil {
			o.labelStyle = *l.Style
		}
	}

	// A unique tag keeps event delegation isolated when several
	// overlays share one view.
	o.tag = "marker-point-" + uuid.NewString()[:8]
	o.container = cfg.View.ForegroundGroup().AddGroup(o.tag)

	o.cancelRender = cfg.View.OnBeforeRender(func() {
		o.Clear()
		o.Render()
	})

	o.Render()
	return o, nil
}

// Tag returns the overlay's unique delegation tag.
func (o *Overlay) Tag() string { return o.tag }

// Markers returns the currently rendered marker shapes in creation
// order. The slice is rebuilt on every call.
func (o *Overlay) Markers() []*scene.Shape {
	var out []*scene.Shape
	o.eachMarker(func(s *scene.Shape) { out = append(out, s) })
	return out
}

// Selection returns the currently selected marker, or nil.
func (o *Overlay) Selection() *scene.Shape { return o.selection }

// Render rebuilds all markers and labels from the host's current
// mapped geometry, wires interaction handlers (once), and flushes the
// canvas. It is a full idempotent rebuild: existing children are
// cleared first, matching is re-run against fresh geometry, and
// unmatched targets are skipped without error.
func (o *Overlay) Render() {
	if o.destroyed {
		return
	}
	o.Clear()

	mapped := o.firstSeries()
	matchedCount := 0
	for i, target := range o.data {
		datum, ok := matchDatum(mapped, target)
		if !ok {
			continue
		}
		o.drawMarker(i, target, datum)
		matchedCount++
	}
	observability.Overlay().OnRender(o.tag, matchedCount, len(o.data))

	o.wire()
	o.view.Canvas().Draw()
}

// Clear removes every marker and label and invalidates the selection
// reference. The container group itself stays attached.
func (o *Overlay) Clear() {
	o.container.Clear()
	o.selection = nil
}

// Destroy cancels the before-render and view-click subscriptions,
// detaches the container from the view, and drops all marker
// references. The overlay must not be used afterwards.
func (o *Overlay) Destroy() {
	if o.destroyed {
		return
	}
	o.destroyed = true
	o.cancelRender()
	if o.cancelClick != nil {
		o.cancelClick()
	}
	o.container.Clear()
	o.container.Remove()
	o.selection = nil
}

// firstSeries returns the mapped data of the host's first geometry.
// Only the first series is consulted for matching.
func (o *Overlay) firstSeries() []chart.MappedDatum {
	geoms := o.view.Geometries()
	if len(geoms) == 0 {
		return nil
	}
	return geoms[0].Data()
}

// eachMarker visits every rendered marker shape in creation order.
func (o *Overlay) eachMarker(fn func(*scene.Shape)) {
	for _, n := range o.container.Children() {
		g, ok := n.(*scene.Group)
		if !ok || g.Name() != o.tag {
			continue
		}
		if s := g.First(); s != nil {
			fn(s)
		}
	}
}

func styleOr(s *scene.PaintStyle, fallback scene.PaintStyle) scene.PaintStyle {
	if s != nil {
		return *s
	}
	return fallback
}
