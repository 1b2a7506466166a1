// Package config loads chart specifications from TOML files.
//
// A spec file describes one chart (type, size, data rows) and an
// optional marker overlay (targets, symbol, label, per-state styles).
// [Load] decodes and validates a file; [Spec.Build] constructs the
// live chart view and overlay from it.
//
// # Example
//
//	type = "rangecolumn"
//	x = "type"
//	y = "values"
//
//	[[rows]]
//	type = "分类一"
//	values = [76, 100]
//
//	[marker]
//	field = "type"
//	symbol = "circle"
//
//	[[marker.targets]]
//	type = "分类一"
//
//	[marker.label]
//	visible = true
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/plotmark/plotmark/pkg/chart"
	"github.com/plotmark/plotmark/pkg/chart/rangecolumn"
	"github.com/plotmark/plotmark/pkg/errors"
	"github.com/plotmark/plotmark/pkg/markerpoint"
	"github.com/plotmark/plotmark/pkg/scene"
	"github.com/plotmark/plotmark/pkg/symbol"
)

// Default viewport size for specs that omit dimensions.
const (
	defaultWidth  = 640.0
	defaultHeight = 480.0
)

// Spec is a decoded chart specification.
type Spec struct {
	Title  string           `toml:"title"`
	Type   string           `toml:"type"` // "rangecolumn" (default) or "column"
	Width  float64          `toml:"width"`
	Height float64          `toml:"height"`
	X      string           `toml:"x"`
	Y      string           `toml:"y"`
	Rows   []map[string]any `toml:"rows"`
	Marker *MarkerSpec      `toml:"marker"`
}

// MarkerSpec configures the marker-point overlay.
type MarkerSpec struct {
	Field   string           `toml:"field"`
	Symbol  string           `toml:"symbol"`
	Size    float64          `toml:"size"`
	Targets []map[string]any `toml:"targets"`
	Label   *LabelSpec       `toml:"label"`
	Style   *StyleSpec       `toml:"style"`
}

// LabelSpec configures marker labels. Offset pointers distinguish an
// explicit zero from an omitted key.
type LabelSpec struct {
	Visible  bool       `toml:"visible"`
	Position string     `toml:"position"` // "top" (default) or "bottom"
	OffsetX  *float64   `toml:"offset_x"`
	OffsetY  *float64   `toml:"offset_y"`
	Style    *PaintSpec `toml:"style"`
}

// StyleSpec overrides the per-state marker paint tables.
type StyleSpec struct {
	Normal   *PaintSpec `toml:"normal"`
	Active   *PaintSpec `toml:"active"`
	Selected *PaintSpec `toml:"selected"`
}

// PaintSpec is the TOML form of a scene.PaintStyle.
type PaintSpec struct {
	Stroke    string  `toml:"stroke"`
	Fill      string  `toml:"fill"`
	LineWidth float64 `toml:"line_width"`
}

// Load reads and validates a spec file.
func Load(path string) (*Spec, error) {
	var spec Spec
	if _, err := toml.DecodeFile(path, &spec); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "spec file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode %s", path)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the spec against the supported chart types, symbol
// registry, label positions, and color syntax.
func (s *Spec) Validate() error {
	switch s.Type {
	case "", "rangecolumn", "column":
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown chart type: %q", s.Type)
	}
	if s.X == "" || s.Y == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "x and y field names are required")
	}

	m := s.Marker
	if m == nil {
		return nil
	}
	if m.Symbol != "" && !symbol.Known(m.Symbol) {
		return errors.New(errors.ErrCodeInvalidSymbol, "unknown symbol: %q", m.Symbol)
	}
	if l := m.Label; l != nil {
		switch l.Position {
		case "", "top", "bottom":
		default:
			return errors.New(errors.ErrCodeInvalidPosition, "label position must be top or bottom, got %q", l.Position)
		}
		if err := validatePaint(l.Style); err != nil {
			return err
		}
	}
	if st := m.Style; st != nil {
		for _, p := range []*PaintSpec{st.Normal, st.Active, st.Selected} {
			if err := validatePaint(p); err != nil {
				return err
			}
		}
	}
	return nil
}

func validatePaint(p *PaintSpec) error {
	if p == nil {
		return nil
	}
	for _, c := range []string{p.Stroke, p.Fill} {
		if c == "" {
			continue
		}
		if err := errors.ValidateColor(c); err != nil {
			return err
		}
	}
	return nil
}

// Build constructs the chart view and, when a marker section is
// present, the marker-point overlay.
func (s *Spec) Build() (*chart.View, *markerpoint.Overlay, error) {
	width, height := s.Width, s.Height
	if width == 0 {
		width = defaultWidth
	}
	if height == 0 {
		height = defaultHeight
	}

	var view *chart.View
	switch s.Type {
	case "column":
		v, err := chart.NewView(chart.Config{
			Width: width, Height: height,
			Data:   records(s.Rows),
			XField: s.X, YField: s.Y,
			Kind: chart.GeomColumn,
		})
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "build column chart")
		}
		view = v
	default: // rangecolumn
		c, err := rangecolumn.New(rangecolumn.Config{
			Width: width, Height: height,
			Data:   records(s.Rows),
			XField: s.X, YField: s.Y,
		})
		if err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "build range-column chart")
		}
		view = c.View
	}

	if s.Marker == nil {
		return view, nil, nil
	}

	ov, err := markerpoint.New(s.markerConfig(view))
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "build marker overlay")
	}
	return view, ov, nil
}

// markerConfig translates the marker section into overlay config.
func (s *Spec) markerConfig(view *chart.View) markerpoint.Config {
	m := s.Marker
	cfg := markerpoint.Config{
		View:  view,
		Data:  records(m.Targets),
		Field: m.Field,
		Size:  m.Size,
	}
	if m.Symbol != "" {
		cfg.Symbol = symbol.Named(m.Symbol)
	}
	if l := m.Label; l != nil {
		lc := &markerpoint.LabelConfig{
			Visible: l.Visible,
			OffsetX: l.OffsetX,
			OffsetY: l.OffsetY,
		}
		if l.Position == "bottom" {
			lc.Position = markerpoint.PositionBottom
		}
		if l.Style != nil {
			lc.Style = paintStyle(l.Style)
		}
		cfg.Label = lc
	}
	if st := m.Style; st != nil {
		cfg.Style = markerpoint.StateStyles{
			Normal:   paintStyle(st.Normal),
			Active:   paintStyle(st.Active),
			Selected: paintStyle(st.Selected),
		}
	}
	return cfg
}

func paintStyle(p *PaintSpec) *scene.PaintStyle {
	if p == nil {
		return nil
	}
	return &scene.PaintStyle{Stroke: p.Stroke, Fill: p.Fill, LineWidth: p.LineWidth}
}

func records(rows []map[string]any) []chart.Record {
	out := make([]chart.Record, len(rows))
	for i, r := range rows {
		out[i] = chart.Record(r)
	}
	return out
}
