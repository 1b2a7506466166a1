// Package rangecolumn provides the range-column chart type: floating
// columns spanning a [low, high] value pair per category.
//
// The package is a thin wrapper that configures a [chart.View] with a
// range geometry; it adds no rendering machinery of its own.
package rangecolumn

import "github.com/plotmark/plotmark/pkg/chart"

// Config describes a range-column chart. YField must name a field
// holding an ordered numeric pair per record.
type Config struct {
	Width, Height float64
	Data          []chart.Record
	XField        string
	YField        string
	Padding       float64
}

// Chart is a range-column plot over a host chart view.
type Chart struct {
	*chart.View
}

// New builds and renders a range-column chart.
func New(cfg Config) (*Chart, error) {
	v, err := chart.NewView(chart.Config{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Data:    cfg.Data,
		XField:  cfg.XField,
		YField:  cfg.YField,
		Kind:    chart.GeomRange,
		Padding: cfg.Padding,
	})
	if err != nil {
		return nil, err
	}
	return &Chart{View: v}, nil
}
