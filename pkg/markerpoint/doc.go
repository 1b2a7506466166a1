// Package markerpoint implements the marker-point overlay: an
// annotation layer that draws marker glyphs and optional labels on top
// of a host chart's plotted geometry and tracks per-marker interaction
// state.
//
// # Overview
//
// The overlay is constructed once against a live [chart.View] and a
// list of target records naming which data points to annotate. Targets
// are matched against the chart's mapped geometry by subset comparison
// of the original record fields; unmatched targets are silently
// skipped. Markers are rebuilt from scratch on every render pass — the
// overlay subscribes to the view's before-render event and clears
// itself before each host redraw, so stale markers are never visible
// alongside new ones.
//
// # Interaction
//
// Pointer events delegated from the overlay's container drive each
// marker among three paint states: normal, active (hovered), and
// selected. At most one marker is selected at a time; a selected marker
// keeps its paint through hover-outs until it is explicitly deselected
// by a second click or by a click outside any marker.
//
// # Usage
//
//	ov, err := markerpoint.New(markerpoint.Config{
//	    View: chart.View,
//	    Data: []chart.Record{{"type": "分类一"}},
//	    Field: "type",
//	    Label: &markerpoint.LabelConfig{Visible: true},
//	})
package markerpoint
