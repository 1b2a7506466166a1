// Package pkg provides the core libraries for plotmark chart rendering.
//
// # Overview
//
// Plotmark renders column and range-column charts with interactive
// marker-point annotation overlays. The pkg directory is organized into
// five main areas:
//
//  1. [scene] - Retained scene graph (groups, shapes, hit testing, events)
//  2. [chart] - The host chart view (scales, geometry mapping, render loop)
//  3. [markerpoint] - The marker overlay (matching, glyphs, interaction states)
//  4. [render] - Output encoders (SVG, PNG)
//  5. [config] - TOML chart specifications
//
// # Architecture
//
// The typical data flow through plotmark:
//
//	TOML spec / Go config
//	         ↓
//	    [chart] package (map records to screen coordinates)
//	         ↓
//	    [markerpoint] package (match targets, draw markers, drive states)
//	         ↓
//	    [scene] package (retained tree + event dispatch)
//	         ↓
//	    [render/sink] package (SVG / PNG output)
//
// Supporting packages: [symbol] for marker glyph outlines, [cache] for
// rendered-artifact caching, [errors] for coded errors, [observability]
// for render and overlay hooks, [buildinfo] for version stamping.
//
// # Quick Start
//
//	view, _ := chart.NewView(chart.Config{
//	    Width: 640, Height: 480,
//	    Data:   rows,
//	    XField: "name", YField: "value",
//	    Kind:   chart.GeomRange,
//	})
//	overlay, _ := markerpoint.New(markerpoint.Config{
//	    View: view,
//	    Data: []chart.Record{{"name": "Q2"}},
//	})
//	svg := sink.SVG(view.Canvas())
//
// [scene]: github.com/plotmark/plotmark/pkg/scene
// [chart]: github.com/plotmark/plotmark/pkg/chart
// [markerpoint]: github.com/plotmark/plotmark/pkg/markerpoint
// [render]: github.com/plotmark/plotmark/pkg/render
// [render/sink]: github.com/plotmark/plotmark/pkg/render/sink
// [config]: github.com/plotmark/plotmark/pkg/config
// [symbol]: github.com/plotmark/plotmark/pkg/symbol
// [cache]: github.com/plotmark/plotmark/pkg/cache
// [errors]: github.com/plotmark/plotmark/pkg/errors
// [observability]: github.com/plotmark/plotmark/pkg/observability
// [buildinfo]: github.com/plotmark/plotmark/pkg/buildinfo
package pkg
