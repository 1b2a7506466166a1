// Package chart implements the host chart view that overlays attach to.
//
// # Overview
//
// A [View] owns a [scene.Canvas] split into three layers (background,
// plot, foreground), a data set of [Record] rows, and one geometry that
// maps rows to screen coordinates. Rendering recomputes the mapped data,
// notifies before-render subscribers, redraws the plot layer, and
// flushes the canvas.
//
// Overlays consume the view through a narrow surface: the foreground
// group, the first geometry's mapped data, the before-render
// subscription, the view-level click stream, and the canvas flush. See
// pkg/markerpoint for the primary consumer.
//
// # Mapped data
//
// Each rendered row yields a [MappedDatum] pairing the original record
// with resolved pixel coordinates. Range geometries produce an ordered
// pair per axis; consumers that need a single position take the first
// component.
package chart
