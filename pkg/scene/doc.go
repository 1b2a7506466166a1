// Package scene provides the retained scene graph that chart components
// draw into.
//
// # Overview
//
// A [Canvas] owns a tree of [Group] and [Shape] nodes. Groups are ordered
// containers used for layering and event delegation; shapes are the leaf
// drawables (marker glyphs and text). Nothing is rasterized implicitly:
// renderers traverse the tree when [Canvas.Draw] is called, and sinks
// (see pkg/render/sink) turn the tree into SVG or PNG bytes.
//
// # Styling
//
// Paint attributes are carried as a typed [PaintStyle] record (stroke,
// fill, line width) and applied with [Shape.SetStyle]. There is no
// string-keyed attribute bag; components that need to restyle a shape
// build a PaintStyle and set it wholesale.
//
// # Events
//
// Pointer events are delivered through [Canvas.Dispatch], which hit-tests
// the tree and bubbles the event from the target's owning group up to the
// root, then to canvas-level subscribers. Handlers registered on a group
// therefore see events for any descendant, which is how overlays delegate
// events to their tagged child groups.
package scene
