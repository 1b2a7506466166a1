// Package sink converts a scene graph into output bytes.
//
// # Formats
//
//   - [SVG] writes the tree as an SVG document. Groups become <g>
//     elements, marker shapes become <path> elements, and text shapes
//     become <text> elements.
//   - [PNG] rasterizes the tree with github.com/fogleman/gg. Label text
//     uses a fixed bitmap face, so PNG output is meant for previews and
//     tests rather than publication-quality typography.
//
// Sinks are pure functions over the tree: they never mutate the scene
// and may be called at any time, typically from a [scene.Canvas] flush
// hook or after an explicit Draw.
package sink
