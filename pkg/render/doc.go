// Package render hosts the output encoders that turn a scene graph
// into file formats.
//
// The [sink] subpackage walks a [scene.Canvas] and emits:
//
//   - SVG: hand-written markup, one element per shape, groups carry
//     their delegation tags as data-name attributes
//   - PNG: rasterized via fogleman/gg with an optional scale factor
//
// Encoders are pure functions of the scene; they never mutate it and
// can run at any point between render passes.
//
//	data := sink.SVG(view.Canvas(), sink.WithBackground("#FFFFFF"))
//	img, err := sink.PNG(view.Canvas(), sink.WithPNGScale(2.0))
//
// [sink]: github.com/plotmark/plotmark/pkg/render/sink
// [scene.Canvas]: github.com/plotmark/plotmark/pkg/scene
package render
