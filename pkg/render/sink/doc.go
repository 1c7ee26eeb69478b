// Package sink provides output format renderers for life calendar layouts.
//
// # Overview
//
// A "sink" transforms a computed [layout.Layout] into a final output format.
// This package provides renderers for:
//
//   - PDF: Print-ready single page document (go-pdf/fpdf)
//   - SVG: Scalable vector graphics with per-week metadata attributes
//   - PNG: Raster image output (fogleman/gg)
//   - JSON: Layout data export for external tools
//
// Every sink draws a box the same way: the interior is filled with
// [layout.Config.FillColor] and the outline is stroked with the box's own
// color and line width. Boxes therefore paint over anything beneath them.
//
// # Usage
//
//	l, _ := layout.Build(birth, 100)
//	pdf, err := sink.RenderPDF(l, sink.WithPDFTitle("Ana"))
//	svg := sink.RenderSVG(l)
//	png, err := sink.RenderPNG(l, sink.WithScale(2))
//	js, err := sink.RenderJSON(l)
//
// # Adding New Formats
//
//  1. Create a renderer function: func RenderFoo(l layout.Layout, opts ...FooOption) ([]byte, error)
//  2. Define option types for configuration
//  3. Walk l.Rows and their Boxes; all geometry is precomputed
//  4. Register the format in pkg/pipeline/render.go
//
// [layout.Layout]: github.com/matzehuels/lifeweeks/pkg/layout.Layout
// [layout.Config.FillColor]: github.com/matzehuels/lifeweeks/pkg/layout.Config
package sink
