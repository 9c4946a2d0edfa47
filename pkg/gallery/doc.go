// Package gallery is the presentation layer around the tiling enumerator.
//
// A [Gallery] owns everything a front end needs besides drawing pixels:
//
//   - Parsing and validating the requested width against the configured
//     bounds (1..10 by default), with a message suitable for display
//   - Refusing a new interactive run while one is in progress
//   - An optional cosmetic delay before computing, so a loading state can
//     paint; it honours context cancellation and never reaches the core
//   - Turning the enumeration into labelled [render.Card]s
//   - Rendering artifacts through an in-process cache, coalescing
//     concurrent requests for the same artifact
//   - Resetting to the default width without touching the enumerator memo
//
// The CLI, the terminal browser and the HTTP server all drive the same
// Gallery type:
//
//	g, err := gallery.New(gallery.DefaultOptions(), gallery.WithLogger(logger))
//	res, err := g.Generate(ctx, "4")
//	art, err := g.Render(ctx, res.Width, gallery.RenderOptions{Format: render.FormatSVG})
package gallery
