// Package uikit maintains the draw order of 2D UI elements and converts
// their text to textures as it changes.
//
// # Overview
//
// A [World] holds the per-element components: [Transform] (position, size,
// and depth key), [Image] (a reference to an external texture), and [Text]
// (a string with color and size, rendered to a cached texture on demand).
// Three passes run per frame, strictly in order:
//
//  1. [DrawOrderCache.Maintain] incrementally keeps a depth-sorted list of
//     visible elements, recomputing only what changed.
//  2. [TextRenderer.Process] rasterizes dirty text elements into float
//     RGBA textures through the font service.
//  3. [DrawPass.Emit] walks the ordered list and issues up to two draws
//     per element (image layer, then text layer) against the render
//     backend.
//
// [Renderer] ties the three passes and their stores together:
//
//	r, err := uikit.NewRenderer()
//	if err != nil { ... }
//	w := r.World()
//
//	label := w.NewElement()
//	w.SetTransform(label, uikit.Transform{X: 8, Y: 8, Width: 120, Height: 24, LocalZ: 1})
//	w.SetText(label, uikit.NewText("hello", fontHandle, 16, [4]float32{1, 1, 1, 1}))
//
//	r.Frame()
//
// # Failure model
//
// Nothing in the frame passes panics or blocks. A font or texture that has
// not finished loading is "not ready yet": the text stays dirty and is
// retried next frame, or the draw layer is silently omitted. The only
// fatal-for-the-frame condition is the shared unit-quad mesh failing to
// resolve, which aborts that frame's emission and retries on the next.
package uikit
