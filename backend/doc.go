// Package backend abstracts the render backend the UI draw pass submits to.
//
// The draw pass speaks to a compiled [Effect]: it updates the per-draw
// constant buffer, binds the shared quad vertex buffer and a texture, and
// issues one draw per visible layer. Backends implement [RenderBackend] and
// are registered by name via [Register]; [Default] selects the best
// available one.
//
// The software backend in this package composites draws into an in-memory
// float framebuffer and is always available. The native subpackage provides
// GPU glue via gogpu/wgpu.
package backend
