// Package asset provides handle-based stores for the resources the UI
// pipeline consumes: textures, meshes, and fonts.
//
// Stores follow a load/resolve split: loading registers data and returns an
// opaque handle immediately, while resolving is a non-blocking lookup that
// either yields the resource or reports it as not yet available. Handles may
// also be allocated before their data exists (see [Store.Allocate]), which is
// how "still loading" assets are represented without blocking the frame.
//
// All stores are safe for concurrent use.
package asset
