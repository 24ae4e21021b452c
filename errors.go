package uikit

import "errors"

// Sentinel errors for the uikit package.
var (
	// ErrMeshNotReady is returned by DrawPass.Emit when the shared
	// unit-quad mesh has not resolved. The frame's emission is aborted
	// and retried next frame; no state is corrupted.
	ErrMeshNotReady = errors.New("uikit: unit quad mesh not resolved")

	// ErrNoBackend is returned when a renderer is constructed with no
	// render backend available.
	ErrNoBackend = errors.New("uikit: no render backend available")
)
