// Package service defines the interfaces for external collaborators the
// use cases depend on.
package service

import "context"

// CaptureStream is a live camera stream handle. Close releases the device;
// closing twice is safe.
type CaptureStream interface {
	// ID identifies the stream instance. Re-entering the scanner must yield
	// a fresh id, never a reused handle.
	ID() string

	// Active reports whether the stream is still open.
	Active() bool

	Close() error
}

// CameraService acquires the device camera for the scanner view. Acquisition
// and release are strictly paired with entering and leaving the view.
type CameraService interface {
	Acquire(ctx context.Context) (CaptureStream, error)
}
