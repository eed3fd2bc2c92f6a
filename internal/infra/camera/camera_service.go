// Package camera provides the capture-stream implementation backing the
// scanner view. There is no real device in scope; the stream is a handle
// whose acquire/release pairing mirrors hardware semantics.
package camera

import (
	"context"
	"sync"
	"sync/atomic"

	"feria/internal/domain/service"

	"github.com/google/uuid"
)

type cameraService struct {
	mu   sync.Mutex
	open map[string]*captureStream
}

// NewCameraService creates the simulated camera device.
func NewCameraService() service.CameraService {
	return &cameraService{
		open: make(map[string]*captureStream),
	}
}

// Acquire opens a fresh capture stream. Each call yields a new handle; stale
// handles from a previous scanner mount are never reused.
func (s *cameraService) Acquire(ctx context.Context) (service.CaptureStream, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stream := &captureStream{
		id:      uuid.NewString(),
		service: s,
	}
	stream.active.Store(true)

	s.mu.Lock()
	s.open[stream.id] = stream
	s.mu.Unlock()

	return stream, nil
}

// OpenStreams reports how many acquired streams have not been closed yet.
// The scanner lifecycle keeps this at most 1.
func (s *cameraService) OpenStreams() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.open)
}

type captureStream struct {
	id      string
	active  atomic.Bool
	service *cameraService
}

func (c *captureStream) ID() string {
	return c.id
}

func (c *captureStream) Active() bool {
	return c.active.Load()
}

// Close releases the stream. Closing twice is safe.
func (c *captureStream) Close() error {
	if !c.active.CompareAndSwap(true, false) {
		return nil
	}

	c.service.mu.Lock()
	delete(c.service.open, c.id)
	c.service.mu.Unlock()

	return nil
}
