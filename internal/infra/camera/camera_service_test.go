package camera

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraService_AcquireYieldsFreshStreams(t *testing.T) {
	svc := NewCameraService().(*cameraService)
	ctx := context.Background()

	first, err := svc.Acquire(ctx)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := svc.Acquire(ctx)
	require.NoError(t, err)
	defer second.Close()

	assert.NotEqual(t, first.ID(), second.ID())
	assert.False(t, first.Active())
	assert.True(t, second.Active())
}

func TestCameraService_CloseIsIdempotent(t *testing.T) {
	svc := NewCameraService().(*cameraService)

	stream, err := svc.Acquire(context.Background())
	require.NoError(t, err)

	require.NoError(t, stream.Close())
	require.NoError(t, stream.Close())
	assert.Equal(t, 0, svc.OpenStreams())
}

func TestCameraService_TracksOpenStreams(t *testing.T) {
	svc := NewCameraService().(*cameraService)

	stream, err := svc.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, svc.OpenStreams())

	require.NoError(t, stream.Close())
	assert.Equal(t, 0, svc.OpenStreams())
}

func TestCameraService_AcquireHonorsContext(t *testing.T) {
	svc := NewCameraService().(*cameraService)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Acquire(ctx)
	assert.Error(t, err)
	assert.Equal(t, 0, svc.OpenStreams())
}
