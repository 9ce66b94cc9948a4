package lock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAcquireRelease(t *testing.T) {
	l := NewMemory()

	release, err := l.Acquire(context.Background(), "token-a")
	require.NoError(t, err)

	_, err = l.Acquire(context.Background(), "token-a")
	assert.ErrorIs(t, err, ErrBusy)

	// An unrelated key is not blocked.
	other, err := l.Acquire(context.Background(), "token-b")
	require.NoError(t, err)
	other()

	release()
	again, err := l.Acquire(context.Background(), "token-a")
	require.NoError(t, err)
	again()
}
