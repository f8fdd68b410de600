package display

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulstar.dev/internal/animation"
)

func sparkle() animation.Animation {
	return animation.NewSparkle(color.RGBA{R: 1, A: 0xFF}, 8, 0)
}

func TestQueueFIFO(t *testing.T) {
	q := newPendingQueue(4)

	a := animation.NewSparkle(color.RGBA{R: 1, A: 0xFF}, 8, 0)
	b := animation.NewPresence(nil, 8)
	require.True(t, q.Push(a))
	require.True(t, q.Push(b))
	assert.Equal(t, 2, q.Len())

	first, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, animation.KindSparkle, first.Kind())

	second, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, animation.KindPresence, second.Kind())

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueueDropOnFull(t *testing.T) {
	q := newPendingQueue(2)

	assert.True(t, q.Push(sparkle()))
	assert.True(t, q.Push(sparkle()))
	assert.False(t, q.Push(sparkle()))
	assert.Equal(t, 2, q.Len())
}

func TestQueuePeekDoesNotDequeue(t *testing.T) {
	q := newPendingQueue(2)
	require.True(t, q.Push(sparkle()))

	_, ok := q.Peek()
	assert.True(t, ok)
	assert.Equal(t, 1, q.Len())

	q.Drop()
	assert.Equal(t, 0, q.Len())

	_, ok = q.Peek()
	assert.False(t, ok)
	q.Drop() // dropping an empty queue is harmless
}

func TestQueueWrapsAround(t *testing.T) {
	q := newPendingQueue(2)
	for i := 0; i < 5; i++ {
		require.True(t, q.Push(sparkle()))
		_, ok := q.Pop()
		require.True(t, ok)
	}
	assert.Equal(t, 0, q.Len())
}

func TestTrySend(t *testing.T) {
	ch := make(chan Msg, 1)

	assert.True(t, TrySend(ch, Stop{}))
	// Queue full: the message is dropped, the caller never blocks.
	done := make(chan bool, 1)
	go func() {
		done <- TrySend(ch, Start{})
	}()
	select {
	case accepted := <-done:
		assert.False(t, accepted)
	case <-time.After(time.Second):
		t.Fatal("TrySend blocked on a full channel")
	}
}
