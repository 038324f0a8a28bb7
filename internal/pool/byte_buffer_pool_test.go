package pool

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(32)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 32, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(8)

	n, err := bb.Write([]byte{0x40, 0x00})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.NoError(t, bb.WriteByte(0x3F))
	require.Equal(t, []byte{0x40, 0x00, 0x3F}, bb.Bytes())

	capBefore := bb.Cap()
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap(), "Reset should keep capacity")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.Write([]byte("packed"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(6), n)
	require.Equal(t, "packed", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestByteBuffer_WriteTo_ErrorPropagation(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.Write([]byte{1, 2, 3})

	_, err := bb.WriteTo(failingWriter{})
	require.EqualError(t, err, "write failed")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity is a no-op", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(64)
		assert.Equal(t, 64, bb.Cap())
	})

	t.Run("small buffer grows by at least the default size", func(t *testing.T) {
		bb := NewByteBuffer(4)
		_, _ = bb.Write([]byte{1, 2, 3, 4})
		bb.Grow(1)
		assert.GreaterOrEqual(t, bb.Cap(), 4+SequenceBufferDefaultSize)
		assert.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())
	})

	t.Run("large buffer doubles", func(t *testing.T) {
		bb := NewByteBuffer(1024)
		bb.B = bb.B[:1024]
		bb.Grow(1)
		assert.GreaterOrEqual(t, bb.Cap(), 2048)
		assert.Equal(t, 1024, bb.Len())
	})

	t.Run("huge request", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(SequenceBufferDefaultSize * 10)
		assert.GreaterOrEqual(t, bb.Cap(), SequenceBufferDefaultSize*10)
	})
}

func TestSequenceBufferPool(t *testing.T) {
	bb := GetSequenceBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), SequenceBufferDefaultSize)

	_, _ = bb.Write([]byte("stale"))
	PutSequenceBuffer(bb)

	again := GetSequenceBuffer()
	assert.Equal(t, 0, again.Len(), "pooled buffer should come back empty")
	PutSequenceBuffer(again)

	assert.NotPanics(t, func() { PutSequenceBuffer(nil) })
}

func TestFrameBufferPool(t *testing.T) {
	bb := GetFrameBuffer()
	require.NotNil(t, bb)
	assert.GreaterOrEqual(t, bb.Cap(), FrameBufferDefaultSize)
	PutFrameBuffer(bb)
	assert.NotPanics(t, func() { PutFrameBuffer(nil) })
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	big := NewByteBuffer(128)
	_, _ = big.Write([]byte("oversized"))
	p.Put(big)

	got := p.Get()
	assert.NotSame(t, big, got, "oversized buffer should have been discarded")
	assert.Equal(t, 16, got.Cap())
}

func TestByteBufferPool_NoThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 0)
	bb := NewByteBuffer(1 << 20)

	assert.NotPanics(t, func() { p.Put(bb) })
}

func TestByteBufferPool_Concurrent(t *testing.T) {
	p := NewByteBufferPool(16, 0)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(id byte) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				bb := p.Get()
				if bb.Len() != 0 {
					t.Errorf("pooled buffer not empty: %d", bb.Len())
				}
				_ = bb.WriteByte(id)
				p.Put(bb)
			}
		}(byte(i))
	}
	wg.Wait()
}
