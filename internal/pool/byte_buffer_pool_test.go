package pool

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(128)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 128, bb.Cap())
	require.Empty(t, bb.Bytes())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.NoError(t, bb.WriteByte('d'))
	require.Equal(t, []byte("abcd"), bb.Bytes())

	capBefore := bb.Cap()
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity keeps buffer", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.Grow(32)
		require.Equal(t, 64, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		_, _ = bb.Write(make([]byte, 8))
		bb.Grow(1)
		require.Equal(t, 8+BlobBufferDefaultSize, bb.Cap())
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := 8 * BlobBufferDefaultSize
		bb := NewByteBuffer(size)
		_, _ = bb.Write(make([]byte, size))
		bb.Grow(1)
		require.Equal(t, size+size/4, bb.Cap())
	})

	t.Run("growth covers required bytes", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(3 * BlobBufferDefaultSize)
		require.GreaterOrEqual(t, bb.Cap(), 3*BlobBufferDefaultSize)
	})

	t.Run("growth preserves data", func(t *testing.T) {
		bb := NewByteBuffer(2)
		_, _ = bb.Write([]byte{1, 2})
		bb.Grow(100)
		require.Equal(t, []byte{1, 2}, bb.Bytes())
	})
}

func TestByteBuffer_Extend(t *testing.T) {
	bb := NewByteBuffer(2)
	_, _ = bb.Write([]byte{9})

	region := bb.Extend(4)
	require.Len(t, region, 4)
	copy(region, []byte{1, 2, 3, 4})
	require.Equal(t, []byte{9, 1, 2, 3, 4}, bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	_, _ = bb.Write([]byte("sample"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(6), n)
	require.Equal(t, "sample", out.String())

	_, err = bb.WriteTo(failingWriter{})
	require.Error(t, err)
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 32)

	big := NewByteBuffer(64)
	p.Put(big) // dropped, over threshold

	small := p.Get()
	require.NotSame(t, big, small)
	require.LessOrEqual(t, small.Cap(), 32)
}

func TestByteBufferPool_PutResets(t *testing.T) {
	p := NewByteBufferPool(16, 0)
	bb := p.Get()
	_, _ = bb.Write([]byte("dirty"))
	p.Put(bb)
	p.Put(nil)

	got := p.Get()
	require.Equal(t, 0, got.Len())
}

func TestBlobBuffer_ConcurrentAccess(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 100 {
				bb := GetBlobBuffer()
				require.Equal(t, 0, bb.Len())
				_ = bb.WriteByte(byte(id))
				PutBlobBuffer(bb)
			}
		}(i)
	}
	wg.Wait()
}
