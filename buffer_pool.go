package logchan

import (
	"bytes"
	"sync"
)

const (
	defaultBufferCapacity = 512
	// Buffers that grew past this are not pooled again, to keep one huge
	// record from pinning memory for the life of the process.
	maxPooledBufferSize = 32 * 1024
)

// BufferPool recycles the byte buffers used to format records, so steady
// state logging allocates nothing per record.
type BufferPool struct {
	pool     sync.Pool
	capacity int
}

// NewBufferPool creates a pool with the default buffer capacity, which is
// enough for typical one-line records.
func NewBufferPool() *BufferPool {
	return NewBufferPoolWithCapacity(defaultBufferCapacity)
}

// NewBufferPoolWithCapacity creates a pool whose fresh buffers start at
// the given capacity.
func NewBufferPoolWithCapacity(capacity int) *BufferPool {
	bp := &BufferPool{capacity: capacity}
	bp.pool = sync.Pool{
		New: func() interface{} {
			return bytes.NewBuffer(make([]byte, 0, capacity))
		},
	}
	return bp
}

// Get returns a reset buffer ready for use. Return it with Put.
func (bp *BufferPool) Get() *bytes.Buffer {
	buf := bp.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Put returns a buffer to the pool. Oversized buffers are dropped.
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBufferSize {
		return
	}
	bp.pool.Put(buf)
}
