package pool

import "sync"

// BufferPool implements a pool of byte slices for efficient memory reuse
type BufferPool struct {
	pool sync.Pool
	size int
}

// NewBufferPool creates a new buffer pool with buffers of the specified size
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a buffer from the pool or creates a new one if none are available
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Put returns a buffer to the pool for reuse. Buffers that grew far beyond
// the pool size are dropped so one huge document does not pin memory.
func (bp *BufferPool) Put(buffer *[]byte) {
	if cap(*buffer) > bp.size*16 {
		return
	}
	*buffer = (*buffer)[:0]
	bp.pool.Put(buffer)
}

// RuneBufferPool implements a pool of rune slices
type RuneBufferPool struct {
	pool sync.Pool
	size int
}

// NewRuneBufferPool creates a new pool of rune slices with the specified size
func NewRuneBufferPool(size int) *RuneBufferPool {
	return &RuneBufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				buffer := make([]rune, 0, size)
				return &buffer
			},
		},
		size: size,
	}
}

// Get retrieves a rune buffer from the pool
func (rbp *RuneBufferPool) Get() *[]rune {
	return rbp.pool.Get().(*[]rune)
}

// Put returns a rune buffer to the pool
func (rbp *RuneBufferPool) Put(buffer *[]rune) {
	if cap(*buffer) > rbp.size*16 {
		return
	}
	*buffer = (*buffer)[:0]
	rbp.pool.Put(buffer)
}
