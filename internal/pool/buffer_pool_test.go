package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferPoolReturnsEmptyBuffers(t *testing.T) {
	bp := NewBufferPool(8)
	buf := bp.Get()
	assert.Len(t, *buf, 0)
	*buf = append(*buf, "hello"...)
	bp.Put(buf)

	again := bp.Get()
	assert.Len(t, *again, 0)
}

func TestRuneBufferPoolReturnsEmptyBuffers(t *testing.T) {
	rbp := NewRuneBufferPool(4)
	buf := rbp.Get()
	*buf = append(*buf, []rune("żółw")...)
	rbp.Put(buf)

	again := rbp.Get()
	assert.Len(t, *again, 0)
	assert.GreaterOrEqual(t, cap(*again), 0)
}
