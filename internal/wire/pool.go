// SPDX-License-Identifier: Apache-2.0

package wire

import "sync"

// bufferPool recycles the backing arrays of completed encodes to
// amortize allocations across repeated calls.
type bufferPool struct {
	pool sync.Pool
}

var defaultBufferPool = &bufferPool{
	pool: sync.Pool{
		New: func() interface{} {
			buf := make([]byte, 0, 256)
			return &buf
		},
	},
}

// Get returns a zero-length byte slice ready for reuse.
func (p *bufferPool) Get() []byte {
	return (*p.pool.Get().(*[]byte))[:0]
}

// Put returns buf's backing array to the pool once the caller is done
// with the encoded bytes (i.e. after copying them out, since the slice
// may be reused and overwritten).
func (p *bufferPool) Put(buf []byte) {
	if cap(buf) > 0 {
		p.pool.Put(&buf)
	}
}

// NewPooledBuffer returns a Buffer backed by a pooled scratch array.
// Call Release after the caller has copied out (or otherwise finished
// with) the result of Bytes, to return the array to the pool.
func NewPooledBuffer() *Buffer {
	return &Buffer{buf: defaultBufferPool.Get()}
}

// Release returns b's backing array to the shared pool. b must not be
// used afterwards.
func (b *Buffer) Release() {
	defaultBufferPool.Put(b.buf)
	b.buf = nil
}
