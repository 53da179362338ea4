package httpmsg

import (
	"github.com/valyala/bytebufferpool"
)

// Bodies whose capacity exceeds this are dropped instead of being returned
// to the pool. A value <= 0 recycles everything.
var maxKeepBodySize = 8 * 1024 * 1024

// SetMaxKeepBodySize caps the capacity of body buffers returned to the
// cache pool on release.
func SetMaxKeepBodySize(n int) {
	maxKeepBodySize = n
}

// When > 0, copying setters refuse bodies larger than this.
var maxBodySize = 0

// SetMaxBodySize bounds the size accepted by the copying body setters.
// A value <= 0 means unlimited.
func SetMaxBodySize(n int) {
	maxBodySize = n
}

var (
	requestBodyPool  bytebufferpool.Pool
	responseBodyPool bytebufferpool.Pool
)

// entity holds the message payload. Exactly one of bodyRaw and body is
// set at a time:
//
//   - bodyRaw references caller-owned bytes and is never freed here;
//   - body is exclusively owned and goes back to its pool on release.
type entity struct {
	bodyRaw []byte
	body    *bytebufferpool.ByteBuffer
}

func (e *entity) view() []byte {
	if e.body != nil {
		return e.body.B
	}
	return e.bodyRaw
}

func (e *entity) size() int {
	return len(e.view())
}

// release drops any borrowed reference and returns owned storage to pool.
func (e *entity) release(pool *bytebufferpool.Pool) {
	if e.body != nil {
		if maxKeepBodySize <= 0 || cap(e.body.B) <= maxKeepBodySize {
			e.body.Reset()
			pool.Put(e.body)
		}
		e.body = nil
	}
	e.bodyRaw = nil
}

// setRaw stores a borrowed reference. It does not touch any header.
func (e *entity) setRaw(pool *bytebufferpool.Pool, b []byte) {
	e.release(pool)
	e.bodyRaw = b
}

// copyFrom copies b into owned pooled storage. On failure the entity is
// left empty, never partially set.
func (e *entity) copyFrom(pool *bytebufferpool.Pool, b []byte) error {
	e.release(pool)
	if maxBodySize > 0 && len(b) > maxBodySize {
		return ErrBodyTooLarge
	}
	e.body = pool.Get()
	e.body.B = append(e.body.B[:0], b...)
	return nil
}

// alloc reserves n owned bytes and returns the writable slice. On failure
// the entity is left empty.
func (e *entity) alloc(pool *bytebufferpool.Pool, n int) ([]byte, error) {
	e.release(pool)
	if maxBodySize > 0 && n > maxBodySize {
		return nil, ErrBodyTooLarge
	}
	e.body = pool.Get()
	if cap(e.body.B) < n {
		e.body.B = make([]byte, n)
	} else {
		e.body.B = e.body.B[:n]
	}
	clear(e.body.B)
	return e.body.B, nil
}
