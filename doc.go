// Package httpmsg implements an HTTP/1.x message model: parsing raw bytes
// into Request/Response objects, mutating them, and serializing them back
// to wire bytes.
//
// The package performs no I/O. The parser is incremental and restartable:
// the transport layer feeds it byte windows as they arrive and retries on
// ErrNeedMore, with all resume state living in the message object itself.
// Chunked transfer encoding and body framing beyond Content-Length belong
// to the layers above.
package httpmsg
