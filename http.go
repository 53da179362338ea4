package httpmsg

import (
	"strconv"
	"sync"

	"github.com/valyala/bytebufferpool"
)

// Request represents an HTTP request head plus entity body.
//
// It is forbidden copying Request instances. Create new instances
// and use CopyTo instead.
//
// Request instance MUST NOT be used from concurrently running goroutines.
type Request struct {
	noCopy noCopy

	// Request header fields.
	//
	// Copying Header by value is forbidden. Use pointer to Header instead.
	Header Header

	method     []byte
	requestURI []byte
	proto      []byte

	body entity

	// Cached wire head. headValid covers start-line and body mutations;
	// headerRev catches Header mutations made through the exported field.
	head      *bytebufferpool.ByteBuffer
	headValid bool
	headerRev uint64
}

// Response represents an HTTP response head plus entity body.
//
// It is forbidden copying Response instances. Create new instances
// and use CopyTo instead.
//
// Response instance MUST NOT be used from concurrently running goroutines.
type Response struct {
	noCopy noCopy

	// Response header fields.
	//
	// Copying Header by value is forbidden. Use pointer to Header instead.
	Header Header

	statusCode    int
	statusMessage []byte
	proto         []byte

	body entity

	head      *bytebufferpool.ByteBuffer
	headValid bool
	headerRev uint64
}

var (
	requestPool  sync.Pool
	responsePool sync.Pool
)

// AcquireRequest returns an empty Request instance from the request pool.
//
// The returned Request instance may be passed to ReleaseRequest when it is
// no longer needed. This allows Request recycling, reduces GC pressure
// and usually improves performance.
func AcquireRequest() *Request {
	v := requestPool.Get()
	if v == nil {
		return &Request{}
	}
	return v.(*Request)
}

// ReleaseRequest returns req acquired via AcquireRequest to the request
// pool. It is forbidden accessing req and/or its members after returning
// it to the pool.
func ReleaseRequest(req *Request) {
	req.Reset()
	requestPool.Put(req)
}

// AcquireResponse returns an empty Response instance from the response pool.
//
// The returned Response instance may be passed to ReleaseResponse when it is
// no longer needed. This allows Response recycling, reduces GC pressure
// and usually improves performance.
func AcquireResponse() *Response {
	v := responsePool.Get()
	if v == nil {
		return &Response{}
	}
	return v.(*Response)
}

// ReleaseResponse returns resp acquired via AcquireResponse to the
// response pool. It is forbidden accessing resp and/or its members after
// returning it to the pool.
func ReleaseResponse(resp *Response) {
	resp.Reset()
	responsePool.Put(resp)
}

func (req *Request) invalidateHead() {
	req.headValid = false
}

func (resp *Response) invalidateHead() {
	resp.headValid = false
}

// Method returns the request method.
//
// The returned slice is valid until the next Request mutation.
func (req *Request) Method() []byte {
	return req.method
}

// SetMethod sets the request method.
func (req *Request) SetMethod(method string) {
	req.SetMethodBytes(s2b(method))
}

// SetMethodBytes copies method in.
func (req *Request) SetMethodBytes(method []byte) {
	req.method = append(req.method[:0], method...)
	req.invalidateHead()
}

// RequestURI returns the request target.
//
// The returned slice is valid until the next Request mutation.
func (req *Request) RequestURI() []byte {
	return req.requestURI
}

// SetRequestURI sets the request target.
func (req *Request) SetRequestURI(uri string) {
	req.SetRequestURIBytes(s2b(uri))
}

// SetRequestURIBytes copies uri in.
func (req *Request) SetRequestURIBytes(uri []byte) {
	req.requestURI = append(req.requestURI[:0], uri...)
	req.invalidateHead()
}

// Protocol returns the request HTTP version, empty until set or parsed.
// Serialization defaults an empty version to HTTP/1.1.
func (req *Request) Protocol() []byte {
	return req.proto
}

// SetProtocol sets the request HTTP version, e.g. "HTTP/1.1".
func (req *Request) SetProtocol(proto string) {
	req.SetProtocolBytes(s2b(proto))
}

// SetProtocolBytes copies proto in.
func (req *Request) SetProtocolBytes(proto []byte) {
	req.proto = append(req.proto[:0], proto...)
	req.invalidateHead()
}

// StatusCode returns the response status code, 0 until set or parsed.
func (resp *Response) StatusCode() int {
	return resp.statusCode
}

// SetStatusCode sets the response status code without touching the
// reason phrase.
func (resp *Response) SetStatusCode(code int) {
	resp.statusCode = code
	resp.invalidateHead()
}

// StatusMessage returns the response reason phrase.
//
// The returned slice is valid until the next Response mutation.
func (resp *Response) StatusMessage() []byte {
	return resp.statusMessage
}

// SetStatusMessage sets the response reason phrase.
func (resp *Response) SetStatusMessage(message string) {
	resp.SetStatusMessageBytes(s2b(message))
}

// SetStatusMessageBytes copies message in.
func (resp *Response) SetStatusMessageBytes(message []byte) {
	resp.statusMessage = append(resp.statusMessage[:0], message...)
	resp.invalidateHead()
}

// SetStatus sets the status code together with its reason phrase.
func (resp *Response) SetStatus(code int, message string) {
	resp.statusCode = code
	resp.SetStatusMessage(message)
}

// Protocol returns the response HTTP version, empty until set or parsed.
// Serialization defaults an empty version to HTTP/1.1.
func (resp *Response) Protocol() []byte {
	return resp.proto
}

// SetProtocol sets the response HTTP version, e.g. "HTTP/1.1".
func (resp *Response) SetProtocol(proto string) {
	resp.SetProtocolBytes(s2b(proto))
}

// SetProtocolBytes copies proto in.
func (resp *Response) SetProtocolBytes(proto []byte) {
	resp.proto = append(resp.proto[:0], proto...)
	resp.invalidateHead()
}

// Body returns the current entity bytes, borrowed or owned. It never
// allocates.
//
// The returned slice is valid until the next body mutation.
func (req *Request) Body() []byte {
	return req.body.view()
}

// Body returns the current entity bytes, borrowed or owned. It never
// allocates.
//
// The returned slice is valid until the next body mutation.
func (resp *Response) Body() []byte {
	return resp.body.view()
}

func setContentLength(h *Header, n int) {
	var buf [16]byte
	h.SetBytes(strContentLength, strconv.AppendInt(buf[:0], int64(n), 10))
}

// SetBodyRaw stores body without copying; the bytes stay owned by the
// caller and are never released here. The Content-Length header is
// updated to match.
func (req *Request) SetBodyRaw(body []byte) {
	req.body.setRaw(&requestBodyPool, body)
	setContentLength(&req.Header, len(body))
	req.invalidateHead()
}

// SetBodyRaw stores body without copying; the bytes stay owned by the
// caller and are never released here. The Content-Length header is
// updated to match.
func (resp *Response) SetBodyRaw(body []byte) {
	resp.body.setRaw(&responseBodyPool, body)
	setContentLength(&resp.Header, len(body))
	resp.invalidateHead()
}

// SetBody copies body into exclusively owned storage and updates the
// Content-Length header to match. On error the entity is left empty.
func (req *Request) SetBody(body []byte) error {
	if err := req.body.copyFrom(&requestBodyPool, body); err != nil {
		return err
	}
	setContentLength(&req.Header, len(body))
	req.invalidateHead()
	return nil
}

// SetBody copies body into exclusively owned storage and updates the
// Content-Length header to match. On error the entity is left empty.
func (resp *Response) SetBody(body []byte) error {
	if err := resp.body.copyFrom(&responseBodyPool, body); err != nil {
		return err
	}
	setContentLength(&resp.Header, len(body))
	resp.invalidateHead()
	return nil
}

// AllocBody reserves an owned zeroed body of n bytes for callers that
// fill it in place, without updating any header. On error the entity is
// left empty.
func (resp *Response) AllocBody(n int) ([]byte, error) {
	b, err := resp.body.alloc(&responseBodyPool, n)
	if err != nil {
		return nil, err
	}
	resp.invalidateHead()
	return b, nil
}

// ReleaseBody drops the body, returning owned storage to the pool. No
// header is updated.
func (req *Request) ReleaseBody() {
	req.body.release(&requestBodyPool)
	req.invalidateHead()
}

// ReleaseBody drops the body, returning owned storage to the pool. No
// header is updated.
func (resp *Response) ReleaseBody() {
	resp.body.release(&responseBodyPool)
	resp.invalidateHead()
}

// Reset clears the request for reuse: headers, body, method, URI and
// version are all dropped, allocated buffers are kept or recycled.
func (req *Request) Reset() {
	req.Header.Reset()
	req.body.release(&requestBodyPool)
	req.method = req.method[:0]
	req.requestURI = req.requestURI[:0]
	req.proto = req.proto[:0]
	req.invalidateHead()
}

// Reset clears the response for reuse: headers, body, status, reason and
// version are all dropped, allocated buffers are kept or recycled.
func (resp *Response) Reset() {
	resp.Header.Reset()
	resp.body.release(&responseBodyPool)
	resp.statusCode = 0
	resp.statusMessage = resp.statusMessage[:0]
	resp.proto = resp.proto[:0]
	resp.invalidateHead()
}

// CopyTo replaces dst with a deep copy of req, except the serialize
// cache, which dst rebuilds on demand.
func (req *Request) CopyTo(dst *Request) {
	dst.Reset()
	req.Header.CopyTo(&dst.Header)
	dst.method = append(dst.method[:0], req.method...)
	dst.requestURI = append(dst.requestURI[:0], req.requestURI...)
	dst.proto = append(dst.proto[:0], req.proto...)
	if b := req.body.view(); b != nil {
		_ = dst.body.copyFrom(&requestBodyPool, b)
	}
}

// CopyTo replaces dst with a deep copy of resp, except the serialize
// cache, which dst rebuilds on demand.
func (resp *Response) CopyTo(dst *Response) {
	dst.Reset()
	resp.Header.CopyTo(&dst.Header)
	dst.statusCode = resp.statusCode
	dst.statusMessage = append(dst.statusMessage[:0], resp.statusMessage...)
	dst.proto = append(dst.proto[:0], resp.proto...)
	if b := resp.body.view(); b != nil {
		_ = dst.body.copyFrom(&responseBodyPool, b)
	}
}
