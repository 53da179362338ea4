package httpmsg

import (
	"io"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

var headBufferPool bytebufferpool.Pool

// sizeHeadBuffer makes room for n bytes, reusing the previous allocation
// when it is still large enough, and returns the empty slice to fill.
func sizeHeadBuffer(bb *bytebufferpool.ByteBuffer, n int) []byte {
	if cap(bb.B) < n {
		bb.B = make([]byte, 0, n)
	}
	return bb.B[:0]
}

// Head returns the serialized head section: request line, headers and
// the terminating blank line. The buffer is built lazily, sized by a
// measure-then-fill pass, and cached until the next mutation.
//
// A request without method or URI cannot be serialized and returns
// ErrMissingRequestLine.
//
// The returned slice is valid until the next Request mutation.
func (req *Request) Head() ([]byte, error) {
	if req.headValid && req.headerRev == req.Header.rev {
		return req.head.B, nil
	}
	if len(req.method) == 0 || len(req.requestURI) == 0 {
		return nil, ErrMissingRequestLine
	}

	proto := req.proto
	if len(proto) == 0 {
		proto = strHTTP11
	}

	n := len(req.method) + 1 + len(req.requestURI) + 1 + len(proto) + 2 +
		req.Header.wireLen() + 2

	if req.head == nil {
		req.head = headBufferPool.Get()
	}
	b := sizeHeadBuffer(req.head, n)
	b = append(b, req.method...)
	b = append(b, ' ')
	b = append(b, req.requestURI...)
	b = append(b, ' ')
	b = append(b, proto...)
	b = append(b, strCRLF...)
	b = req.Header.AppendBytes(b)
	b = append(b, strCRLF...)
	req.head.B = b

	req.headValid = true
	req.headerRev = req.Header.rev
	return req.head.B, nil
}

// Head returns the serialized head section: status line, headers and the
// terminating blank line. A missing version defaults to HTTP/1.1, a
// missing reason phrase to "Unknown Error". The buffer is built lazily
// and cached until the next mutation.
//
// The returned slice is valid until the next Response mutation.
func (resp *Response) Head() ([]byte, error) {
	if resp.headValid && resp.headerRev == resp.Header.rev {
		return resp.head.B, nil
	}

	proto := resp.proto
	if len(proto) == 0 {
		proto = strHTTP11
	}
	message := resp.statusMessage
	if len(message) == 0 {
		message = strUnknownError
	}

	var code [16]byte
	codeBytes := strconv.AppendInt(code[:0], int64(resp.statusCode), 10)

	n := len(proto) + 1 + len(codeBytes) + 1 + len(message) + 2 +
		resp.Header.wireLen() + 2

	if resp.head == nil {
		resp.head = headBufferPool.Get()
	}
	b := sizeHeadBuffer(resp.head, n)
	b = append(b, proto...)
	b = append(b, ' ')
	b = append(b, codeBytes...)
	b = append(b, ' ')
	b = append(b, message...)
	b = append(b, strCRLF...)
	b = resp.Header.AppendBytes(b)
	b = append(b, strCRLF...)
	resp.head.B = b

	resp.headValid = true
	resp.headerRev = resp.Header.rev
	return resp.head.B, nil
}

// WriteTo serializes the head followed by the body to w, implementing
// io.WriterTo for transport sinks.
func (req *Request) WriteTo(w io.Writer) (int64, error) {
	head, err := req.Head()
	if err != nil {
		return 0, err
	}
	return writeHeadAndBody(w, head, req.body.view())
}

// WriteTo serializes the head followed by the body to w, implementing
// io.WriterTo for transport sinks.
func (resp *Response) WriteTo(w io.Writer) (int64, error) {
	head, err := resp.Head()
	if err != nil {
		return 0, err
	}
	return writeHeadAndBody(w, head, resp.body.view())
}

func writeHeadAndBody(w io.Writer, head, body []byte) (int64, error) {
	n, err := w.Write(head)
	total := int64(n)
	if err != nil {
		return total, err
	}
	if len(body) > 0 {
		n, err = w.Write(body)
		total += int64(n)
	}
	return total, err
}
