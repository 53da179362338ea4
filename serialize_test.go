package httpmsg

import (
	"bytes"
	"testing"

	"github.com/gookit/goutil/testutil/assert"
)

func TestRequestHead(t *testing.T) {
	req := AcquireRequest()
	defer ReleaseRequest(req)

	req.SetMethod("GET")
	req.SetRequestURI("/")
	req.SetProtocol("HTTP/1.1")
	req.Header.Set("Host", "example.com")

	head, err := req.Head()
	assert.NoErr(t, err)
	assert.Eq(t, "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n", string(head))
}

func TestRequestHeadDefaultsVersion(t *testing.T) {
	req := AcquireRequest()
	defer ReleaseRequest(req)

	req.SetMethod("HEAD")
	req.SetRequestURI("/x")
	head, err := req.Head()
	assert.NoErr(t, err)
	assert.Eq(t, "HEAD /x HTTP/1.1\r\n\r\n", string(head))
}

func TestRequestHeadMissingMethodOrURI(t *testing.T) {
	req := AcquireRequest()
	defer ReleaseRequest(req)

	_, err := req.Head()
	assert.Eq(t, ErrMissingRequestLine, err)

	req.SetMethod("GET")
	_, err = req.Head()
	assert.Eq(t, ErrMissingRequestLine, err)

	req.SetRequestURI("/")
	_, err = req.Head()
	assert.NoErr(t, err)
}

func TestRequestHeadCachedUntilMutation(t *testing.T) {
	req := AcquireRequest()
	defer ReleaseRequest(req)

	req.SetMethod("GET")
	req.SetRequestURI("/")
	req.Header.Set("Host", "example.com")

	h1, err := req.Head()
	assert.NoErr(t, err)
	h2, err := req.Head()
	assert.NoErr(t, err)
	// unmutated: the cached buffer is served as-is
	assert.True(t, &h1[0] == &h2[0])
	assert.Eq(t, string(h1), string(h2))

	// any mutation through the exported Header must invalidate the cache
	req.Header.Set("Accept", "*/*")
	h3, err := req.Head()
	assert.NoErr(t, err)
	assert.True(t, bytes.Contains(h3, []byte("Accept: */*\r\n")))

	// field mutation too
	req.SetRequestURI("/other")
	h4, err := req.Head()
	assert.NoErr(t, err)
	assert.True(t, bytes.HasPrefix(h4, []byte("GET /other HTTP/1.1\r\n")))

	// body mutation updates Content-Length in the next head
	assert.NoErr(t, req.SetBody([]byte("hello")))
	h5, err := req.Head()
	assert.NoErr(t, err)
	assert.True(t, bytes.Contains(h5, []byte("Content-Length: 5\r\n")))
}

func TestResponseHeadDefaults(t *testing.T) {
	resp := AcquireResponse()
	defer ReleaseResponse(resp)

	resp.SetStatusCode(503)
	head, err := resp.Head()
	assert.NoErr(t, err)
	assert.Eq(t, "HTTP/1.1 503 Unknown Error\r\n\r\n", string(head))

	resp.SetStatus(404, "Not Found")
	resp.SetProtocol("HTTP/1.0")
	head, err = resp.Head()
	assert.NoErr(t, err)
	assert.Eq(t, "HTTP/1.0 404 Not Found\r\n\r\n", string(head))
}

func TestRoundTrip(t *testing.T) {
	req := AcquireRequest()
	defer ReleaseRequest(req)

	req.SetMethod("GET")
	req.SetRequestURI("/")
	req.SetProtocol("HTTP/1.1")
	req.Header.Set("Host", "example.com")

	head, err := req.Head()
	assert.NoErr(t, err)

	parsed := AcquireRequest()
	defer ReleaseRequest(parsed)
	n, err := parsed.Parse(head)
	assert.NoErr(t, err)
	assert.Eq(t, len(head), n)

	assert.Eq(t, string(req.Method()), string(parsed.Method()))
	assert.Eq(t, string(req.RequestURI()), string(parsed.RequestURI()))
	assert.Eq(t, string(req.Protocol()), string(parsed.Protocol()))
	v, ok := parsed.Header.Get("Host")
	assert.True(t, ok)
	assert.Eq(t, "example.com", v)
	assert.Eq(t, req.Header.Len(), parsed.Header.Len())
}

func TestResponseRoundTrip(t *testing.T) {
	resp := AcquireResponse()
	defer ReleaseResponse(resp)

	resp.SetStatus(200, "OK")
	resp.SetProtocol("HTTP/1.1")
	assert.NoErr(t, resp.SetBody([]byte("hi")))

	head, err := resp.Head()
	assert.NoErr(t, err)

	parsed := AcquireResponse()
	defer ReleaseResponse(parsed)
	_, err = parsed.Parse(head)
	assert.NoErr(t, err)
	assert.Eq(t, 200, parsed.StatusCode())
	assert.Eq(t, "OK", string(parsed.StatusMessage()))
	v, _ := parsed.Header.Get("Content-Length")
	assert.Eq(t, "2", v)
}

func TestWriteTo(t *testing.T) {
	resp := AcquireResponse()
	defer ReleaseResponse(resp)

	resp.SetStatus(200, "OK")
	assert.NoErr(t, resp.SetBody([]byte("payload")))

	var buf bytes.Buffer
	n, err := resp.WriteTo(&buf)
	assert.NoErr(t, err)
	assert.Eq(t, int64(buf.Len()), n)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("HTTP/1.1 200 OK\r\n")))
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\r\n\r\npayload")))

	req := AcquireRequest()
	defer ReleaseRequest(req)
	_, err = req.WriteTo(&buf)
	assert.Eq(t, ErrMissingRequestLine, err)
}

func BenchmarkResponseHead(b *testing.B) {
	resp := AcquireResponse()
	defer ReleaseResponse(resp)
	resp.SetStatus(200, "OK")
	resp.Header.Set("Server", "demo")
	resp.Header.Set("Content-Type", "text/plain")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resp.SetStatusCode(200) // invalidate so every iteration rebuilds
		if _, err := resp.Head(); err != nil {
			b.Fatal(err)
		}
	}
}
