package httpmsg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/goutil/testutil/assert"
	"github.com/rs/zerolog"
)

func TestDebugLoggerTracesParseRejections(t *testing.T) {
	var out bytes.Buffer
	SetDebugLogger(zerolog.New(&out).Level(zerolog.DebugLevel))
	defer SetDebugLogger(zerolog.Nop())

	req := AcquireRequest()
	defer ReleaseRequest(req)
	_, err := req.Parse([]byte("GET\r\n\r\n"))
	assert.True(t, IsParseErr(err))
	assert.True(t, strings.Contains(out.String(), "request uri not found"))
}

func TestSilentByDefault(t *testing.T) {
	req := AcquireRequest()
	defer ReleaseRequest(req)
	// no logger installed: rejection is returned, not logged
	_, err := req.Parse([]byte("bad\x00line\r\n"))
	assert.True(t, IsParseErr(err))
}
