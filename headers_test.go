package httpmsg

import (
	"testing"

	"github.com/gookit/goutil/testutil/assert"
	"github.com/xyproto/randomstring"
)

func TestHeaderSetReplaces(t *testing.T) {
	var h Header
	h.Set("Connection", "keepalive")
	h.Set("Connection", "close")
	v, ok := h.Get("Connection")
	assert.True(t, ok)
	assert.Eq(t, "close", v)
	assert.Eq(t, 1, h.Len())
}

func TestHeaderAddMergesWithComma(t *testing.T) {
	var h Header
	h.Add("Connection", "keepalive")
	h.Add("Connection", "upgrade")
	v, ok := h.Get("Connection")
	assert.True(t, ok)
	assert.Eq(t, "keepalive, upgrade", v)
	assert.Eq(t, 1, h.Len())
}

func TestHeaderCaseInsensitiveLookup(t *testing.T) {
	var h Header
	h.Set("Content-Type", "x")
	v, ok := h.Get("content-type")
	assert.True(t, ok)
	assert.Eq(t, "x", v)
	assert.Eq(t, "x", string(h.Peek("CONTENT-TYPE")))

	// replacement through a differently-cased name must hit the same entry
	h.Set("CONTENT-TYPE", "y")
	assert.Eq(t, 1, h.Len())
	v, _ = h.Get("Content-Type")
	assert.Eq(t, "y", v)
}

func TestHeaderKeyNormalization(t *testing.T) {
	var h Header
	h.Set("coNTENT-TYPe", "text/plain")
	h.VisitAll(func(key, value []byte) {
		assert.Eq(t, "Content-Type", string(key))
	})
}

func TestHeaderDel(t *testing.T) {
	var h Header
	h.Set("A", "1")
	h.Set("B", "2")
	h.Set("C", "3")

	assert.NoErr(t, h.Del("b"))
	assert.Eq(t, 2, h.Len())
	_, ok := h.Get("B")
	assert.False(t, ok)

	err := h.Del("B")
	assert.Eq(t, ErrNoSuchHeader, err)

	// order of survivors preserved
	assert.Eq(t, "A: 1\r\nC: 3\r\n", string(h.AppendBytes(nil)))
}

func TestHeaderInsertionOrderPreserved(t *testing.T) {
	var h Header
	h.Set("Host", "example.com")
	h.Set("Accept", "*/*")
	h.Add("Connection", "keepalive")
	h.Set("Host", "other.example.com") // replace must not reorder

	assert.Eq(t, "Host: other.example.com\r\nAccept: */*\r\nConnection: keepalive\r\n",
		string(h.AppendBytes(nil)))
}

func TestHeaderReset(t *testing.T) {
	var h Header
	h.Set("Host", "example.com")
	h.Set("Accept", "*/*")
	h.Reset()
	assert.Eq(t, 0, h.Len())
	_, ok := h.Get("Host")
	assert.False(t, ok)
}

func TestHeaderCopyTo(t *testing.T) {
	var h, dst Header
	h.Set("Host", "example.com")
	h.Add("Connection", "keepalive")
	h.CopyTo(&dst)

	h.Set("Host", "mutated.example.com")
	v, _ := dst.Get("Host")
	assert.Eq(t, "example.com", v)
	assert.Eq(t, string(dst.AppendBytes(nil)), "Host: example.com\r\nConnection: keepalive\r\n")
}

func TestHeaderParseLineTrimsValue(t *testing.T) {
	var h Header
	assert.NoErr(t, h.parseLine([]byte("Host: \t example.com \t ")))
	v, _ := h.Get("Host")
	assert.Eq(t, "example.com", v)

	err := h.parseLine([]byte("no colon here"))
	assert.True(t, IsParseErr(err))
}

func TestHeaderManyRandomKeys(t *testing.T) {
	var h Header
	keys := make([]string, 50)
	for i := range keys {
		keys[i] = "X-" + randomstring.CookieFriendlyString(12)
		h.Set(keys[i], keys[i])
	}
	assert.Eq(t, len(keys), h.Len())
	for _, k := range keys {
		v, ok := h.Get(k)
		assert.True(t, ok)
		assert.Eq(t, k, v)
	}
}

func BenchmarkHeaderSet(b *testing.B) {
	var h Header
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Set("Content-Type", "text/html; charset=UTF-8")
	}
}
