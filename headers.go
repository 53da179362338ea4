package httpmsg

import "bytes"

type headerKV struct {
	key   []byte
	value []byte
}

// Header is an ordered collection of HTTP header fields.
//
// At most one entry exists per case-insensitive name. Set replaces the
// value of an existing entry; Add merges into it with ", ", the way real
// clients emit repeated tokens (Firefox sends Connection: keepalive and
// Connection: upgrade as two fields that must collapse to
// "keepalive, upgrade"). Insertion order is preserved and is the order
// headers serialize in.
//
// Keys are stored in canonical HTTP casing (Content-Type); lookup is
// case-insensitive regardless.
//
// Header instances MUST NOT be used from concurrently running goroutines.
type Header struct {
	kvs []headerKV

	// rev increments on every mutation. Message objects snapshot it to
	// detect a stale serialized head.
	rev uint64
}

func (h *Header) mutated() {
	h.rev++
}

func (h *Header) indexOf(key []byte) int {
	for i := range h.kvs {
		if caseInsensitiveCompare(h.kvs[i].key, key) {
			return i
		}
	}
	return -1
}

func (h *Header) alloc() *headerKV {
	n := len(h.kvs)
	if cap(h.kvs) > n {
		h.kvs = h.kvs[:n+1]
	} else {
		h.kvs = append(h.kvs, headerKV{})
	}
	return &h.kvs[n]
}

// Set replaces the value of the case-insensitive key, appending a new
// entry if none exists.
func (h *Header) Set(key, value string) {
	h.SetBytes(s2b(key), s2b(value))
}

// SetBytes is like Set. key and value are copied, not retained.
func (h *Header) SetBytes(key, value []byte) {
	if i := h.indexOf(key); i >= 0 {
		kv := &h.kvs[i]
		kv.value = append(kv.value[:0], value...)
		h.mutated()
		return
	}
	kv := h.alloc()
	kv.key = normalizeHeaderKey(append(kv.key[:0], key...))
	kv.value = append(kv.value[:0], value...)
	h.mutated()
}

// Add appends value to an existing entry for the case-insensitive key,
// separated by ", ". Without an existing entry it behaves like Set.
func (h *Header) Add(key, value string) {
	h.AddBytes(s2b(key), s2b(value))
}

// AddBytes is like Add. key and value are copied, not retained.
func (h *Header) AddBytes(key, value []byte) {
	if i := h.indexOf(key); i >= 0 {
		kv := &h.kvs[i]
		kv.value = append(kv.value, strCommaSpace...)
		kv.value = append(kv.value, value...)
		h.mutated()
		return
	}
	kv := h.alloc()
	kv.key = normalizeHeaderKey(append(kv.key[:0], key...))
	kv.value = append(kv.value[:0], value...)
	h.mutated()
}

// Peek returns the value for the case-insensitive key, or nil.
//
// The returned slice is valid until the next Header mutation. Do not
// store it or modify it; make a copy instead.
func (h *Header) Peek(key string) []byte {
	return h.PeekBytes(s2b(key))
}

// PeekBytes is like Peek.
func (h *Header) PeekBytes(key []byte) []byte {
	if i := h.indexOf(key); i >= 0 {
		return h.kvs[i].value
	}
	return nil
}

// Get returns a copy of the value for the case-insensitive key.
func (h *Header) Get(key string) (string, bool) {
	if i := h.indexOf(s2b(key)); i >= 0 {
		return string(h.kvs[i].value), true
	}
	return "", false
}

// Del removes the entry for the case-insensitive key. It returns
// ErrNoSuchHeader if no entry matches.
func (h *Header) Del(key string) error {
	return h.DelBytes(s2b(key))
}

// DelBytes is like Del.
func (h *Header) DelBytes(key []byte) error {
	i := h.indexOf(key)
	if i < 0 {
		return ErrNoSuchHeader
	}
	// shift down, recycling the removed entry's storage at the tail
	removed := h.kvs[i]
	copy(h.kvs[i:], h.kvs[i+1:])
	removed.key = removed.key[:0]
	removed.value = removed.value[:0]
	h.kvs[len(h.kvs)-1] = removed
	h.kvs = h.kvs[:len(h.kvs)-1]
	h.mutated()
	return nil
}

// Reset removes all entries, keeping allocated storage for reuse.
func (h *Header) Reset() {
	for i := range h.kvs {
		h.kvs[i].key = h.kvs[i].key[:0]
		h.kvs[i].value = h.kvs[i].value[:0]
	}
	h.kvs = h.kvs[:0]
	h.mutated()
}

// Len returns the number of entries.
func (h *Header) Len() int {
	return len(h.kvs)
}

// VisitAll calls f for each entry in insertion order.
//
// The slices passed to f are valid only during the call.
func (h *Header) VisitAll(f func(key, value []byte)) {
	for i := range h.kvs {
		f(h.kvs[i].key, h.kvs[i].value)
	}
}

// CopyTo replaces dst's entries with a deep copy of h's.
func (h *Header) CopyTo(dst *Header) {
	dst.Reset()
	for i := range h.kvs {
		kv := dst.alloc()
		kv.key = append(kv.key[:0], h.kvs[i].key...)
		kv.value = append(kv.value[:0], h.kvs[i].value...)
	}
	dst.mutated()
}

// wireLen returns the serialized size of all entries, each formatted as
// "Key: Value\r\n".
func (h *Header) wireLen() int {
	n := 0
	for i := range h.kvs {
		n += len(h.kvs[i].key) + 2 + len(h.kvs[i].value) + 2
	}
	return n
}

// AppendBytes appends all entries to dst in wire format and returns dst.
func (h *Header) AppendBytes(dst []byte) []byte {
	for i := range h.kvs {
		dst = append(dst, h.kvs[i].key...)
		dst = append(dst, strColonSpace...)
		dst = append(dst, h.kvs[i].value...)
		dst = append(dst, strCRLF...)
	}
	return dst
}

// parseLine splits a raw header line on the first colon, trims
// surrounding whitespace from the value and merges it in with Add
// semantics, matching how repeated fields arrive on the wire.
func (h *Header) parseLine(line []byte) error {
	i := bytes.IndexByte(line, ':')
	if i < 0 {
		return newParseErr("missing colon in header line", b2s(line))
	}
	key := line[:i]
	value := line[i+1:]
	for len(value) > 0 && (value[0] == ' ' || value[0] == '\t') {
		value = value[1:]
	}
	for len(value) > 0 && (value[len(value)-1] == ' ' || value[len(value)-1] == '\t') {
		value = value[:len(value)-1]
	}
	h.AddBytes(key, value)
	return nil
}
