package httpmsg

import "unsafe"

// b2s converts byte slice to a string without memory allocation.
//
// Note it may break if the garbage collector is aggressive.
func b2s(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// s2b converts string to a byte slice without memory allocation.
func s2b(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

var (
	toLowerTable [256]byte
	toUpperTable [256]byte
)

func init() {
	for i := 0; i < 256; i++ {
		c := byte(i)
		toLowerTable[i] = c
		toUpperTable[i] = c
		if 'A' <= c && c <= 'Z' {
			toLowerTable[i] = c + ('a' - 'A')
		}
		if 'a' <= c && c <= 'z' {
			toUpperTable[i] = c - ('a' - 'A')
		}
	}
}

func caseInsensitiveCompare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i, c := range a {
		if toLowerTable[c] != toLowerTable[b[i]] {
			return false
		}
	}
	return true
}

// normalizeHeaderKey rewrites b in place to canonical HTTP header casing:
// the first letter and each letter after a dash uppercased, the rest
// lowercased. Examples:
//
//   - coNTENT-TYPe -> Content-Type
//   - HOST -> Host
//   - foo-bar-baz -> Foo-Bar-Baz
func normalizeHeaderKey(b []byte) []byte {
	n := len(b)
	if n == 0 {
		return b
	}

	b[0] = toUpperTable[b[0]]
	for i := 1; i < n; i++ {
		p := &b[i]
		if *p == '-' {
			i++
			if i < n {
				b[i] = toUpperTable[b[i]]
			}
			continue
		}
		*p = toLowerTable[*p]
	}
	return b
}
