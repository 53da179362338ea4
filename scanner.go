package httpmsg

// scanLine finds the next terminated line in buf and returns it without
// its terminator, plus the number of bytes to advance past it.
//
// Technically the wire carries CRLF, but debugging is easier with just
// LF, so bare LF is accepted too, following Postel's Law. A control byte
// below 0x20 (other than CR), or a CR followed by anything but LF, is a
// malformed-input error. Without a terminator in buf, scanLine reports
// ErrNeedMore and consumes nothing.
//
// buf is not modified; the returned line aliases it.
func scanLine(buf []byte) (line []byte, adv int, err error) {
	var prev byte
	for i := 0; i < len(buf); i++ {
		c := buf[i]
		if c == nChar {
			if prev == rChar {
				return buf[:i-1], i + 1, nil
			}
			return buf[:i], i + 1, nil
		}
		if (c < 0x20 && c != rChar) || prev == rChar {
			return nil, 0, newParseErr("invalid control byte in line", b2s(buf[:i+1]))
		}
		prev = c
	}
	return nil, 0, ErrNeedMore
}
