package httpmsg

import (
	"bytes"
	"strconv"
)

// Parse consumes as many complete head-section lines from buf as are
// available: the request line first, then header lines, until the blank
// line that ends the head.
//
// It returns the number of bytes consumed and one of:
//
//   - nil: the head is fully parsed (blank line reached);
//   - ErrNeedMore: the head is incomplete; call Parse again with the
//     unconsumed tail of buf plus newly arrived bytes. Fields and headers
//     parsed so far are kept and not re-parsed — resumption is keyed off
//     the version having been set by the request line;
//   - a malformed-input error.
//
// n may be nonzero alongside an error, ErrNeedMore especially, so the
// caller can slide its buffer. buf is borrowed for the duration of the
// call only; everything captured is copied.
func (req *Request) Parse(buf []byte) (n int, err error) {
	req.invalidateHead()
	for {
		var line []byte
		var adv int
		line, adv, err = scanLine(buf[n:])
		if err != nil {
			if IsParseErr(err) {
				debugLogger.Debug().Err(err).Msg("request head rejected")
			}
			return n, err
		}
		n += adv

		if len(line) == 0 {
			return n, nil
		}

		if len(req.proto) != 0 {
			err = req.Header.parseLine(line)
		} else {
			err = req.parseRequestLine(line)
		}
		if err != nil {
			debugLogger.Debug().Err(err).Msg("request head rejected")
			return n, err
		}
	}
}

// Parse is the response analog of Request.Parse: status line first, then
// header lines, until the blank line ending the head. The contract and
// return values are identical.
func (resp *Response) Parse(buf []byte) (n int, err error) {
	resp.invalidateHead()
	for {
		var line []byte
		var adv int
		line, adv, err = scanLine(buf[n:])
		if err != nil {
			if IsParseErr(err) {
				debugLogger.Debug().Err(err).Msg("response head rejected")
			}
			return n, err
		}
		n += adv

		if len(line) == 0 {
			return n, nil
		}

		if len(resp.proto) != 0 {
			err = resp.Header.parseLine(line)
		} else {
			err = resp.parseStatusLine(line)
		}
		if err != nil {
			debugLogger.Debug().Err(err).Msg("response head rejected")
			return n, err
		}
	}
}

// parseRequestLine splits METHOD SP URI SP VERSION on the first two
// spaces.
func (req *Request) parseRequestLine(line []byte) error {
	n1 := bytes.IndexByte(line, ' ')
	if n1 < 0 {
		return newParseErr("request uri not found", b2s(line))
	}
	rest := line[n1+1:]
	n2 := bytes.IndexByte(rest, ' ')
	if n2 < 0 {
		return newParseErr("request version not found", b2s(line))
	}

	req.SetMethodBytes(line[:n1])
	req.SetRequestURIBytes(rest[:n2])
	req.SetProtocolBytes(rest[n2+1:])
	return nil
}

// parseStatusLine splits VERSION SP CODE SP REASON on the first two
// spaces and validates the code into [100, 999].
func (resp *Response) parseStatusLine(line []byte) error {
	n1 := bytes.IndexByte(line, ' ')
	if n1 < 0 {
		return newParseErr("status code not found", b2s(line))
	}
	rest := line[n1+1:]
	n2 := bytes.IndexByte(rest, ' ')
	if n2 < 0 {
		return newParseErr("reason phrase not found", b2s(line))
	}

	code, err := strconv.Atoi(b2s(rest[:n2]))
	if err != nil || code < 100 || code > 999 {
		return newParseErr("status code out of range", b2s(rest[:n2]))
	}

	resp.statusCode = code
	resp.SetStatusMessageBytes(rest[n2+1:])
	resp.SetProtocolBytes(line[:n1])
	return nil
}
