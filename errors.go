package httpmsg

import (
	"github.com/pkg/errors"
)

// ErrNeedMore is not a failure: the head section is incomplete and the
// caller must retry the parse once more bytes are available. Fields and
// headers parsed so far stay valid and are not re-parsed.
var ErrNeedMore = errors.New("httpmsg: need more data: cannot find trailing lf")

// ErrMalformedInput is the kind every parse rejection unwraps to.
// Supplying more bytes cannot recover it.
var ErrMalformedInput = errors.New("httpmsg: malformed input")

var ErrNoSuchHeader = errors.New("httpmsg: no such header")
var ErrMissingRequestLine = errors.New("httpmsg: request method or uri not set")
var ErrBodyTooLarge = errors.New("httpmsg: body larger than the configured limit")

// ParseErr reports what was rejected and the offending bytes.
type ParseErr struct {
	s string
}

func (e *ParseErr) Error() string { return e.s }

func (e *ParseErr) Unwrap() error { return ErrMalformedInput }

func newParseErr(what, val string) *ParseErr {
	return &ParseErr{s: what + ": " + val}
}

// IsParseErr reports whether err is a malformed-input rejection, as
// opposed to ErrNeedMore or a caller misuse error.
func IsParseErr(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}
