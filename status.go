package httpmsg

import (
	"strconv"

	pool "github.com/newacorn/simple-bytes-pool"
	"github.com/puzpuzpuz/xsync/v3"
)

// Status codes with canned reason phrases and error pages.
const (
	StatusMultipleChoices   = 300
	StatusMovedPermanently  = 301
	StatusFound             = 302
	StatusSeeOther          = 303
	StatusTemporaryRedirect = 307

	StatusBadRequest           = 400
	StatusUnauthorized         = 401
	StatusPaymentRequired      = 402
	StatusForbidden            = 403
	StatusNotFound             = 404
	StatusMethodNotAllowed     = 405
	StatusNotAcceptable        = 406
	StatusRequestTimeout       = 408
	StatusConflict             = 409
	StatusGone                 = 410
	StatusLengthRequired       = 411
	StatusPayloadTooLarge      = 413
	StatusURITooLong           = 414
	StatusUnsupportedMediaType = 415
	StatusExpectationFailed    = 417
	StatusUpgradeRequired      = 426

	StatusInternalServerError     = 500
	StatusNotImplemented          = 501
	StatusServiceUnavailable      = 503
	StatusHTTPVersionNotSupported = 505
)

// StatusMessage returns the canonical reason phrase for code, or a
// generated "HTTP error code N" phrase for codes outside the table.
func StatusMessage(code int) string {
	switch code {
	case StatusMultipleChoices:
		return "Multiple Choices"
	case StatusMovedPermanently:
		return "Moved Permanently"
	case StatusFound:
		return "Found"
	case StatusSeeOther:
		return "See Other"
	case StatusTemporaryRedirect:
		return "Temporary Redirect"
	case StatusBadRequest:
		return "Bad Request"
	case StatusUnauthorized:
		return "Unauthorized"
	case StatusPaymentRequired:
		return "Payment Required"
	case StatusForbidden:
		return "Forbidden"
	case StatusNotFound:
		return "Not Found"
	case StatusMethodNotAllowed:
		return "Method Not Allowed"
	case StatusNotAcceptable:
		return "Not Acceptable"
	case StatusRequestTimeout:
		return "Request Timeout"
	case StatusConflict:
		return "Conflict"
	case StatusGone:
		return "Gone"
	case StatusLengthRequired:
		return "Length Required"
	case StatusPayloadTooLarge:
		return "Payload Too Large"
	case StatusURITooLong:
		return "URI Too Long"
	case StatusUnsupportedMediaType:
		return "Unsupported Media Type"
	case StatusExpectationFailed:
		return "Expectation Failed"
	case StatusUpgradeRequired:
		return "Upgrade Required"
	case StatusInternalServerError:
		return "Internal Server Error"
	case StatusNotImplemented:
		return "Not Implemented"
	case StatusServiceUnavailable:
		return "Service Unavailable"
	case StatusHTTPVersionNotSupported:
		return "HTTP version not supported"
	}
	return "HTTP error code " + strconv.Itoa(code)
}

// Error pages are immutable per code, so render once and share. The map
// is concurrent because error responses are built from many connections
// at once.
var errorBodyCache = xsync.NewMapOf[int, []byte]()

func errorBody(code int, message string) []byte {
	if body, ok := errorBodyCache.Load(code); ok {
		return body
	}

	pb := pool.Get(1024)
	b := pb.B[:0]
	b = append(b, "<head><title>"...)
	b = strconv.AppendInt(b, int64(code), 10)
	b = append(b, ' ')
	b = append(b, message...)
	b = append(b, "</title></head>"...)
	b = append(b, `<body><p/><h1 align="center">`...)
	b = append(b, `<span style="font-size: 36px; border-radius: 5px; `...)
	b = append(b, `background-color: black; color: white; padding: 7px; `...)
	b = append(b, `font-family: Arial, sans serif;">`...)
	b = strconv.AppendInt(b, int64(code), 10)
	b = append(b, `</span></h1><p align="center">`...)
	b = append(b, `<span style="font-size: 24px; font-family: Arial, sans serif;">`...)
	b = append(b, message...)
	b = append(b, `</span></p></body>`...)

	body := append([]byte(nil), b...)
	pb.RecycleToPool00()

	actual, _ := errorBodyCache.LoadOrStore(code, body)
	return actual
}

// NewResponseError builds a ready-to-serialize Response for code: status
// and reason from the canned table, a minimal self-contained HTML error
// page as the body, Content-Type: text/html; charset=UTF-8 and version
// HTTP/1.1.
//
// Redirect responses need a Location header, 405 an Allow header and 426
// an Upgrade header; callers add those themselves afterwards. The
// returned Response may be handed back via ReleaseResponse.
func NewResponseError(code int) *Response {
	resp := AcquireResponse()
	message := StatusMessage(code)
	resp.SetStatus(code, message)
	_ = resp.SetBody(errorBody(code, message))
	resp.SetProtocolBytes(strHTTP11)
	resp.Header.SetBytes(strContentType, strTextHTMLCharset)
	return resp
}
