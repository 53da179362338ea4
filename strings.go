package httpmsg

const (
	rChar = byte('\r')
	nChar = byte('\n')
)

var (
	strHTTP11          = []byte("HTTP/1.1")
	strCRLF            = []byte("\r\n")
	strColonSpace      = []byte(": ")
	strCommaSpace      = []byte(", ")
	strContentLength   = []byte("Content-Length")
	strContentType     = []byte("Content-Type")
	strTextHTMLCharset = []byte("text/html; charset=UTF-8")
	strUnknownError    = []byte("Unknown Error")
)
