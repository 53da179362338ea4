package httpmsg

import "github.com/rs/zerolog"

func init() {
	zerolog.CallerFieldName = "C"
	zerolog.MessageFieldName = "M"
	zerolog.LevelFieldName = "L"
	zerolog.ErrorFieldName = "E"
	zerolog.TimestampFieldName = "T"
	zerolog.ErrorStackFieldName = "S"
}

// debugLogger traces parse rejections. The package stays silent unless a
// caller installs a logger; errors are still returned, never swallowed.
var debugLogger = zerolog.Nop()

// SetDebugLogger installs a logger for parse tracing. Pass zerolog.Nop()
// to silence it again.
func SetDebugLogger(l zerolog.Logger) {
	debugLogger = l
}
