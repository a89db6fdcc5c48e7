package log

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/textlearn/textlearn/pkg/errors"
)

// SetupWarnings routes library warnings through a zerolog logger writing to w.
// Warning types implementing zerolog.LogObjectMarshaler are emitted with
// their structured fields; anything else falls back to the plain message.
func SetupWarnings(w io.Writer) {
	zl := zerolog.New(w).With().Timestamp().Logger()
	errors.SetZerologWarnFunc(func(warning error) {
		ev := zl.Warn()
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			ev = ev.EmbedObject(obj)
		}
		ev.Msg(warning.Error())
	})
}
