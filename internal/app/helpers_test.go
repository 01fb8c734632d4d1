package app

import (
	"bytes"
	"fmt"

	"github.com/agbru/eztimer/internal/logging"
)

// recordingLogger writes "msg key=value" lines for assertions.
type recordingLogger struct {
	buf *bytes.Buffer
}

func (r *recordingLogger) write(msg string, fields []logging.Field) {
	r.buf.WriteString(msg)
	for _, f := range fields {
		fmt.Fprintf(r.buf, " %s=%v", f.Key, f.Value)
	}
	r.buf.WriteByte('\n')
}

func (r *recordingLogger) Info(msg string, fields ...logging.Field)  { r.write(msg, fields) }
func (r *recordingLogger) Debug(msg string, fields ...logging.Field) { r.write(msg, fields) }

func (r *recordingLogger) Error(msg string, err error, fields ...logging.Field) {
	r.write(msg, append(fields, logging.Err(err)))
}

func (r *recordingLogger) Printf(format string, args ...any) { fmt.Fprintf(r.buf, format+"\n", args...) }
func (r *recordingLogger) Println(args ...any)               { fmt.Fprintln(r.buf, args...) }
