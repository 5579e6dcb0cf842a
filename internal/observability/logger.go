package observability

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Logger is a thin key-value facade over logrus. Callers pass alternating
// key/value pairs after the message.
type Logger struct {
	l *logrus.Logger
}

func NewLogger(level string) *Logger {

	l := logrus.New()

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	return &Logger{l: l}
}

func (lg *Logger) Debug(msg string, kv ...any) {
	lg.l.WithFields(fields(kv)).Debug(msg)
}

func (lg *Logger) Info(msg string, kv ...any) {
	lg.l.WithFields(fields(kv)).Info(msg)
}

func (lg *Logger) Error(msg string, kv ...any) {
	lg.l.WithFields(fields(kv)).Error(msg)
}

func fields(kv []any) logrus.Fields {

	f := logrus.Fields{}

	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		f[key] = kv[i+1]
	}

	if len(kv)%2 != 0 {
		f["EXTRA"] = kv[len(kv)-1]
	}

	return f
}
