package trace

import (
	"io"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// NewConsoleLogger builds a timestamped charmbracelet logger writing to w
// (os.Stderr when nil) at the named level ("debug", "info", "warn", "error").
// Unknown levels fall back to info.
func NewConsoleLogger(w io.Writer, level string) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
	})
}

// LogRecorder forwards events to a charmbracelet logger at debug level.
// Invariant violations and weight validation failures go out at error level.
type LogRecorder struct {
	logger *log.Logger
}

// NewLogRecorder wraps l; a nil logger yields the default charmbracelet logger.
func NewLogRecorder(l *log.Logger) *LogRecorder {
	if l == nil {
		l = log.Default()
	}

	return &LogRecorder{logger: l}
}

// Record logs e as key/value pairs.
func (r *LogRecorder) Record(e Event) {
	kv := []interface{}{"run", e.RunID}
	if e.Node != "" {
		kv = append(kv, "node", e.Node)
	}
	if e.Flare >= 0 {
		kv = append(kv, "flare", e.Flare)
	}
	if !math.IsNaN(e.Value) {
		kv = append(kv, "value", e.Value)
	}
	if e.Detail != "" {
		kv = append(kv, "detail", e.Detail)
	}

	switch e.Op {
	case OpInvariant, OpValidation:
		r.logger.Error(e.Op, kv...)
	case OpRunStart, OpRunDone:
		r.logger.Info(e.Op, kv...)
	default:
		r.logger.Debug(e.Op, kv...)
	}
}
