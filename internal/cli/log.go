package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation for elapsed-time reporting.
type progress struct {
	start time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress() *progress {
	return &progress{start: time.Now()}
}

// elapsed returns the time since the tracker was created, formatted for
// appending to a status line. Example: " (1.234s)".
func (p *progress) elapsed() string {
	return fmt.Sprintf(" (%s)", time.Since(p.start).Round(time.Millisecond))
}
