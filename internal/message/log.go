// Package message holds the narration shown under the map.
package message

import (
	"fmt"

	"go.uber.org/zap"
)

// DefaultCapacity is how many lines the log keeps for display.
const DefaultCapacity = 100

// Log is an append-only narration stream. Only the most recent lines are
// retained for display; every line is also written to the logger.
type Log struct {
	lines    []string
	capacity int
	total    int
	logger   *zap.Logger
}

// NewLog creates a log that keeps up to capacity lines.
// A nil logger discards the mirror output.
func NewLog(capacity int, logger *zap.Logger) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{
		lines:    make([]string, 0, capacity),
		capacity: capacity,
		logger:   logger.With(zap.String("component", "narration")),
	}
}

// Narrate appends a line.
func (l *Log) Narrate(text string) {
	if len(l.lines) == l.capacity {
		copy(l.lines, l.lines[1:])
		l.lines = l.lines[:len(l.lines)-1]
	}
	l.lines = append(l.lines, text)
	l.total++
	l.logger.Info(text, zap.Int("seq", l.total))
}

// Narratef appends a formatted line.
func (l *Log) Narratef(format string, args ...any) {
	l.Narrate(fmt.Sprintf(format, args...))
}

// Tail returns up to n of the most recent lines, oldest first.
func (l *Log) Tail(n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(l.lines) {
		n = len(l.lines)
	}
	out := make([]string, n)
	copy(out, l.lines[len(l.lines)-n:])
	return out
}

// Total returns how many lines were ever narrated.
func (l *Log) Total() int {
	return l.total
}
