// Package logsink is the diagnostic output collaborator for the containers.
// The core consults a Sink only to report failures and on explicit dump
// requests; every container works unchanged with the sink replaced by Nop.
package logsink

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Sink receives levelled diagnostic text. The sink owns the verbosity
// threshold; callers ask Enabled before formatting expensive output.
type Sink interface {
	Enabled(level Level) bool
	Emit(level Level, msg string)
}

// Nop discards everything.
type Nop struct{}

func (Nop) Enabled(Level) bool { return false }
func (Nop) Emit(Level, string) {}

// Writer emits timestamped lines to an io.Writer. Safe for use from
// multiple goroutines.
type Writer struct {
	mu        sync.Mutex
	w         io.Writer
	threshold Level
	now       func() time.Time
}

// NewWriter returns a Writer sink that emits messages at or below threshold.
func NewWriter(w io.Writer, threshold Level) *Writer {
	return &Writer{w: w, threshold: threshold, now: time.Now}
}

func (s *Writer) Enabled(level Level) bool {
	return level <= s.threshold
}

func (s *Writer) Emit(level Level, msg string) {
	if !s.Enabled(level) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "[%s] %s %s\n", level, s.now().Format(time.RFC3339), msg)
}

// Multi fans a message out to every sink. Enabled when any member is.
type Multi []Sink

func (m Multi) Enabled(level Level) bool {
	for _, s := range m {
		if s.Enabled(level) {
			return true
		}
	}
	return false
}

func (m Multi) Emit(level Level, msg string) {
	for _, s := range m {
		s.Emit(level, msg)
	}
}
