package logsink

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

var levelColors = map[Level]*color.Color{
	LevelError:   color.New(color.FgRed, color.Bold),
	LevelWarning: color.New(color.FgYellow),
	LevelInfo:    color.New(color.FgCyan),
	LevelDebug:   color.New(color.FgHiBlack),
}

// Console emits human-oriented lines with an optionally colored level tag.
// Used by the CLI; library code should not assume a terminal.
type Console struct {
	mu        sync.Mutex
	w         io.Writer
	threshold Level
	colored   bool
}

// NewConsole returns a Console sink writing to w. When colored is false the
// level tag is plain text.
func NewConsole(w io.Writer, threshold Level, colored bool) *Console {
	return &Console{w: w, threshold: threshold, colored: colored}
}

func (s *Console) Enabled(level Level) bool {
	return level <= s.threshold
}

func (s *Console) Emit(level Level, msg string) {
	if !s.Enabled(level) {
		return
	}
	tag := fmt.Sprintf("[%s]", level)
	if s.colored {
		if c, ok := levelColors[level]; ok {
			tag = c.Sprint(tag)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s %s\n", tag, msg)
}
