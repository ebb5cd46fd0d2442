package logsink

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "WARNING", LevelWarning.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]Level{
		"error":   LevelError,
		"warning": LevelWarning,
		"warn":    LevelWarning,
		"info":    LevelInfo,
		"debug":   LevelDebug,
	} {
		got, err := ParseLevel(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNopDiscardsEverything(t *testing.T) {
	var s Nop
	assert.False(t, s.Enabled(LevelError))
	s.Emit(LevelError, "dropped")
}

func TestWriterEmitsTimestampedLines(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf, LevelInfo)
	s.now = func() time.Time {
		return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	}

	s.Emit(LevelError, "boom")
	assert.Equal(t, "[ERROR] 2026-01-02T03:04:05Z boom\n", buf.String())
}

func TestWriterGatesByThreshold(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriter(&buf, LevelWarning)

	assert.True(t, s.Enabled(LevelError))
	assert.True(t, s.Enabled(LevelWarning))
	assert.False(t, s.Enabled(LevelInfo))
	assert.False(t, s.Enabled(LevelDebug))

	s.Emit(LevelDebug, "hidden")
	assert.Empty(t, buf.String())
}

func TestConsolePlain(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsole(&buf, LevelDebug, false)

	s.Emit(LevelWarning, "careful")
	assert.Equal(t, "[WARNING] careful\n", buf.String())
}

func TestConsoleGated(t *testing.T) {
	var buf bytes.Buffer
	s := NewConsole(&buf, LevelError, false)
	s.Emit(LevelInfo, "hidden")
	assert.Empty(t, buf.String())
}

func TestSlogMapsLevels(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewSlog(l, LevelDebug)

	s.Emit(LevelError, "boom")
	s.Emit(LevelWarning, "careful")
	s.Emit(LevelInfo, "fyi")
	s.Emit(LevelDebug, "trace")

	out := buf.String()
	assert.Contains(t, out, "level=ERROR msg=boom")
	assert.Contains(t, out, "level=WARN msg=careful")
	assert.Contains(t, out, "level=INFO msg=fyi")
	assert.Contains(t, out, "level=DEBUG msg=trace")
}

func TestSlogGated(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewSlog(l, LevelWarning)

	s.Emit(LevelDebug, "hidden")
	assert.Empty(t, buf.String())
}

func TestMultiFansOut(t *testing.T) {
	var a, b bytes.Buffer
	m := Multi{NewConsole(&a, LevelDebug, false), NewConsole(&b, LevelError, false)}

	assert.True(t, m.Enabled(LevelDebug))

	m.Emit(LevelInfo, "hello")
	assert.Equal(t, "[INFO] hello\n", a.String())
	assert.Empty(t, b.String(), "second sink's own threshold still applies")

	empty := Multi{}
	assert.False(t, empty.Enabled(LevelError))
}

func TestFormatHexGrouping(t *testing.T) {
	assert.Equal(t, "", FormatHex(nil))
	assert.Equal(t, "AB ", FormatHex([]byte{0xAB}))

	eight := FormatHex([]byte{0, 1, 2, 3, 4, 5, 6, 7})
	assert.Equal(t, "00 01 02 03 04 05 06 07  ", eight)

	var data []byte
	for i := 0; i < 17; i++ {
		data = append(data, byte(i))
	}
	want := "00 01 02 03 04 05 06 07  08 09 0A 0B 0C 0D 0E 0F \n10 "
	assert.Equal(t, want, FormatHex(data))

	lines := strings.Split(FormatHex(make([]byte, 32)), "\n")
	require.Len(t, lines, 3)
	assert.Empty(t, lines[2], "32 bytes end exactly on a line break")
}
