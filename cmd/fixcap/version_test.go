package main

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixcap/internal/version"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func runVersionCmd(t *testing.T, hash, date bool) string {
	t.Helper()
	versionShowHash = hash
	versionShowDate = date
	defer func() {
		versionShowHash = false
		versionShowDate = false
	}()

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	require.NoError(t, versionCmd.RunE(versionCmd, nil))
	return ansiSeq.ReplaceAllString(buf.String(), "")
}

func TestVersionCommand(t *testing.T) {
	out := runVersionCmd(t, false, false)
	assert.Equal(t, "fixcap 0.1.0-dev\n", out)
}

func TestVersionCommandUnknownFingerprints(t *testing.T) {
	out := runVersionCmd(t, true, true)
	assert.Contains(t, out, "fixcap 0.1.0-dev\n")
	assert.Contains(t, out, "commit: unknown\n")
	assert.Contains(t, out, "built:  unknown\n")
}

func TestVersionCommandInjectedCommit(t *testing.T) {
	orig := version.GitCommit
	version.GitCommit = "0a1b2c3"
	defer func() { version.GitCommit = orig }()

	out := runVersionCmd(t, true, false)
	assert.Contains(t, out, "commit: 0a1b2c3\n")
	assert.NotContains(t, out, "built:")
}

func TestValueOrUnknown(t *testing.T) {
	assert.Equal(t, "unknown", valueOrUnknown(""))
	assert.Equal(t, "unknown", valueOrUnknown("   "))
	assert.Equal(t, "0a1b2c3", valueOrUnknown(" 0a1b2c3 "))
}
