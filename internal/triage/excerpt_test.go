package triage

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func manyLines(n int, prefix string) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("%s line %d", prefix, i)
	}
	return lines
}

func TestExtract_NoMarkerTakesHead(t *testing.T) {
	logs := strings.Join(manyLines(100, "noise"), "\n")

	out := Extract(logs, 30, DefaultMaxChars)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 30)
	assert.Equal(t, "noise line 0", lines[0])
	assert.Equal(t, "noise line 29", lines[29])
}

func TestExtract_WindowCentersOnMarker(t *testing.T) {
	lines := manyLines(100, "noise")
	lines[50] = "ModuleNotFoundError: No module named 'requests'"
	logs := strings.Join(lines, "\n")

	out := Extract(logs, 30, DefaultMaxChars)

	assert.Contains(t, out, "No module named 'requests'")
	assert.Contains(t, out, "noise line 40")
	assert.Contains(t, out, "noise line 59")
	assert.NotContains(t, out, "noise line 39")
	assert.NotContains(t, out, "noise line 60")
}

func TestExtract_MarkerNearStart(t *testing.T) {
	lines := manyLines(100, "noise")
	lines[2] = "FileNotFoundError: No such file or directory: 'x.json'"
	logs := strings.Join(lines, "\n")

	out := Extract(logs, 30, DefaultMaxChars)

	assert.Contains(t, out, "noise line 0")
	assert.Contains(t, out, "No such file or directory")
	assert.Contains(t, out, "noise line 11")
	assert.NotContains(t, out, "noise line 12")
}

func TestExtract_DependencyMarkerPriority(t *testing.T) {
	lines := manyLines(100, "noise")
	lines[20] = "No such file or directory: 'x.json'"
	lines[80] = "No module named 'requests'"
	logs := strings.Join(lines, "\n")

	out := Extract(logs, 30, DefaultMaxChars)

	assert.Contains(t, out, "No module named 'requests'")
	assert.NotContains(t, out, "No such file or directory")
}

func TestExtract_NeverExceedsMaxChars(t *testing.T) {
	logs := strings.Repeat("a very long noisy log line with lots of text\n", 200)

	out := Extract(logs, 30, 500)

	assert.LessOrEqual(t, len(out), 500)
	assert.True(t, strings.HasSuffix(out, TruncationMarker))
}

func TestExtract_ShortLogsUntouched(t *testing.T) {
	logs := "  one\ntwo\nthree  "

	out := Extract(logs, 30, DefaultMaxChars)

	assert.Equal(t, "one\ntwo\nthree", out)
}

func TestExtract_EmptyLogs(t *testing.T) {
	assert.Empty(t, Extract("", 30, DefaultMaxChars))
}
