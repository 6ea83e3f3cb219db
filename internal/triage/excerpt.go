package triage

import "strings"

const (
	DefaultMaxLines = 30
	DefaultMaxChars = 1800

	// TruncationMarker terminates an excerpt that was cut at maxChars.
	TruncationMarker = "... [truncated]"

	contextLines = 10
)

// Extract returns a bounded window of the logs centered on the first
// recognized failure marker, small enough to embed in a PR comment. When
// no marker is present the window is the first maxLines lines.
func Extract(logs string, maxLines, maxChars int) string {
	lines := strings.Split(logs, "\n")

	window := lines
	if len(window) > maxLines {
		window = window[:maxLines]
	}

	for _, marker := range []string{dependencyMarker, pathMarker} {
		if i := markerLine(lines, marker); i >= 0 {
			lo := i - contextLines
			if lo < 0 {
				lo = 0
			}
			hi := i + contextLines
			if hi > len(lines) {
				hi = len(lines)
			}
			window = lines[lo:hi]
			break
		}
	}

	out := strings.TrimSpace(strings.Join(window, "\n"))
	if len(out) > maxChars {
		if maxChars <= len(TruncationMarker) {
			return out[:maxChars]
		}
		out = out[:maxChars-len(TruncationMarker)] + TruncationMarker
	}
	return out
}

func markerLine(lines []string, marker string) int {
	for i, line := range lines {
		if strings.Contains(line, marker) {
			return i
		}
	}
	return -1
}
