package triage

import (
	"strings"

	"github.com/tracker-tv/github-cifix-bot/models"
)

// Log markers recognized by the classifier, in priority order.
const (
	dependencyMarker = "No module named "
	pathMarker       = "No such file or directory"
)

// Classify inspects raw CI log text and returns a typed diagnosis.
// Pure function of the log text; the dependency pattern wins when both
// markers appear.
func Classify(logs string) models.Diagnosis {
	if name := quotedToken(logs, dependencyMarker); name != "" {
		return models.Diagnosis{Kind: models.FailureMissingDependency, Dependency: name}
	}
	if path := quotedToken(logs, pathMarker+": "); path != "" {
		return models.Diagnosis{Kind: models.FailureMissingPath, Path: path}
	}
	return models.Diagnosis{Kind: models.FailureUnknown}
}

// quotedToken extracts the quoted token following the first occurrence of
// marker. The token stops at the first matching closing quote so trailing
// log noise is never swallowed. Returns "" when the marker is absent or
// the token is empty after trimming.
func quotedToken(logs, marker string) string {
	i := strings.Index(logs, marker)
	if i < 0 {
		return ""
	}

	rest := logs[i+len(marker):]
	if rest == "" {
		return ""
	}

	quote := rest[0]
	if quote != '\'' && quote != '"' {
		return ""
	}

	rest = rest[1:]
	end := strings.IndexByte(rest, quote)
	if end < 0 {
		return ""
	}

	return strings.TrimSpace(rest[:end])
}
