package triage

import "github.com/tracker-tv/github-cifix-bot/models"

// Packages that routinely arrive as transitive dependencies. Pinning one
// of these explicitly may be redundant or may perturb resolution.
var commonTransitive = map[string]struct{}{
	"numpy":      {},
	"pandas":     {},
	"six":        {},
	"setuptools": {},
	"wheel":      {},
}

// Assess assigns a qualitative risk label to a dependency name. Advisory
// only: the result decorates the report and never gates remediation.
func Assess(name string) models.ImpactAssessment {
	if _, ok := commonTransitive[name]; ok {
		return models.ImpactAssessment{
			Risk: models.RiskMedium,
			Note: "This package is commonly transitive and may already be present via another dependency. Pinning it explicitly may be redundant or may affect the dependency graph.",
		}
	}
	return models.ImpactAssessment{
		Risk: models.RiskLow,
		Note: "Appears to be a direct dependency.",
	}
}
