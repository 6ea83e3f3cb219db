package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tracker-tv/github-cifix-bot/models"
)

func TestAssess_CommonTransitive(t *testing.T) {
	for _, name := range []string{"numpy", "pandas", "six", "setuptools", "wheel"} {
		a := Assess(name)

		assert.Equal(t, models.RiskMedium, a.Risk, name)
		assert.Contains(t, a.Note, "transitive", name)
	}
}

func TestAssess_DirectDependency(t *testing.T) {
	a := Assess("requests")

	assert.Equal(t, models.RiskLow, a.Risk)
	assert.Contains(t, a.Note, "direct dependency")
}

func TestAssess_Stable(t *testing.T) {
	assert.Equal(t, Assess("pandas"), Assess("pandas"))
	assert.Equal(t, Assess("requests"), Assess("requests"))
}
