package models

type FailureKind string

const (
	FailureMissingDependency FailureKind = "missing_dependency"
	FailureMissingPath       FailureKind = "missing_path"
	FailureUnknown           FailureKind = "unknown"
)

// Diagnosis is the classifier's verdict for one CI run. Exactly one
// payload field is populated, matching Kind.
type Diagnosis struct {
	Kind       FailureKind
	Dependency string // set when Kind == FailureMissingDependency
	Path       string // set when Kind == FailureMissingPath
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
)

// ImpactAssessment decorates the human-facing report. It never gates the
// remediation decision.
type ImpactAssessment struct {
	Risk RiskLevel
	Note string
}
