package models

type ActionKind string

const (
	ActionProposeOnly        ActionKind = "propose"
	ActionApply              ActionKind = "apply"
	ActionReportUnclassified ActionKind = "report_unclassified"
)

// RemediationAction is the planner's terminal decision for one
// invocation. Excerpt is carried for the report-only outcomes; an
// approved apply rebuilds its confirmation from the fix result instead.
type RemediationAction struct {
	Kind      ActionKind
	Diagnosis Diagnosis
	Excerpt   string
}

// ApprovalState carries the two human approval flags. Each gates one
// remediation category; neither implies the other.
type ApprovalState struct {
	DependencyFix bool
	PathFix       bool
}
