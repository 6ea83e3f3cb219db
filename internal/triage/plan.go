package triage

import "github.com/tracker-tv/github-cifix-bot/models"

// Plan decides how to respond to a diagnosis. Mutation requires the
// matching approval flag; each flag gates its own category only. The
// decision is terminal for this invocation: the propose/approve/apply
// flow spans separate runs, re-triggered by the human approval command.
func Plan(d models.Diagnosis, excerpt string, approvals models.ApprovalState) models.RemediationAction {
	switch d.Kind {
	case models.FailureMissingDependency:
		if approvals.DependencyFix {
			return models.RemediationAction{Kind: models.ActionApply, Diagnosis: d}
		}
		return models.RemediationAction{Kind: models.ActionProposeOnly, Diagnosis: d, Excerpt: excerpt}
	case models.FailureMissingPath:
		if approvals.PathFix {
			return models.RemediationAction{Kind: models.ActionApply, Diagnosis: d}
		}
		return models.RemediationAction{Kind: models.ActionProposeOnly, Diagnosis: d, Excerpt: excerpt}
	default:
		return models.RemediationAction{Kind: models.ActionReportUnclassified, Diagnosis: d, Excerpt: excerpt}
	}
}
