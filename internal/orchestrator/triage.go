package orchestrator

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
	"github.com/tracker-tv/github-cifix-bot/internal/service"
	"github.com/tracker-tv/github-cifix-bot/internal/triage"
	"github.com/tracker-tv/github-cifix-bot/models"
)

// TriageBot drives one invocation end to end: resolve the failed run,
// fetch its logs, classify, then either propose a fix, apply an
// approved one, or report the failure as unclassified. Each path ends
// in exactly one PR comment.
type TriageBot struct {
	runs        service.RunService
	logs        service.LogService
	remediation service.RemediationService
	reports     service.ReportService
	approvals   models.ApprovalState
}

func NewTriageBot(
	runs service.RunService,
	logs service.LogService,
	remediation service.RemediationService,
	reports service.ReportService,
	approvals models.ApprovalState,
) *TriageBot {
	return &TriageBot{
		runs:        runs,
		logs:        logs,
		remediation: remediation,
		reports:     reports,
		approvals:   approvals,
	}
}

func (b *TriageBot) Run(ctx context.Context) error {
	log := clog.FromContext(ctx)

	rc, err := b.runs.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("resolving run context: %w", err)
	}
	log.Infof("triaging run %d for PR %d (%s/%s)", rc.RunID, rc.PRNumber, rc.Owner, rc.Repo)

	logs, err := b.logs.Fetch(ctx, rc.RunID)
	if err != nil {
		return fmt.Errorf("fetching logs: %w", err)
	}

	diagnosis := triage.Classify(logs)
	excerpt := triage.Extract(logs, triage.DefaultMaxLines, triage.DefaultMaxChars)
	action := triage.Plan(diagnosis, excerpt, b.approvals)

	log.Infof("diagnosis %s, action %s", diagnosis.Kind, action.Kind)

	switch action.Kind {
	case models.ActionProposeOnly:
		return b.propose(ctx, rc, action)

	case models.ActionApply:
		result, err := b.remediation.Apply(ctx, rc, action.Diagnosis)
		if err != nil {
			return fmt.Errorf("applying fix: %w", err)
		}
		if err := b.reports.ConfirmFix(ctx, rc, result); err != nil {
			return fmt.Errorf("posting confirmation: %w", err)
		}
		return nil

	case models.ActionReportUnclassified:
		if err := b.reports.ReportUnclassified(ctx, rc, action.Excerpt); err != nil {
			return fmt.Errorf("posting report: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported action %q", action.Kind)
	}
}

func (b *TriageBot) propose(ctx context.Context, rc models.RunContext, action models.RemediationAction) error {
	var err error
	switch action.Diagnosis.Kind {
	case models.FailureMissingDependency:
		err = b.reports.ProposeDependencyFix(ctx, rc, action.Diagnosis.Dependency, action.Excerpt)
	case models.FailureMissingPath:
		err = b.reports.ProposePathFix(ctx, rc, action.Diagnosis.Path, action.Excerpt)
	default:
		return fmt.Errorf("diagnosis %q has no proposal", action.Diagnosis.Kind)
	}
	if err != nil {
		return fmt.Errorf("posting proposal: %w", err)
	}
	return nil
}
