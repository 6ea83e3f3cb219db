package service

import (
	"context"
	"fmt"

	"github.com/tracker-tv/github-cifix-bot/internal/github"
	"github.com/tracker-tv/github-cifix-bot/internal/triage"
	"github.com/tracker-tv/github-cifix-bot/models"
)

const reportHeader = "### CI triage report"

// Approval commands surfaced in proposal comments. The workflow that
// re-triggers the bot parses these strings, so they are the single
// source of truth.
const (
	ApproveDependencyCommand = "/ci-fix approve-dependency"
	ApprovePathCommand       = "/ci-fix approve-path"
)

// ReportService posts the invocation's single report comment. Every
// terminal outcome except a configuration or upstream error produces
// exactly one comment.
type ReportService interface {
	ProposeDependencyFix(ctx context.Context, rc models.RunContext, name, excerpt string) error
	ProposePathFix(ctx context.Context, rc models.RunContext, path, excerpt string) error
	ConfirmFix(ctx context.Context, rc models.RunContext, result *FixResult) error
	ReportUnclassified(ctx context.Context, rc models.RunContext, excerpt string) error
}

type reportService struct {
	gh           github.Client
	manifestPath string
}

func NewReportService(ghClient github.Client, manifestPath string) ReportService {
	return &reportService{gh: ghClient, manifestPath: manifestPath}
}

func (s *reportService) ProposeDependencyFix(ctx context.Context, rc models.RunContext, name, excerpt string) error {
	impact := triage.Assess(name)
	body := buildDependencyProposal(name, s.manifestPath, impact, excerpt)
	return s.post(ctx, rc, body)
}

func (s *reportService) ProposePathFix(ctx context.Context, rc models.RunContext, path, excerpt string) error {
	return s.post(ctx, rc, buildPathProposal(path, excerpt))
}

func (s *reportService) ConfirmFix(ctx context.Context, rc models.RunContext, result *FixResult) error {
	return s.post(ctx, rc, buildConfirmation(s.manifestPath, rc.Branch, result))
}

func (s *reportService) ReportUnclassified(ctx context.Context, rc models.RunContext, excerpt string) error {
	return s.post(ctx, rc, buildUnclassified(excerpt))
}

func (s *reportService) post(ctx context.Context, rc models.RunContext, body string) error {
	if err := s.gh.CreateIssueComment(ctx, rc.PRNumber, body); err != nil {
		return fmt.Errorf("posting comment on PR %d: %w", rc.PRNumber, err)
	}
	return nil
}

func buildDependencyProposal(name, manifestPath string, impact models.ImpactAssessment, excerpt string) string {
	return fmt.Sprintf(`%s

**Failure type:** missing dependency

Module `+"`%s`"+` is imported but not declared in `+"`%s`"+`. This often passes
locally through cached or transitive dependencies and fails in a clean CI
environment.

**Proposed fix (not applied):** add `+"`%s`"+` to `+"`%s`"+`.

**Dependency impact:** %s. %s

Comment `+"`%s`"+` to authorize this change.

%s`,
		reportHeader, name, manifestPath, name, manifestPath,
		impact.Risk, impact.Note, ApproveDependencyCommand, excerptBlock(excerpt))
}

func buildPathProposal(path, excerpt string) string {
	return fmt.Sprintf(`%s

**Failure type:** missing file path

The path `+"`%s`"+` is expected at runtime but does not exist in the CI
checkout. This commonly comes from relative paths or files excluded from
version control.

**Proposed fix (not applied):** create an empty placeholder file at `+"`%s`"+`.

Comment `+"`%s`"+` to authorize this change.

%s`,
		reportHeader, path, path, ApprovePathCommand, excerptBlock(excerpt))
}

func buildConfirmation(manifestPath, branch string, result *FixResult) string {
	var fixed string
	switch result.Diagnosis.Kind {
	case models.FailureMissingDependency:
		fixed = fmt.Sprintf("added `%s` to `%s`", result.Diagnosis.Dependency, manifestPath)
	case models.FailureMissingPath:
		fixed = fmt.Sprintf("created placeholder file `%s`", result.Diagnosis.Path)
	}

	outcome := fmt.Sprintf("A commit was pushed to `%s`.", branch)
	if !result.Committed {
		outcome = "The fix was already in place; no new commit was needed."
	}

	return fmt.Sprintf(`%s

**Fix applied:** %s.

%s`, reportHeader, fixed, outcome)
}

func buildUnclassified(excerpt string) string {
	return fmt.Sprintf(`%s

No known fix rule matched this failure. Manual inspection required.

%s`, reportHeader, excerptBlock(excerpt))
}

func excerptBlock(excerpt string) string {
	return fmt.Sprintf("<details>\n<summary>Log excerpt</summary>\n\n```\n%s\n```\n\n</details>", excerpt)
}
