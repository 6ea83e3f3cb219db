package service

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"
	"github.com/tracker-tv/github-cifix-bot/internal/github"
	"github.com/tracker-tv/github-cifix-bot/models"
)

// ciWorkflowName is preferred when several failed runs share the PR's
// head commit.
const ciWorkflowName = "CI"

const conclusionFailure = "failure"

type RunService interface {
	Resolve(ctx context.Context) (models.RunContext, error)
}

type runService struct {
	gh   github.Client
	seed models.RunContext
}

// NewRunService builds a resolver for the partially-filled seed context:
// owner/repo always set, plus at least one of run id or PR number.
func NewRunService(ghClient github.Client, seed models.RunContext) RunService {
	return &runService{gh: ghClient, seed: seed}
}

// Resolve completes the run context: a run id is resolved to its pull
// request, a pull request to its most relevant failed run. The result is
// read-only for the rest of the invocation.
func (s *runService) Resolve(ctx context.Context) (models.RunContext, error) {
	rc := s.seed

	switch {
	case rc.RunID != 0:
		run, err := s.gh.GetWorkflowRun(ctx, rc.RunID)
		if err != nil {
			return models.RunContext{}, fmt.Errorf("getting workflow run %d: %w", rc.RunID, err)
		}
		rc.HeadSHA = run.GetHeadSHA()
		if rc.Branch == "" {
			rc.Branch = run.GetHeadBranch()
		}
		if rc.PRNumber == 0 {
			if len(run.PullRequests) == 0 {
				return models.RunContext{}, fmt.Errorf("workflow run %d has no associated pull request", rc.RunID)
			}
			rc.PRNumber = run.PullRequests[0].GetNumber()
		}

	case rc.PRNumber != 0:
		pr, err := s.gh.GetPullRequest(ctx, rc.PRNumber)
		if err != nil {
			return models.RunContext{}, fmt.Errorf("getting pull request %d: %w", rc.PRNumber, err)
		}
		rc.HeadSHA = pr.GetHead().GetSHA()
		if rc.Branch == "" {
			rc.Branch = pr.GetHead().GetRef()
		}

		run, err := s.failedRunForHead(ctx, rc.HeadSHA)
		if err != nil {
			return models.RunContext{}, err
		}
		rc.RunID = run.GetID()

	default:
		return models.RunContext{}, fmt.Errorf("neither run id nor pull request number configured")
	}

	return rc, nil
}

// failedRunForHead picks the failed run for a head commit: the first
// failed run named for the CI workflow wins, else the first failed run
// in platform-returned order.
func (s *runService) failedRunForHead(ctx context.Context, headSHA string) (*gh.WorkflowRun, error) {
	runs, err := s.gh.ListWorkflowRunsByHeadSHA(ctx, headSHA)
	if err != nil {
		return nil, fmt.Errorf("listing workflow runs for %s: %w", headSHA, err)
	}

	var fallback *gh.WorkflowRun
	for _, run := range runs {
		if run.GetConclusion() != conclusionFailure {
			continue
		}
		if run.GetName() == ciWorkflowName {
			return run, nil
		}
		if fallback == nil {
			fallback = run
		}
	}
	if fallback == nil {
		return nil, fmt.Errorf("no failed workflow run found for head commit %s", headSHA)
	}
	return fallback, nil
}
