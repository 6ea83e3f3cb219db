package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) GetWorkflowRun(ctx context.Context, runID int64) (*gh.WorkflowRun, error) {
	run, _, err := c.actions.GetWorkflowRunByID(ctx, c.owner, c.repo, runID)
	return run, err
}

func (c *client) ListWorkflowRunsByHeadSHA(ctx context.Context, headSHA string) ([]*gh.WorkflowRun, error) {
	var allRuns []*gh.WorkflowRun
	opts := &gh.ListWorkflowRunsOptions{
		HeadSHA: headSHA,
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	for {
		runs, resp, err := c.listWorkflowRunsWithRetry(ctx, opts)
		if err != nil {
			return nil, err
		}

		allRuns = append(allRuns, runs.WorkflowRuns...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allRuns, nil
}

func (c *client) listWorkflowRunsWithRetry(ctx context.Context, opts *gh.ListWorkflowRunsOptions) (*gh.WorkflowRuns, *gh.Response, error) {
	maxRetries := 5
	baseDelay := 1 * time.Second

	for attempt := 0; attempt <= maxRetries; attempt++ {
		runs, resp, err := c.actions.ListRepositoryWorkflowRuns(ctx, c.owner, c.repo, opts)

		if err == nil {
			return runs, resp, nil
		}

		var rateLimitErr *gh.RateLimitError
		ok := errors.As(err, &rateLimitErr)
		if !ok {
			return nil, nil, err
		}

		if attempt == maxRetries {
			return nil, nil, fmt.Errorf("max retries reached: %w", err)
		}

		waitDuration := rateLimitErr.Rate.Reset.Sub(time.Now())
		if waitDuration < 0 {
			waitDuration = baseDelay * time.Duration(1<<attempt)
		}

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		}
	}

	return nil, nil, fmt.Errorf("unexpected retry loop exit")
}

// DownloadRunLogs fetches the run's log archive. The API answers with a
// redirect to a short-lived pre-signed URL; the body is a zip archive of
// plain-text log files.
func (c *client) DownloadRunLogs(ctx context.Context, runID int64) ([]byte, error) {
	logsURL, _, err := c.actions.GetWorkflowRunLogs(ctx, c.owner, c.repo, runID, 1)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, logsURL.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
