package github

import (
	"context"
	"net/http"
	"net/url"

	gh "github.com/google/go-github/v80/github"
)

type ActionsAdapter interface {
	GetWorkflowRunByID(ctx context.Context, owner, repo string, runID int64) (*gh.WorkflowRun, *gh.Response, error)
	ListRepositoryWorkflowRuns(ctx context.Context, owner, repo string, opts *gh.ListWorkflowRunsOptions) (*gh.WorkflowRuns, *gh.Response, error)
	GetWorkflowRunLogs(ctx context.Context, owner, repo string, runID int64, maxRedirects int) (*url.URL, *gh.Response, error)
}

type PullRequestsAdapter interface {
	Get(ctx context.Context, owner, repo string, number int) (*gh.PullRequest, *gh.Response, error)
}

type IssuesAdapter interface {
	CreateComment(ctx context.Context, owner, repo string, number int, comment *gh.IssueComment) (*gh.IssueComment, *gh.Response, error)
}

type Client interface {
	GetWorkflowRun(ctx context.Context, runID int64) (*gh.WorkflowRun, error)
	ListWorkflowRunsByHeadSHA(ctx context.Context, headSHA string) ([]*gh.WorkflowRun, error)
	DownloadRunLogs(ctx context.Context, runID int64) ([]byte, error)
	GetPullRequest(ctx context.Context, number int) (*gh.PullRequest, error)
	CreateIssueComment(ctx context.Context, number int, body string) error
}

type client struct {
	owner string
	repo  string

	actions      ActionsAdapter
	pullRequests PullRequestsAdapter
	issues       IssuesAdapter

	// Log archives redirect to pre-signed URLs that reject the bearer
	// header, so downloads go through an unauthenticated client.
	httpClient *http.Client
}

type authTransport struct {
	token string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return http.DefaultTransport.RoundTrip(req)
}

func New(token, owner, repo string) Client {
	var httpClient *http.Client
	if token != "" {
		httpClient = &http.Client{
			Transport: &authTransport{
				token: token,
			},
		}
	}
	c := gh.NewClient(httpClient)
	return &client{
		owner:        owner,
		repo:         repo,
		actions:      c.Actions,
		pullRequests: c.PullRequests,
		issues:       c.Issues,
		httpClient:   http.DefaultClient,
	}
}
