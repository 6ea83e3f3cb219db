package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	githubMocks "github.com/tracker-tv/github-cifix-bot/internal/github/mocks"
)

func TestListWorkflowRunsByHeadSHA_Pagination(t *testing.T) {
	ctx := context.Background()

	actionsSvc := githubMocks.NewMockActionsAdapter(t)

	// Page 1
	actionsSvc.
		EXPECT().
		ListRepositoryWorkflowRuns(mock.Anything, "tracker-tv", "my-repo",
			mock.MatchedBy(func(o *gh.ListWorkflowRunsOptions) bool {
				return o.Page == 0 && o.HeadSHA == "sha-123"
			}),
		).
		Once().
		Return(
			&gh.WorkflowRuns{
				WorkflowRuns: []*gh.WorkflowRun{
					{ID: gh.Ptr(int64(1)), Name: gh.Ptr("CI")},
					{ID: gh.Ptr(int64(2)), Name: gh.Ptr("lint")},
				},
			},
			&gh.Response{NextPage: 2},
			nil,
		)

	// Page 2
	actionsSvc.
		EXPECT().
		ListRepositoryWorkflowRuns(mock.Anything, "tracker-tv", "my-repo",
			mock.MatchedBy(func(o *gh.ListWorkflowRunsOptions) bool {
				return o.Page == 2
			}),
		).
		Once().
		Return(
			&gh.WorkflowRuns{
				WorkflowRuns: []*gh.WorkflowRun{
					{ID: gh.Ptr(int64(3)), Name: gh.Ptr("release")},
				},
			},
			&gh.Response{NextPage: 0},
			nil,
		)

	c := &client{actions: actionsSvc, owner: "tracker-tv", repo: "my-repo"}

	runs, err := c.ListWorkflowRunsByHeadSHA(ctx, "sha-123")

	assert.NoError(t, err)
	assert.Len(t, runs, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{
		runs[0].GetID(),
		runs[1].GetID(),
		runs[2].GetID(),
	})
}

func TestListWorkflowRunsByHeadSHA_NonRateLimitError(t *testing.T) {
	ctx := context.Background()

	actionsSvc := githubMocks.NewMockActionsAdapter(t)

	actionsSvc.
		EXPECT().
		ListRepositoryWorkflowRuns(mock.Anything, "tracker-tv", "my-repo", mock.Anything).
		Once().
		Return(nil, nil, errors.New("boom"))

	c := &client{actions: actionsSvc, owner: "tracker-tv", repo: "my-repo"}

	runs, err := c.ListWorkflowRunsByHeadSHA(ctx, "sha-123")

	assert.Error(t, err)
	assert.Nil(t, runs)
}

func TestListWorkflowRunsByHeadSHA_RateLimitRetry(t *testing.T) {
	ctx := context.Background()

	actionsSvc := githubMocks.NewMockActionsAdapter(t)

	rateLimited := &gh.RateLimitError{
		Rate: gh.Rate{Reset: gh.Timestamp{Time: time.Now().Add(-time.Second)}},
	}

	actionsSvc.
		EXPECT().
		ListRepositoryWorkflowRuns(mock.Anything, "tracker-tv", "my-repo", mock.Anything).
		Once().
		Return(nil, nil, rateLimited)

	actionsSvc.
		EXPECT().
		ListRepositoryWorkflowRuns(mock.Anything, "tracker-tv", "my-repo", mock.Anything).
		Once().
		Return(
			&gh.WorkflowRuns{
				WorkflowRuns: []*gh.WorkflowRun{
					{ID: gh.Ptr(int64(1))},
				},
			},
			&gh.Response{NextPage: 0},
			nil,
		)

	c := &client{actions: actionsSvc, owner: "tracker-tv", repo: "my-repo"}

	runs, err := c.ListWorkflowRunsByHeadSHA(ctx, "sha-123")

	assert.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestGetWorkflowRun(t *testing.T) {
	ctx := context.Background()

	actionsSvc := githubMocks.NewMockActionsAdapter(t)

	actionsSvc.
		EXPECT().
		GetWorkflowRunByID(mock.Anything, "tracker-tv", "my-repo", int64(42)).
		Once().
		Return(&gh.WorkflowRun{ID: gh.Ptr(int64(42)), HeadSHA: gh.Ptr("sha-123")}, &gh.Response{}, nil)

	c := &client{actions: actionsSvc, owner: "tracker-tv", repo: "my-repo"}

	run, err := c.GetWorkflowRun(ctx, 42)

	assert.NoError(t, err)
	assert.Equal(t, "sha-123", run.GetHeadSHA())
}

func TestDownloadRunLogs(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("zip-bytes"))
	}))
	defer server.Close()

	logsURL, err := url.Parse(server.URL)
	assert.NoError(t, err)

	actionsSvc := githubMocks.NewMockActionsAdapter(t)

	actionsSvc.
		EXPECT().
		GetWorkflowRunLogs(mock.Anything, "tracker-tv", "my-repo", int64(42), 1).
		Once().
		Return(logsURL, &gh.Response{}, nil)

	c := &client{actions: actionsSvc, owner: "tracker-tv", repo: "my-repo", httpClient: http.DefaultClient}

	data, err := c.DownloadRunLogs(ctx, 42)

	assert.NoError(t, err)
	assert.Equal(t, []byte("zip-bytes"), data)
}

func TestDownloadRunLogs_BadStatus(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	logsURL, err := url.Parse(server.URL)
	assert.NoError(t, err)

	actionsSvc := githubMocks.NewMockActionsAdapter(t)

	actionsSvc.
		EXPECT().
		GetWorkflowRunLogs(mock.Anything, "tracker-tv", "my-repo", int64(42), 1).
		Once().
		Return(logsURL, &gh.Response{}, nil)

	c := &client{actions: actionsSvc, owner: "tracker-tv", repo: "my-repo", httpClient: http.DefaultClient}

	data, err := c.DownloadRunLogs(ctx, 42)

	assert.Error(t, err)
	assert.Nil(t, data)
	assert.Contains(t, err.Error(), "unexpected status code")
}

func TestDownloadRunLogs_RedirectError(t *testing.T) {
	ctx := context.Background()

	actionsSvc := githubMocks.NewMockActionsAdapter(t)

	actionsSvc.
		EXPECT().
		GetWorkflowRunLogs(mock.Anything, "tracker-tv", "my-repo", int64(42), 1).
		Once().
		Return(nil, nil, errors.New("410 gone"))

	c := &client{actions: actionsSvc, owner: "tracker-tv", repo: "my-repo", httpClient: http.DefaultClient}

	data, err := c.DownloadRunLogs(ctx, 42)

	assert.Error(t, err)
	assert.Nil(t, data)
}
