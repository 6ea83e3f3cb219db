package github

import (
	"context"
	"errors"
	"testing"

	gh "github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	githubMocks "github.com/tracker-tv/github-cifix-bot/internal/github/mocks"
)

func TestGetPullRequest(t *testing.T) {
	ctx := context.Background()

	prSvc := githubMocks.NewMockPullRequestsAdapter(t)

	prSvc.
		EXPECT().
		Get(mock.Anything, "tracker-tv", "my-repo", 7).
		Once().
		Return(&gh.PullRequest{
			Number: gh.Ptr(7),
			Head: &gh.PullRequestBranch{
				SHA: gh.Ptr("sha-123"),
				Ref: gh.Ptr("feature/thing"),
			},
		}, &gh.Response{}, nil)

	c := &client{pullRequests: prSvc, owner: "tracker-tv", repo: "my-repo"}

	pr, err := c.GetPullRequest(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, "sha-123", pr.GetHead().GetSHA())
	assert.Equal(t, "feature/thing", pr.GetHead().GetRef())
}

func TestGetPullRequest_Error(t *testing.T) {
	ctx := context.Background()

	prSvc := githubMocks.NewMockPullRequestsAdapter(t)

	prSvc.
		EXPECT().
		Get(mock.Anything, "tracker-tv", "my-repo", 7).
		Once().
		Return(nil, nil, errors.New("not found"))

	c := &client{pullRequests: prSvc, owner: "tracker-tv", repo: "my-repo"}

	pr, err := c.GetPullRequest(ctx, 7)

	assert.Error(t, err)
	assert.Nil(t, pr)
}
