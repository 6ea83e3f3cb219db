package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) GetPullRequest(ctx context.Context, number int) (*gh.PullRequest, error) {
	pr, _, err := c.pullRequests.Get(ctx, c.owner, c.repo, number)
	return pr, err
}
