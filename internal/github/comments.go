package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
)

func (c *client) CreateIssueComment(ctx context.Context, number int, body string) error {
	comment := &gh.IssueComment{
		Body: gh.Ptr(body),
	}
	_, _, err := c.issues.CreateComment(ctx, c.owner, c.repo, number, comment)
	return err
}
