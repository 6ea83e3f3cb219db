package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/chainguard-dev/clog"
)

// Runner is the boundary to the git command-line tool. Every call maps
// to one git invocation in the per-invocation checkout; failures are
// fatal and propagated unmodified.
type Runner interface {
	ConfigureIdentity(ctx context.Context, name, email string) error
	IsClean(ctx context.Context) (bool, error)
	Add(ctx context.Context, path string) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context, remote, branch string) error
}

type runner struct {
	workDir string
}

func NewRunner(workDir string) Runner {
	return &runner{workDir: workDir}
}

func (r *runner) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	clog.FromContext(ctx).Debugf("running git %s", strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func (r *runner) ConfigureIdentity(ctx context.Context, name, email string) error {
	if _, err := r.run(ctx, "config", "user.name", name); err != nil {
		return err
	}
	_, err := r.run(ctx, "config", "user.email", email)
	return err
}

func (r *runner) IsClean(ctx context.Context) (bool, error) {
	out, err := r.run(ctx, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "", nil
}

func (r *runner) Add(ctx context.Context, path string) error {
	_, err := r.run(ctx, "add", "--", path)
	return err
}

func (r *runner) Commit(ctx context.Context, message string) error {
	_, err := r.run(ctx, "commit", "-m", message)
	return err
}

func (r *runner) Push(ctx context.Context, remote, branch string) error {
	_, err := r.run(ctx, "push", remote, "HEAD:"+branch)
	return err
}
