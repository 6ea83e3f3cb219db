package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chainguard-dev/clog"
	"github.com/tracker-tv/github-cifix-bot/internal/git"
	"github.com/tracker-tv/github-cifix-bot/internal/mutate"
	"github.com/tracker-tv/github-cifix-bot/models"
)

const (
	committerName  = "cifix-bot"
	committerEmail = "cifix-bot@users.noreply.github.com"
	remoteName     = "origin"
)

// FixResult describes the outcome of an approved remediation.
type FixResult struct {
	Diagnosis models.Diagnosis
	Changed   bool // the working tree was modified
	Committed bool // a commit was created and pushed
	CommitMsg string
}

type RemediationService interface {
	Apply(ctx context.Context, rc models.RunContext, d models.Diagnosis) (*FixResult, error)
}

type remediationService struct {
	git          git.Runner
	workDir      string
	manifestPath string
}

func NewRemediationService(runner git.Runner, workDir, manifestPath string) RemediationService {
	return &remediationService{
		git:          runner,
		workDir:      workDir,
		manifestPath: manifestPath,
	}
}

// Apply performs the approved file mutation and commits and pushes it.
// Re-running with the fix already in place is a silent no-op: the
// mutation reports no change and the commit/push step is skipped.
func (s *remediationService) Apply(ctx context.Context, rc models.RunContext, d models.Diagnosis) (*FixResult, error) {
	var (
		changed    bool
		targetPath string
		commitMsg  string
		err        error
	)

	switch d.Kind {
	case models.FailureMissingDependency:
		targetPath = s.manifestPath
		commitMsg = fmt.Sprintf("ci-fix: add missing dependency %s", d.Dependency)
		changed, err = s.applyDependencyFix(d.Dependency)
	case models.FailureMissingPath:
		targetPath = d.Path
		commitMsg = fmt.Sprintf("ci-fix: create placeholder file %s", d.Path)
		changed, err = mutate.CreatePlaceholder(s.workDir, d.Path)
	default:
		return nil, fmt.Errorf("diagnosis %q is not remediable", d.Kind)
	}
	if err != nil {
		return nil, err
	}

	result := &FixResult{Diagnosis: d, Changed: changed, CommitMsg: commitMsg}

	log := clog.FromContext(ctx)
	if !changed {
		log.Infof("fix already applied, skipping commit: %s", commitMsg)
		return result, nil
	}

	if rc.Branch == "" {
		return nil, fmt.Errorf("no target branch resolved for push")
	}

	if err := s.git.ConfigureIdentity(ctx, committerName, committerEmail); err != nil {
		return nil, fmt.Errorf("configuring committer identity: %w", err)
	}

	if err := s.git.Add(ctx, targetPath); err != nil {
		return nil, fmt.Errorf("staging %s: %w", targetPath, err)
	}

	clean, err := s.git.IsClean(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking working tree: %w", err)
	}
	if clean {
		log.Infof("working tree clean, nothing to commit")
		return result, nil
	}

	if err := s.git.Commit(ctx, commitMsg); err != nil {
		return nil, fmt.Errorf("committing fix: %w", err)
	}
	if err := s.git.Push(ctx, remoteName, rc.Branch); err != nil {
		return nil, fmt.Errorf("pushing to %s: %w", rc.Branch, err)
	}

	result.Committed = true
	log.Infof("pushed fix to %s: %s", rc.Branch, commitMsg)
	return result, nil
}

func (s *remediationService) applyDependencyFix(name string) (bool, error) {
	path := filepath.Join(s.workDir, s.manifestPath)

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading manifest: %w", err)
	}

	updated := mutate.AddDependency(string(data), name)
	if updated == string(data) {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return false, fmt.Errorf("writing manifest: %w", err)
	}
	return true, nil
}
