package service

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/tracker-tv/github-cifix-bot/internal/github"
)

type LogService interface {
	Fetch(ctx context.Context, runID int64) (string, error)
}

type logService struct {
	gh github.Client
}

func NewLogService(ghClient github.Client) LogService {
	return &logService{gh: ghClient}
}

// Fetch downloads the run's log archive and concatenates the contained
// plain-text files in archive order. Unreadable entries are skipped so a
// single corrupt file cannot sink the whole triage.
func (s *logService) Fetch(ctx context.Context, runID int64) (string, error) {
	raw, err := s.gh.DownloadRunLogs(ctx, runID)
	if err != nil {
		return "", fmt.Errorf("downloading logs for run %d: %w", runID, err)
	}

	archive, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("opening log archive: %w", err)
	}

	log := clog.FromContext(ctx)

	var sb strings.Builder
	for _, f := range archive.File {
		rc, err := f.Open()
		if err != nil {
			log.Warnf("skipping unreadable log file %s: %v", f.Name, err)
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			log.Warnf("skipping unreadable log file %s: %v", f.Name, err)
			continue
		}
		sb.Write(data)
	}

	return sb.String(), nil
}
