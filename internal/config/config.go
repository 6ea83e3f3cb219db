package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	GithubToken  string `env:"CIFIX_GITHUB_TOKEN,required"`
	Repo         string `env:"CIFIX_REPO,required"` // owner/name
	RunID        int64  `env:"CIFIX_RUN_ID"`
	PRNumber     int    `env:"CIFIX_PR_NUMBER"`
	Branch       string `env:"CIFIX_BRANCH"`
	ManifestPath string `env:"CIFIX_MANIFEST_PATH" envDefault:"requirements.txt"`
	WorkDir      string `env:"CIFIX_WORKDIR" envDefault:"."`

	ApproveDependencyFix bool `env:"CIFIX_APPROVE_DEPENDENCY_FIX" envDefault:"false"`
	ApprovePathFix       bool `env:"CIFIX_APPROVE_PATH_FIX" envDefault:"false"`
}

// Load parses the environment. Callers may override individual fields
// (e.g. from CLI flags) before calling Validate.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	owner, name, ok := strings.Cut(c.Repo, "/")
	if !ok || owner == "" || name == "" {
		return fmt.Errorf("repo must be of the form owner/name, got %q", c.Repo)
	}
	if c.RunID == 0 && c.PRNumber == 0 {
		return fmt.Errorf("at least one of run id or pull request number is required")
	}
	return nil
}

func (c *Config) OwnerRepo() (string, string) {
	owner, name, _ := strings.Cut(c.Repo, "/")
	return owner, name
}
