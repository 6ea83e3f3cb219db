package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/chainguard-dev/clog"
	"github.com/spf13/cobra"

	"github.com/tracker-tv/github-cifix-bot/internal/config"
	"github.com/tracker-tv/github-cifix-bot/internal/git"
	"github.com/tracker-tv/github-cifix-bot/internal/github"
	"github.com/tracker-tv/github-cifix-bot/internal/orchestrator"
	"github.com/tracker-tv/github-cifix-bot/internal/service"
	"github.com/tracker-tv/github-cifix-bot/models"
)

var (
	flagRunID                int64
	flagPRNumber             int
	flagApproveDependencyFix bool
	flagApprovePathFix       bool
)

var rootCmd = &cobra.Command{
	Use:          "bot",
	Short:        "Triage a failed CI run and propose or apply a minimal fix",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		// Flags beat the environment when set explicitly.
		if cmd.Flags().Changed("run-id") {
			cfg.RunID = flagRunID
		}
		if cmd.Flags().Changed("pr-number") {
			cfg.PRNumber = flagPRNumber
		}
		if cmd.Flags().Changed("approve-dependency-fix") {
			cfg.ApproveDependencyFix = flagApproveDependencyFix
		}
		if cmd.Flags().Changed("approve-path-fix") {
			cfg.ApprovePathFix = flagApprovePathFix
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		ctx := cmd.Context()
		owner, repo := cfg.OwnerRepo()
		ghClient := github.New(cfg.GithubToken, owner, repo)

		runs := service.NewRunService(ghClient, models.RunContext{
			Owner:    owner,
			Repo:     repo,
			RunID:    cfg.RunID,
			PRNumber: cfg.PRNumber,
			Branch:   cfg.Branch,
		})
		logs := service.NewLogService(ghClient)
		remediation := service.NewRemediationService(git.NewRunner(cfg.WorkDir), cfg.WorkDir, cfg.ManifestPath)
		reports := service.NewReportService(ghClient, cfg.ManifestPath)

		bot := orchestrator.NewTriageBot(runs, logs, remediation, reports, models.ApprovalState{
			DependencyFix: cfg.ApproveDependencyFix,
			PathFix:       cfg.ApprovePathFix,
		})

		return bot.Run(ctx)
	},
}

func init() {
	rootCmd.Flags().Int64Var(&flagRunID, "run-id", 0, "failed workflow run to triage")
	rootCmd.Flags().IntVar(&flagPRNumber, "pr-number", 0, "pull request whose failed run should be triaged")
	rootCmd.Flags().BoolVar(&flagApproveDependencyFix, "approve-dependency-fix", false, "apply the dependency fix instead of proposing it")
	rootCmd.Flags().BoolVar(&flagApprovePathFix, "approve-path-fix", false, "apply the placeholder-file fix instead of proposing it")
}

func main() {
	log := clog.New(slog.Default().Handler())
	ctx := clog.WithLogger(context.Background(), log)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Errorf("triage failed: %v", err)
		os.Exit(1)
	}
}
