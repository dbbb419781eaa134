// Package actions implements the higher-level operations invoked by the CLI.
package actions

import (
	"context"
	"fmt"
	"strings"

	"github.com/nbgit/nbgit/internal/config"
	"github.com/nbgit/nbgit/internal/git"
	"github.com/nbgit/nbgit/internal/github"
	"github.com/nbgit/nbgit/internal/output"
)

// DoctorOptions configures the doctor action
type DoctorOptions struct {
	// Path is the repository to diagnose; empty checks the environment only.
	Path string
}

// DoctorAction runs diagnostic checks on the nbgit environment and, when a
// repository path is given, on the repository itself. Git invocations go
// through runner so they share the spawn-error taxonomy of the operations.
func DoctorAction(ctx context.Context, splog *output.Splog, runner git.Runner, opts DoctorOptions) error {
	var warnings, errors []string

	splog.Info("Environment:")
	warnings, errors = checkEnvironment(ctx, splog, runner, warnings, errors)

	if opts.Path != "" {
		splog.Newline()
		splog.Info("Repository:")
		warnings, errors = checkRepository(ctx, splog, runner, opts.Path, warnings, errors)
	}

	splog.Newline()
	if len(errors) > 0 {
		splog.Error("%d problem(s) found", len(errors))
		return fmt.Errorf("doctor found %d problem(s)", len(errors))
	}
	if len(warnings) > 0 {
		splog.Warn("%d warning(s)", len(warnings))
		return nil
	}
	splog.Info(output.FormatSuccess("everything looks good"))
	return nil
}

// checkEnvironment performs environment-related checks
func checkEnvironment(ctx context.Context, splog *output.Splog, runner git.Runner, warnings, errors []string) ([]string, []string) {
	// Check git version
	outcome, err := runner.Execute(ctx, git.ExecutionRequest{Args: []string{"git", "version"}})
	if err != nil || outcome.Code != 0 {
		errors = append(errors, "git is not installed or not in PATH")
		splog.Error("  git is not installed or not in PATH")
	} else {
		splog.Info("  %s", output.FormatSuccess(strings.TrimSpace(outcome.Stdout)))
	}

	// Check GitHub authentication (optional; only warn)
	token, err := github.GetToken(ctx)
	if err != nil || token == "" {
		warnings = append(warnings, "GitHub authentication not configured (GITHUB_TOKEN env var or gh auth token)")
		splog.Warn("  GitHub authentication not configured")
	} else {
		login, err := github.CheckConnectivity(ctx, "github.com", token)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("GitHub authentication failed: %v", err))
			splog.Warn("  GitHub authentication failed: %v", err)
		} else {
			splog.Info("  %s", output.FormatSuccess("GitHub authentication successful ("+login+")"))
		}
	}

	return warnings, errors
}

// checkRepository performs repository-related checks
func checkRepository(ctx context.Context, splog *output.Splog, runner git.Runner, path string, warnings, errors []string) ([]string, []string) {
	repo, err := git.OpenRepository(path)
	if err != nil {
		errors = append(errors, fmt.Sprintf("%s is not a git repository", path))
		splog.Error("  %s is not a git repository", path)
		return warnings, errors
	}
	splog.Info("  %s", output.FormatSuccess("repository at "+repo.GetRepoRoot()))

	remotes, err := repo.Remotes()
	if err != nil || len(remotes) == 0 {
		warnings = append(warnings, "no remotes configured; fetch will be a no-op")
		splog.Warn("  no remotes configured")
	} else {
		for _, remote := range remotes {
			splog.Info("  %s", output.FormatSuccess("remote "+remote.Name+" -> "+strings.Join(remote.URLs, ", ")))
		}
	}

	helper, err := config.GetCredentialHelper(repo.GetRepoRoot())
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("could not read nbgit config: %v", err))
		splog.Warn("  could not read nbgit config: %v", err)
	} else {
		splog.Info("  credential helper: %s", helper)
	}

	// Surface whether a helper is already registered in git config, since
	// registration is skipped when one is present.
	outcome, err := runner.Execute(ctx, git.ExecutionRequest{
		Args: []string{"git", "config", "--list"},
		Dir:  repo.GetRepoRoot(),
	})
	if err == nil && outcome.Code == 0 && strings.Contains(outcome.Stdout, "credential.helper=") {
		splog.Info("  %s", output.FormatSuccess("credential helper registered in git config"))
	} else {
		splog.Info("  credential helper not yet registered (will be added on first cached fetch)")
	}

	return warnings, errors
}
