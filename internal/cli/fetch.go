package cli

import (
	"github.com/spf13/cobra"

	"github.com/nbgit/nbgit/internal/config"
	"github.com/nbgit/nbgit/internal/git"
)

// newFetchCmd creates the fetch command
func newFetchCmd() *cobra.Command {
	var auth authFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "fetch [path]",
		Short: "Fetch all remotes of a repository, pruning deleted refs",
		Long: `Fetch runs 'git fetch --all --prune' in the given repository (default:
the current directory) and reports the outcome as a structured result.

With --username the fetch authenticates via a non-interactive side channel;
with --cache-credentials the platform credential cache is provisioned first
so subsequent calls within the cache window need no password.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveRepoPath(args)
			if err != nil {
				return err
			}

			creds, err := resolveCredentials(&auth)
			if err != nil {
				return err
			}

			client, err := newClientForRepo(path)
			if err != nil {
				return err
			}

			result, err := client.Fetch(cmd.Context(), path, creds, auth.cacheCredentials)
			if err != nil {
				return err
			}
			return finishResult(cmd.OutOrStdout(), result, jsonOut, "fetch")
		},
	}

	auth.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Always print the JSON result")

	return cmd
}

// newClientForRepo builds a Client honoring the repository's configured
// credential helper.
func newClientForRepo(path string) (*git.Client, error) {
	helper, err := config.GetCredentialHelper(path)
	if err != nil {
		return nil, err
	}
	return git.NewClient(git.WithCredentialHelper(helper)), nil
}
