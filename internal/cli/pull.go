package cli

import (
	"github.com/spf13/cobra"
)

// newPullCmd creates the pull command
func newPullCmd() *cobra.Command {
	var auth authFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "pull [path]",
		Short: "Pull remote changes without committing the merge",
		Args:  cobra.MaximumNArgs(1),
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

			result, err := client.Pull(cmd.Context(), path, creds, auth.cacheCredentials)
			if err != nil {
				return err
			}
			return finishResult(cmd.OutOrStdout(), result, jsonOut, "pull")
		},
	}

	auth.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Always print the JSON result")

	return cmd
}
