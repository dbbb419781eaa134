package cli

import (
	"github.com/spf13/cobra"

	"github.com/nbgit/nbgit/internal/git"
)

// newPushCmd creates the push command
func newPushCmd() *cobra.Command {
	var auth authFlags
	var jsonOut bool
	var remote string
	var refspec string
	var force bool

	cmd := &cobra.Command{
		Use:   "push [path]",
		Short: "Push the repository to its remote",
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

			opts := git.PushOptions{Remote: remote, Refspec: refspec, Force: force}
			result, err := client.Push(cmd.Context(), path, opts, creds, auth.cacheCredentials)
			if err != nil {
				return err
			}
			return finishResult(cmd.OutOrStdout(), result, jsonOut, "push")
		},
	}

	auth.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Always print the JSON result")
	cmd.Flags().StringVar(&remote, "remote", "", "Remote to push to (default: the configured upstream)")
	cmd.Flags().StringVar(&refspec, "refspec", "", "Refspec to push, e.g. HEAD:main")
	cmd.Flags().BoolVar(&force, "force", false, "Push with --force-with-lease")

	return cmd
}
