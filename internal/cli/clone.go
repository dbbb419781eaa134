package cli

import (
	"github.com/spf13/cobra"

	"github.com/nbgit/nbgit/internal/git"
)

// newCloneCmd creates the clone command
func newCloneCmd() *cobra.Command {
	var auth authFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "clone <url> [dir]",
		Short: "Clone a repository into a directory",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := args[0]
			dir, err := resolveDirPath(args, 1)
			if err != nil {
				return err
			}

			creds, err := resolveCredentials(&auth)
			if err != nil {
				return err
			}

			client := git.NewClient()
			result, err := client.Clone(cmd.Context(), dir, url, creds)
			if err != nil {
				return err
			}
			return finishResult(cmd.OutOrStdout(), result, jsonOut, "clone")
		},
	}

	auth.register(cmd)
	// Caching needs an existing repository configuration; a clone has none.
	cmd.Flags().MarkHidden("cache-credentials") //nolint:errcheck
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Always print the JSON result")

	return cmd
}
