package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbgit/nbgit/internal/git"
)

// newRemotesCmd creates the remotes command
func newRemotesCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "remotes [path]",
		Short: "List the configured remotes of a repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveRepoPath(args)
			if err != nil {
				return err
			}

			repo, err := git.OpenRepository(path)
			if err != nil {
				return err
			}

			remotes, err := repo.Remotes()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if jsonOut || !writerIsTerminal(w) {
				return json.NewEncoder(w).Encode(remotes)
			}
			for _, remote := range remotes {
				for _, url := range remote.URLs {
					fmt.Fprintf(w, "%s\t%s\n", remote.Name, url)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Always print the JSON result")

	return cmd
}
