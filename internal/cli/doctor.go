package cli

import (
	"github.com/spf13/cobra"

	"github.com/nbgit/nbgit/internal/actions"
	"github.com/nbgit/nbgit/internal/git"
	"github.com/nbgit/nbgit/internal/output"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor [path]",
		Short: "Diagnose common issues with your nbgit setup",
		Long: `Run diagnostic checks on the nbgit environment and, when a repository
path is given, on the repository itself.

The doctor command checks:
  - Environment: git version and GitHub authentication
  - Repository: repository status, remotes, and credential helper setup`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			splog := output.NewSplog()
			return actions.DoctorAction(cmd.Context(), splog, git.NewRunner(), actions.DoctorOptions{
				Path: path,
			})
		},
	}

	return cmd
}
