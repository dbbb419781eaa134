// Package cli wires the nbgit commands.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nbgit",
		Short: "nbgit exposes git remote operations to notebook front ends",
		Long: `nbgit is a backend adapter that runs git remote operations (fetch, pull,
push, clone) on behalf of a notebook-server front end and reports each
outcome as a structured result. Credentials are supplied per call, passed to
git through a non-interactive side channel, and optionally cached by the
platform credential cache so they are not re-prompted for every call.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newFetchCmd())
	rootCmd.AddCommand(newPullCmd())
	rootCmd.AddCommand(newPushCmd())
	rootCmd.AddCommand(newCloneCmd())
	rootCmd.AddCommand(newRemotesCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newVersionCmd(version, commit, date))

	return rootCmd
}

// newVersionCmd creates the version command
func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the nbgit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nbgit %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
