package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nbgit/nbgit/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// A failed git operation already printed its result; anything else
		// still needs reporting.
		if !errors.Is(err, cli.ErrOperationFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
