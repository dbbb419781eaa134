package cli

import (
	"os"

	"github.com/nbgit/nbgit/internal/git"
)

// resolveRepoPath returns the repository path from the command arguments,
// defaulting to the current directory, and validates that it is a git
// repository before any subprocess runs against it.
func resolveRepoPath(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	repo, err := git.OpenRepository(path)
	if err != nil {
		return "", err
	}
	return repo.GetRepoRoot(), nil
}

// resolveDirPath returns a plain directory argument (used by clone, where no
// repository exists yet), defaulting to the current directory.
func resolveDirPath(args []string, index int) (string, error) {
	if len(args) > index {
		return args[index], nil
	}
	return os.Getwd()
}
