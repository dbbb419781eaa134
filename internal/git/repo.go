package git

import (
	"fmt"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"

	nbgiterrors "github.com/nbgit/nbgit/internal/errors"
)

// Repository wraps a go-git repository
type Repository struct {
	*gogit.Repository
	path string
}

// RemoteInfo describes one configured remote.
type RemoteInfo struct {
	Name string   `json:"name"`
	URLs []string `json:"urls"`
}

// OpenRepository opens the git repository containing path. It is used to
// validate a path before running remote operations against it and to read
// repository metadata without shelling out.
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, nbgiterrors.NewNotARepositoryError(absPath)
	}

	return &Repository{
		Repository: repo,
		path:       absPath,
	}, nil
}

// GetRepoRoot returns the root directory of the repository
func (r *Repository) GetRepoRoot() string {
	return r.path
}

// Remotes returns the configured remotes with their fetch/push URLs.
func (r *Repository) Remotes() ([]RemoteInfo, error) {
	remotes, err := r.Repository.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	infos := make([]RemoteInfo, 0, len(remotes))
	for _, remote := range remotes {
		cfg := remote.Config()
		infos = append(infos, RemoteInfo{
			Name: cfg.Name,
			URLs: cfg.URLs,
		})
	}
	return infos, nil
}
