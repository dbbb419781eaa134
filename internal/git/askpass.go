package git

import (
	"fmt"
	"os"
	"path/filepath"
)

// askpassHelper provisions a single-invocation GIT_ASKPASS script so git can
// obtain a username and password without falling back to a terminal prompt.
// The credentials are written to files in a 0700 temp directory and the whole
// directory is removed as soon as the invocation completes; they never appear
// in argv or in the environment.
type askpassHelper struct {
	dir        string
	scriptPath string
}

const askpassScript = `#!/bin/sh
case "$1" in
Username*) cat "%s" ;;
*) cat "%s" ;;
esac
`

func newAskpassHelper(creds *Credentials) (*askpassHelper, error) {
	dir, err := os.MkdirTemp("", "nbgit-askpass-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create askpass directory: %w", err)
	}
	if err := os.Chmod(dir, 0700); err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("failed to restrict askpass directory: %w", err)
	}

	usernamePath := filepath.Join(dir, "username")
	passwordPath := filepath.Join(dir, "password")
	if err := os.WriteFile(usernamePath, []byte(creds.Username), 0600); err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("failed to write askpass username: %w", err)
	}
	if err := os.WriteFile(passwordPath, []byte(creds.Password), 0600); err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("failed to write askpass password: %w", err)
	}

	scriptPath := filepath.Join(dir, "askpass.sh")
	script := fmt.Sprintf(askpassScript, usernamePath, passwordPath)
	if err := os.WriteFile(scriptPath, []byte(script), 0700); err != nil {
		os.RemoveAll(dir)
		return nil, fmt.Errorf("failed to write askpass script: %w", err)
	}

	return &askpassHelper{dir: dir, scriptPath: scriptPath}, nil
}

func (a *askpassHelper) cleanup() {
	_ = os.RemoveAll(a.dir)
}
