package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	nbgiterrors "github.com/nbgit/nbgit/internal/errors"
)

// CacheDaemon provisions the platform credential cache daemon before an
// authenticated operation. The implementation is selected once at
// construction; on platforms without a cache daemon it is a no-op.
type CacheDaemon interface {
	// Ensure starts or confirms the cache daemon and returns its status.
	// Status 0 means the daemon is available.
	Ensure(ctx context.Context, cwd string, env map[string]string) (int, error)
}

// NewCacheDaemon returns the CacheDaemon for the current platform.
func NewCacheDaemon() CacheDaemon {
	if runtime.GOOS == "linux" {
		return &unixCacheDaemon{}
	}
	return noopCacheDaemon{}
}

// noopCacheDaemon is used on platforms where git manages credential caching
// itself (or a native store is used instead of the cache helper).
type noopCacheDaemon struct{}

func (noopCacheDaemon) Ensure(_ context.Context, _ string, _ map[string]string) (int, error) {
	return 0, nil
}

// unixCacheDaemon starts a long-lived `git credential-cache--daemon` process
// bound to the default socket. The daemon outlives the triggering operation,
// so it is started detached rather than awaited.
type unixCacheDaemon struct {
	mu   sync.Mutex
	proc *os.Process
}

// defaultCacheSocket is the socket path the cache helper uses by default.
func defaultCacheSocket() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".git-credential-cache", "socket")
}

func (d *unixCacheDaemon) Ensure(_ context.Context, cwd string, env map[string]string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	socket := defaultCacheSocket()
	if socket == "" {
		return 1, nil
	}
	if _, err := os.Stat(socket); err == nil {
		// A daemon is already listening.
		return 0, nil
	}
	if d.proc != nil {
		// We started one; assume it is still coming up.
		return 0, nil
	}

	args := []string{"credential-cache--daemon", socket}
	// Not CommandContext: the daemon must outlive the triggering operation.
	cmd := exec.Command("git", args...)
	cmd.Dir = cwd
	if flat := flattenEnv(env); flat != nil {
		cmd.Env = flat
	}
	if err := cmd.Start(); err != nil {
		return 1, nbgiterrors.NewSpawnError("git", args, err)
	}
	d.proc = cmd.Process
	go func() { _, _ = cmd.Process.Wait() }()
	return 0, nil
}

// Subprocess argument vectors for credential helper registration. These are
// part of the compatibility contract and must not change.
var (
	configListArgs = []string{"git", "config", "--list"}
	configAddArgs  = []string{"git", "config", "--add", "credential.helper"}
)

// ensureCredentialHelper registers the configured credential helper in the
// repository at cwd unless one is already present. The query always precedes
// registration; registration always precedes the authenticated operation.
//
// Concurrent writers to the same repository configuration can race here. The
// presence check keeps registration idempotent at-least-once; the window is
// deliberately not locked.
func (c *Client) ensureCredentialHelper(ctx context.Context, cwd string) error {
	outcome, err := c.runner.Execute(ctx, ExecutionRequest{
		Args: configListArgs,
		Dir:  cwd,
	})
	if err != nil {
		return err
	}
	if hasCredentialHelper(outcome.Stdout) {
		return nil
	}

	args := append(append([]string{}, configAddArgs...), c.credentialHelper)
	_, err = c.runner.Execute(ctx, ExecutionRequest{
		Args: args,
		Dir:  cwd,
	})
	return err
}

// hasCredentialHelper reports whether a `git config --list` output contains a
// credential.helper entry.
func hasCredentialHelper(configList string) bool {
	for _, line := range strings.Split(configList, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "credential.helper=") {
			return true
		}
	}
	return false
}
