package git

import "context"

// fetchArgs is the full-remote prune fetch argument vector. It is part of the
// compatibility contract and must not change.
var fetchArgs = []string{"git", "fetch", "--all", "--prune"}

// Fetch fetches all remotes of the repository at path, pruning deleted
// remote-tracking refs.
//
// When auth is supplied the subprocess authenticates through a
// per-invocation askpass channel and GIT_TERMINAL_PROMPT is "1"; otherwise
// prompting is suppressed with "0" so the call can never block on a
// terminal. When cacheCredentials is set together with auth, the platform
// cache daemon is ensured and the credential helper is registered in the
// repository configuration (unless already present) before the fetch runs.
//
// A non-zero git exit is reported in the Result, not as an error; only a
// process that cannot be spawned returns an error.
func (c *Client) Fetch(ctx context.Context, path string, auth *Credentials, cacheCredentials bool) (Result, error) {
	return c.remoteOp(ctx, path, fetchArgs, auth, cacheCredentials)
}
