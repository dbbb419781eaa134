package git

import "context"

var pullArgs = []string{"git", "pull", "--no-commit"}

// Pull integrates remote changes into the repository at path without
// committing the merge, so the front end can surface conflicts to the user.
// Credential handling is identical to Fetch.
func (c *Client) Pull(ctx context.Context, path string, auth *Credentials, cacheCredentials bool) (Result, error) {
	return c.remoteOp(ctx, path, pullArgs, auth, cacheCredentials)
}
