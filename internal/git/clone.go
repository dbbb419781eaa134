package git

import "context"

// Clone clones url into parentDir. Credentials flow through the same askpass
// channel as Fetch. There is no cache setup for a clone: the repository
// configuration that would hold the credential helper does not exist until
// the clone completes.
func (c *Client) Clone(ctx context.Context, parentDir, url string, auth *Credentials) (Result, error) {
	args := []string{"git", "clone", url}
	return c.remoteOp(ctx, parentDir, args, auth, false)
}
