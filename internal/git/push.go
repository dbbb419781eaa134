package git

import "context"

// PushOptions controls a push operation.
type PushOptions struct {
	// Remote is the remote to push to. Empty pushes to the configured
	// upstream of the current branch.
	Remote string

	// Refspec is the ref to push, e.g. "HEAD:main". Only used when Remote is
	// set.
	Refspec string

	// Force pushes with --force-with-lease, refusing to clobber remote
	// commits this repository has not seen.
	Force bool
}

// Push pushes the repository at path to its remote. Credential handling is
// identical to Fetch.
func (c *Client) Push(ctx context.Context, path string, opts PushOptions, auth *Credentials, cacheCredentials bool) (Result, error) {
	args := []string{"git", "push"}
	if opts.Force {
		args = append(args, "--force-with-lease")
	}
	if opts.Remote != "" {
		args = append(args, opts.Remote)
		if opts.Refspec != "" {
			args = append(args, opts.Refspec)
		}
	}
	return c.remoteOp(ctx, path, args, auth, cacheCredentials)
}
