package git

import (
	"context"
	"os"
	"strings"

	"github.com/nbgit/nbgit/internal/config"
	"github.com/nbgit/nbgit/internal/output"
)

// terminalPromptVar is always present in the environment passed to a remote
// operation: "0" suppresses interactive prompting entirely, "1" lets git fall
// back to the askpass side channel carrying the supplied credentials.
const terminalPromptVar = "GIT_TERMINAL_PROMPT"

// Client performs git remote operations against a repository path.
// A Client is stateless across calls and safe for concurrent use.
type Client struct {
	runner           Runner
	daemon           CacheDaemon
	credentialHelper string
	log              *output.Splog
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithRunner substitutes the subprocess runner. Used by tests.
func WithRunner(r Runner) ClientOption {
	return func(c *Client) { c.runner = r }
}

// WithCacheDaemon substitutes the credential cache daemon strategy.
func WithCacheDaemon(d CacheDaemon) ClientOption {
	return func(c *Client) { c.daemon = d }
}

// WithCredentialHelper overrides the credential helper registered when
// caching is requested.
func WithCredentialHelper(helper string) ClientOption {
	return func(c *Client) { c.credentialHelper = helper }
}

// WithLogger substitutes the logger.
func WithLogger(log *output.Splog) ClientOption {
	return func(c *Client) { c.log = log }
}

// NewClient creates a Client with the platform defaults.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		runner:           NewRunner(),
		daemon:           NewCacheDaemon(),
		credentialHelper: config.DefaultCredentialHelper(),
		log:              output.NewSplog(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// environWithPrompt captures a snapshot of the ambient process environment
// and returns a new map with the terminal-prompt flag set. The snapshot is
// never mutated in place, so concurrent operations cannot interfere.
func environWithPrompt(auth *Credentials) map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	if auth != nil {
		env[terminalPromptVar] = "1"
	} else {
		env[terminalPromptVar] = "0"
	}
	return env
}

// remoteOp runs one credential-aware remote operation: optional cache setup,
// then the operation itself, then outcome normalization. The subprocess
// invocations within a call are strictly sequential; the operation itself is
// always the last one.
func (c *Client) remoteOp(ctx context.Context, path string, args []string, auth *Credentials, cacheCredentials bool) (Result, error) {
	// Caching without credentials is meaningless; skip setup entirely.
	if cacheCredentials && auth != nil {
		status, err := c.daemon.Ensure(ctx, path, nil)
		if err != nil {
			return Result{}, err
		}
		if status != 0 {
			// Best effort: the operation can still authenticate through the
			// askpass channel, the password just won't be cached.
			c.log.Warn("credential cache daemon unavailable (status %d)", status)
		}
		if err := c.ensureCredentialHelper(ctx, path); err != nil {
			return Result{}, err
		}
	}

	outcome, err := c.runner.Execute(ctx, ExecutionRequest{
		Args:  args,
		Dir:   path,
		Env:   environWithPrompt(auth),
		Creds: auth,
	})
	if err != nil {
		return Result{}, err
	}
	return normalize(outcome, args), nil
}
