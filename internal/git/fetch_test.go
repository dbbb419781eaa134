package git_test

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	nbgiterrors "github.com/nbgit/nbgit/internal/errors"
	"github.com/nbgit/nbgit/internal/git"
)

// scriptedRunner is a fake Runner that records every request and replays a
// scripted sequence of outcomes.
type scriptedRunner struct {
	mu       sync.Mutex
	requests []git.ExecutionRequest
	outcomes []git.ExecutionOutcome
	errs     []error
}

func (r *scriptedRunner) Execute(_ context.Context, req git.ExecutionRequest) (git.ExecutionOutcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := len(r.requests)
	r.requests = append(r.requests, req)
	if i < len(r.errs) && r.errs[i] != nil {
		return git.ExecutionOutcome{}, r.errs[i]
	}
	if i < len(r.outcomes) {
		return r.outcomes[i], nil
	}
	return git.ExecutionOutcome{}, nil
}

// recordingDaemon is a fake CacheDaemon that records calls and returns a
// fixed status.
type recordingDaemon struct {
	calls  int
	status int
	err    error
}

func (d *recordingDaemon) Ensure(_ context.Context, _ string, _ map[string]string) (int, error) {
	d.calls++
	return d.status, d.err
}

var fetchArgs = []string{"git", "fetch", "--all", "--prune"}

func newTestClient(runner *scriptedRunner, daemon *recordingDaemon) *git.Client {
	return git.NewClient(
		git.WithRunner(runner),
		git.WithCacheDaemon(daemon),
		git.WithCredentialHelper("cache --timeout=3600"),
	)
}

func TestFetch(t *testing.T) {
	t.Run("success without auth", func(t *testing.T) {
		runner := &scriptedRunner{outcomes: []git.ExecutionOutcome{{Code: 0}}}
		daemon := &recordingDaemon{}
		client := newTestClient(runner, daemon)

		result, err := client.Fetch(context.Background(), "test_path", nil, false)
		require.NoError(t, err)

		require.Len(t, runner.requests, 1)
		req := runner.requests[0]
		require.Equal(t, fetchArgs, req.Args)
		require.Equal(t, "test_path", req.Dir)
		require.Equal(t, "0", req.Env["GIT_TERMINAL_PROMPT"])
		require.Nil(t, req.Creds)
		require.Equal(t, git.Result{Code: 0}, result)
		require.Zero(t, daemon.calls)
	})

	t.Run("failure without auth", func(t *testing.T) {
		runner := &scriptedRunner{outcomes: []git.ExecutionOutcome{{Code: 1, Stderr: "error"}}}
		client := newTestClient(runner, &recordingDaemon{})

		result, err := client.Fetch(context.Background(), "test_path", nil, false)
		require.NoError(t, err)

		require.Equal(t, git.Result{
			Code:    1,
			Command: "git fetch --all --prune",
			Error:   "error",
		}, result)
	})

	t.Run("success with auth", func(t *testing.T) {
		runner := &scriptedRunner{outcomes: []git.ExecutionOutcome{{Code: 0}}}
		client := newTestClient(runner, &recordingDaemon{})
		auth := &git.Credentials{Username: "test_user", Password: "test_pass"}

		result, err := client.Fetch(context.Background(), "test_path", auth, false)
		require.NoError(t, err)

		require.Len(t, runner.requests, 1)
		req := runner.requests[0]
		require.Equal(t, "1", req.Env["GIT_TERMINAL_PROMPT"])
		require.Equal(t, auth, req.Creds)
		require.Equal(t, git.Result{Code: 0}, result)
	})

	t.Run("auth failure preserves multi-line stderr", func(t *testing.T) {
		errorMessage := "remote: Invalid username or password.\r\nfatal: Authentication failed for 'test_repo'"
		runner := &scriptedRunner{outcomes: []git.ExecutionOutcome{{Code: 128, Stderr: errorMessage}}}
		client := newTestClient(runner, &recordingDaemon{})
		auth := &git.Credentials{Username: "test_user", Password: "test_pass"}

		result, err := client.Fetch(context.Background(), "test_path", auth, false)
		require.NoError(t, err)

		require.Equal(t, git.Result{
			Code:    128,
			Command: "git fetch --all --prune",
			Error:   errorMessage,
		}, result)
	})

	t.Run("cache credentials without auth skips setup", func(t *testing.T) {
		runner := &scriptedRunner{outcomes: []git.ExecutionOutcome{{Code: 0}}}
		daemon := &recordingDaemon{}
		client := newTestClient(runner, daemon)

		result, err := client.Fetch(context.Background(), "test_path", nil, true)
		require.NoError(t, err)

		require.Len(t, runner.requests, 1)
		require.Equal(t, fetchArgs, runner.requests[0].Args)
		require.Equal(t, "0", runner.requests[0].Env["GIT_TERMINAL_PROMPT"])
		require.Zero(t, daemon.calls)
		require.Equal(t, git.Result{Code: 0}, result)
	})

	t.Run("auth and cache credentials registers helper", func(t *testing.T) {
		runner := &scriptedRunner{outcomes: []git.ExecutionOutcome{
			{Code: 0}, // git config --list
			{Code: 0}, // git config --add credential.helper
			{Code: 0}, // git fetch --all --prune
		}}
		daemon := &recordingDaemon{}
		client := newTestClient(runner, daemon)
		auth := &git.Credentials{Username: "test_user", Password: "test_pass"}

		result, err := client.Fetch(context.Background(), "test_path", auth, true)
		require.NoError(t, err)

		require.Equal(t, 1, daemon.calls)
		require.Len(t, runner.requests, 3)

		require.Equal(t, []string{"git", "config", "--list"}, runner.requests[0].Args)
		require.Equal(t, "test_path", runner.requests[0].Dir)
		require.Nil(t, runner.requests[0].Creds)

		require.Equal(t, []string{"git", "config", "--add", "credential.helper", "cache --timeout=3600"}, runner.requests[1].Args)
		require.Equal(t, "test_path", runner.requests[1].Dir)
		require.Nil(t, runner.requests[1].Creds)

		// Fetch is always the last invocation
		require.Equal(t, fetchArgs, runner.requests[2].Args)
		require.Equal(t, "1", runner.requests[2].Env["GIT_TERMINAL_PROMPT"])
		require.Equal(t, auth, runner.requests[2].Creds)

		require.Equal(t, git.Result{Code: 0}, result)
	})

	t.Run("auth and cache credentials with existing helper skips registration", func(t *testing.T) {
		runner := &scriptedRunner{outcomes: []git.ExecutionOutcome{
			{Code: 0, Stdout: "credential.helper=something"}, // git config --list
			{Code: 0}, // git fetch --all --prune
		}}
		client := newTestClient(runner, &recordingDaemon{})
		auth := &git.Credentials{Username: "test_user", Password: "test_pass"}

		result, err := client.Fetch(context.Background(), "test_path", auth, true)
		require.NoError(t, err)

		require.Len(t, runner.requests, 2)
		require.Equal(t, []string{"git", "config", "--list"}, runner.requests[0].Args)
		require.Equal(t, fetchArgs, runner.requests[1].Args)
		require.Equal(t, git.Result{Code: 0}, result)
	})

	t.Run("daemon failure is best effort", func(t *testing.T) {
		runner := &scriptedRunner{outcomes: []git.ExecutionOutcome{
			{Code: 0, Stdout: "credential.helper=cache"},
			{Code: 0},
		}}
		daemon := &recordingDaemon{status: 1}
		client := newTestClient(runner, daemon)
		auth := &git.Credentials{Username: "u", Password: "p"}

		result, err := client.Fetch(context.Background(), "test_path", auth, true)
		require.NoError(t, err)
		require.Equal(t, git.Result{Code: 0}, result)
		require.Equal(t, 1, daemon.calls)
	})

	t.Run("spawn failure propagates as error", func(t *testing.T) {
		spawnErr := nbgiterrors.NewSpawnError("git", []string{"fetch"}, nil)
		runner := &scriptedRunner{errs: []error{spawnErr}}
		client := newTestClient(runner, &recordingDaemon{})

		_, err := client.Fetch(context.Background(), "test_path", nil, false)
		require.Error(t, err)
		require.ErrorIs(t, err, nbgiterrors.ErrSpawnFailed)
	})

	t.Run("ambient environment is not mutated", func(t *testing.T) {
		t.Setenv("NBGIT_TEST_SENTINEL", "before")

		runner := &scriptedRunner{outcomes: []git.ExecutionOutcome{{Code: 0}}}
		client := newTestClient(runner, &recordingDaemon{})

		_, err := client.Fetch(context.Background(), "test_path", nil, false)
		require.NoError(t, err)

		// The snapshot passed to the subprocess carries the sentinel plus the
		// prompt flag; the ambient environment itself is untouched.
		require.Equal(t, "before", runner.requests[0].Env["NBGIT_TEST_SENTINEL"])
		require.Equal(t, "0", runner.requests[0].Env["GIT_TERMINAL_PROMPT"])
		_, ambient := os.LookupEnv("GIT_TERMINAL_PROMPT")
		require.False(t, ambient)
	})
}

func TestResultJSONContract(t *testing.T) {
	t.Run("success serializes to code only", func(t *testing.T) {
		data, err := json.Marshal(git.Result{Code: 0})
		require.NoError(t, err)
		require.JSONEq(t, `{"code": 0}`, string(data))
	})

	t.Run("failure serializes code command and error", func(t *testing.T) {
		result := git.Result{
			Code:    128,
			Command: "git fetch --all --prune",
			Error:   "remote: Invalid username or password.\r\nfatal: Authentication failed",
		}
		data, err := json.Marshal(result)
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Len(t, decoded, 3)
		require.Equal(t, float64(128), decoded["code"])
		require.Equal(t, "git fetch --all --prune", decoded["command"])
		require.Equal(t, "remote: Invalid username or password.\r\nfatal: Authentication failed", decoded["error"])
	})

	t.Run("failure with empty stderr keeps the error key", func(t *testing.T) {
		result := git.Result{
			Code:    141,
			Command: "git fetch --all --prune",
			Error:   "",
		}
		data, err := json.Marshal(result)
		require.NoError(t, err)
		require.JSONEq(t, `{"code": 141, "command": "git fetch --all --prune", "error": ""}`, string(data))
	})
}
