package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbgit/nbgit/internal/git"
	"github.com/nbgit/nbgit/testhelpers"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := NewRootCmd("test", "none", "unknown")
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFetchCommand(t *testing.T) {
	t.Run("prints the JSON contract on success", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))

		out, err := execute(t, "fetch", scene.Dir, "--json")
		require.NoError(t, err)
		require.JSONEq(t, `{"code": 0}`, out)
	})

	t.Run("prints the failure contract and exits non-zero", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.AddRemote("origin", "/nonexistent/nbgit/remote.git"))

		out, err := execute(t, "fetch", scene.Dir, "--json")
		require.ErrorIs(t, err, ErrOperationFailed)

		var result git.Result
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		require.NotZero(t, result.Code)
		require.Equal(t, "git fetch --all --prune", result.Command)
		require.NotEmpty(t, result.Error)
	})

	t.Run("rejects a non-repository path", func(t *testing.T) {
		_, err := execute(t, "fetch", t.TempDir(), "--json")
		require.Error(t, err)
	})

	t.Run("password-stdin without username is an error", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		_, err := execute(t, "fetch", scene.Dir, "--password-stdin", "--json")
		require.Error(t, err)
	})
}

func TestRemotesCommand(t *testing.T) {
	t.Run("lists remotes as JSON", func(t *testing.T) {
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
		barePath, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)

		out, err := execute(t, "remotes", scene.Dir, "--json")
		require.NoError(t, err)

		var remotes []git.RemoteInfo
		require.NoError(t, json.Unmarshal([]byte(out), &remotes))
		require.Len(t, remotes, 1)
		require.Equal(t, "origin", remotes[0].Name)
		require.Equal(t, []string{barePath}, remotes[0].URLs)
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "nbgit test")
}

func TestPrintResult(t *testing.T) {
	t.Run("json output matches the contract exactly", func(t *testing.T) {
		var buf bytes.Buffer
		result := git.Result{Code: 1, Command: "git fetch --all --prune", Error: "error"}
		require.NoError(t, printResult(&buf, result, true, "fetch"))
		require.JSONEq(t, `{"code": 1, "command": "git fetch --all --prune", "error": "error"}`, buf.String())
	})

	t.Run("non-terminal writer gets JSON even without the flag", func(t *testing.T) {
		var buf bytes.Buffer
		result := git.Result{Code: 128, Command: "git fetch --all --prune", Error: "fatal: Authentication failed"}
		require.NoError(t, printResult(&buf, result, false, "fetch"))
		require.JSONEq(t, `{"code": 128, "command": "git fetch --all --prune", "error": "fatal: Authentication failed"}`, buf.String())
	})

	t.Run("success payload has no extra keys", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, printResult(&buf, git.Result{}, true, "fetch"))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, 1)
		require.Contains(t, decoded, "code")
	})
}
