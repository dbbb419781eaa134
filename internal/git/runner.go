package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"

	nbgiterrors "github.com/nbgit/nbgit/internal/errors"
)

// Credentials is a username/password pair for an authenticated remote
// operation. Absence (a nil pointer) means the operation is unauthenticated.
// Credentials live for a single operation call and are never persisted.
type Credentials struct {
	Username string
	Password string
}

// ExecutionRequest describes one subprocess invocation.
type ExecutionRequest struct {
	// Args is the full argument vector, including the binary name.
	Args []string

	// Dir is the working directory for the subprocess.
	Dir string

	// Env is the complete environment for the subprocess as a key/value map.
	// A nil map inherits the ambient process environment; callers that need
	// specific variables must pass a full map, the runner never merges.
	Env map[string]string

	// Creds, when non-nil, are made available to the subprocess through an
	// askpass side channel scoped to this invocation. They are never placed
	// into Args or Env.
	Creds *Credentials
}

// ExecutionOutcome is the raw result of a completed subprocess: exit code,
// captured stdout and captured stderr. It is produced once per invocation.
type ExecutionOutcome struct {
	Code   int
	Stdout string
	Stderr string
}

// Runner executes external commands. The real implementation spawns one
// process per call; tests substitute a scripted fake.
type Runner interface {
	// Execute runs the command to completion. A process that starts and
	// exits non-zero is not an error: the exit code is reported in the
	// outcome. Only a process that cannot be started returns an error
	// (a *errors.SpawnError).
	Execute(ctx context.Context, req ExecutionRequest) (ExecutionOutcome, error)
}

// execRunner is the os/exec backed Runner.
type execRunner struct{}

// NewRunner returns the standard Runner backed by os/exec.
func NewRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Execute(ctx context.Context, req ExecutionRequest) (ExecutionOutcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, req.Args[0], req.Args[1:]...)
	cmd.Dir = req.Dir

	env := flattenEnv(req.Env)
	if env == nil {
		env = os.Environ()
	}

	if req.Creds != nil {
		askpass, err := newAskpassHelper(req.Creds)
		if err != nil {
			return ExecutionOutcome{}, err
		}
		defer askpass.cleanup()
		// GIT_ASKPASS carries a script path, not a secret.
		env = append(env, "GIT_ASKPASS="+askpass.scriptPath)
	}
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return ExecutionOutcome{
				Code:   exitErr.ExitCode(),
				Stdout: stdout.String(),
				Stderr: stderr.String(),
			}, nil
		}
		return ExecutionOutcome{}, nbgiterrors.NewSpawnError(req.Args[0], req.Args[1:], err)
	}

	return ExecutionOutcome{
		Code:   0,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}, nil
}

// flattenEnv converts an environment map to the KEY=VALUE slice form used by
// os/exec. A nil map returns nil.
func flattenEnv(env map[string]string) []string {
	if env == nil {
		return nil
	}
	flat := make([]string, 0, len(env))
	for k, v := range env {
		flat = append(flat, k+"="+v)
	}
	return flat
}
