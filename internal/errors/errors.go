// Package errors provides sentinel errors and custom error types for the nbgit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrSpawnFailed indicates that an external command could not be started
	ErrSpawnFailed = errors.New("command could not be started")

	// ErrNotARepository indicates that a path does not contain a git repository
	ErrNotARepository = errors.New("not a git repository")
)

// SpawnError represents a failure to start an external command.
// This is distinct from a command that ran and exited non-zero: the latter is
// reported through the operation result, never as an error.
type SpawnError struct {
	Command string
	Args    []string
	Err     error
}

func (e *SpawnError) Error() string {
	msg := fmt.Sprintf("failed to start %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrSpawnFailed
func (e *SpawnError) Is(target error) bool {
	return target == ErrSpawnFailed
}

// NewSpawnError creates a new SpawnError
func NewSpawnError(command string, args []string, err error) *SpawnError {
	return &SpawnError{
		Command: command,
		Args:    args,
		Err:     err,
	}
}

// NotARepositoryError represents an error when a path is not a git repository
type NotARepositoryError struct {
	Path string
}

func (e *NotARepositoryError) Error() string {
	return fmt.Sprintf("%s is not a git repository", e.Path)
}

// Is returns true if the target error is ErrNotARepository
func (e *NotARepositoryError) Is(target error) bool {
	return target == ErrNotARepository
}

// NewNotARepositoryError creates a new NotARepositoryError
func NewNotARepositoryError(path string) *NotARepositoryError {
	return &NotARepositoryError{Path: path}
}
