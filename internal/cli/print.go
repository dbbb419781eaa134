package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/nbgit/nbgit/internal/git"
	"github.com/nbgit/nbgit/internal/output"
)

// printResult writes an operation result to w. The machine-readable JSON
// contract is used when forced with --json or when w is not a terminal;
// on a terminal a styled human rendering is shown instead.
func printResult(w io.Writer, result git.Result, jsonOut bool, operation string) error {
	if jsonOut || !writerIsTerminal(w) {
		encoder := json.NewEncoder(w)
		return encoder.Encode(result)
	}

	if result.Ok() {
		fmt.Fprintln(w, output.FormatSuccess(operation+" complete"))
		return nil
	}
	fmt.Fprintln(w, output.FormatFailure(result.Command, result.Code, result.Error))
	return nil
}

// writerIsTerminal reports whether w is a terminal. A redirected or buffered
// writer is never one, so tests and pipes always receive the JSON contract.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ErrOperationFailed signals a non-zero git exit to main without any extra
// output; the result itself has already been printed.
var ErrOperationFailed = fmt.Errorf("operation failed")

// finishResult prints the result and maps failure to the process exit status.
func finishResult(w io.Writer, result git.Result, jsonOut bool, operation string) error {
	if err := printResult(w, result, jsonOut, operation); err != nil {
		return err
	}
	if !result.Ok() {
		return ErrOperationFailed
	}
	return nil
}
