package git

import (
	"encoding/json"
	"strings"
)

// Result is the only shape exposed to callers of an operation.
// Success is exactly {"code": 0}; failure carries the space-joined command
// and the subprocess stderr verbatim, including embedded control characters.
type Result struct {
	Code    int    `json:"code"`
	Command string `json:"command"`
	Error   string `json:"error"`
}

// Ok reports whether the operation succeeded.
func (r Result) Ok() bool {
	return r.Code == 0
}

// MarshalJSON keeps the success payload to the single "code" key while a
// failure always carries all three keys, even when the subprocess wrote
// nothing to stderr.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Ok() {
		return json.Marshal(struct {
			Code int `json:"code"`
		}{r.Code})
	}
	type failure Result
	return json.Marshal(failure(r))
}

// normalize maps a completed subprocess outcome to the caller-facing result.
// stdout and stderr are discarded on success; they carry no information the
// caller needs for these operations.
func normalize(outcome ExecutionOutcome, args []string) Result {
	if outcome.Code == 0 {
		return Result{}
	}
	return Result{
		Code:    outcome.Code,
		Command: strings.Join(args, " "),
		Error:   outcome.Stderr,
	}
}
