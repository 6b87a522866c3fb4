// Package nix invokes the external Nix expression evaluator to produce
// dotfile lists from .nix files. The evaluator is a subprocess; nothing in
// the expression language is interpreted locally.
package nix

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"os/exec"
	"strings"

	"github.com/dotfile-manager/dotfile-manager/pkg/errors"
	"github.com/dotfile-manager/dotfile-manager/pkg/logging"
)

// evaluatorBin is the evaluator binary looked up on PATH.
const evaluatorBin = "nix-instantiate"

// evaluatorArgs request strict (non-lazy) evaluation with JSON output.
var evaluatorArgs = []string{"--strict", "--json", "--eval"}

// EvalFile evaluates the Nix expression at path and unmarshals the JSON it
// produces into out. Success is decided by the stderr contract, not the exit
// status: any non-empty stderr output is an evaluation failure carrying the
// stderr text, even when the process exits zero. The context bounds the
// subprocess; callers that want the original unbounded behavior pass
// context.Background().
func EvalFile(ctx context.Context, path string, out interface{}) error {
	logger := logging.GetLogger("nix")

	cmd := exec.CommandContext(ctx, evaluatorBin, append(evaluatorArgs, path)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug().Str("file", path).Msg("Evaluating Nix expression")
	runErr := cmd.Run()

	var execErr *exec.Error
	if stderrors.As(runErr, &execErr) {
		// The process never ran. A missing binary is a distinct, more
		// specific failure than a failed evaluation.
		if stderrors.Is(execErr.Err, exec.ErrNotFound) {
			return errors.Wrapf(runErr, errors.ErrNixNotFound, "%s binary not found", evaluatorBin)
		}
		return errors.Wrapf(runErr, errors.ErrNixNotFound, "could not execute %s", evaluatorBin)
	}

	if stderr.Len() > 0 {
		return errors.New(errors.ErrNixEvalFailed, strings.TrimSpace(stderr.String())).
			WithDetail("file", path)
	}

	if runErr != nil && ctx.Err() != nil {
		return errors.Wrapf(runErr, errors.ErrNixEvalFailed, "evaluation of %s interrupted", path)
	}

	// A non-zero exit with empty stderr falls through: the exit status is
	// not part of the contract.
	if err := json.Unmarshal(stdout.Bytes(), out); err != nil {
		return errors.Wrap(err, errors.ErrDotfilesParseJSON, "failed to parse evaluator output as JSON").
			WithDetail("file", path)
	}
	return nil
}
