package wmi

import (
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/valentin-kaiser/hwident/apperror"
)

// Executor runs a system command and returns its trimmed standard output.
// It exists so the CIM source can be exercised in tests without a Windows
// host.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

// commandExecutor implements Executor using os/exec
type commandExecutor struct{}

// Execute runs the command bound to the context and returns its trimmed
// output. Standard error output is folded into the returned error so
// callers can classify failures.
func (e *commandExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	output, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		appErr := apperror.NewErrorf("command %q failed", name).AddError(err)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			appErr.AddError(errors.New(strings.TrimSpace(string(exitErr.Stderr))))
		}
		return "", appErr
	}

	return strings.TrimSpace(string(output)), nil
}
