/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package runCmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/UnifyEM/netid/common"
	"github.com/UnifyEM/netid/common/fields"
	"github.com/UnifyEM/netid/common/interfaces"
	"github.com/UnifyEM/netid/common/null"
)

const (
	RunCombined int = iota
	RunStdout
)

// DefaultTimeout applies when a Runner is created with a zero timeout
const DefaultTimeout = 5 * time.Second

// Runner executes read-only system commands, each bounded by Timeout
type Runner struct {
	Timeout time.Duration
	logger  interfaces.Logger
}

// New returns a Runner. A nil logger discards messages.
func New(timeout time.Duration, logger interfaces.Logger) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = null.Logger()
	}
	return &Runner{Timeout: timeout, logger: logger}
}

// Combined runs a command and returns combined stdout and stderr
func (r *Runner) Combined(ctx context.Context, cmdAndArgs ...string) (string, error) {
	return r.run(ctx, RunCombined, cmdAndArgs...)
}

// Stdout runs a command and returns stdout only
func (r *Runner) Stdout(ctx context.Context, cmdAndArgs ...string) (string, error) {
	return r.run(ctx, RunStdout, cmdAndArgs...)
}

// run a command given as a slice of strings
func (r *Runner) run(ctx context.Context, runType int, cmdAndArgs ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	if len(cmdAndArgs) == 0 {
		return "", fmt.Errorf("no command provided")
	}

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cmdAndArgs[0], cmdAndArgs[1:]...)
	cmd.WaitDelay = time.Second
	cmd.Stdout = &stdout
	switch runType {
	case RunCombined:
		cmd.Stderr = &stdout
	default:
		cmd.Stderr = &stderr
	}

	start := time.Now()
	err := cmd.Run()
	outStr := stdout.String()

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}

	r.logger.Debug(1200, "command finished", fields.NewFields(
		fields.NewField("cmd", strings.Join(cmdAndArgs, " ")),
		fields.NewField("exit", exitCode),
		fields.NewField("elapsed", time.Since(start).Round(time.Millisecond)),
		fields.NewField("stderr", common.SingleLine(stderr.String())),
	))

	if err != nil {
		if ctx.Err() != nil {
			return outStr, fmt.Errorf("command %q timed out after %s: %w",
				strings.Join(cmdAndArgs, " "), r.Timeout, ctx.Err())
		}

		// If the process started but exited non-zero, wrap with exit code & stderr
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return outStr, fmt.Errorf("command %q failed with exit code %d: %s: %w",
				strings.Join(cmdAndArgs, " "), exitErr.ExitCode(), common.SingleLine(stderr.String()), err)
		}

		// Other errors (e.g. executable not found)
		return outStr, fmt.Errorf("failed to run %q: %w", strings.Join(cmdAndArgs, " "), err)
	}

	return outStr, nil
}
