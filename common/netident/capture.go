/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package netident

import (
	"context"
	"strings"

	"github.com/UnifyEM/netid/common"
	"github.com/UnifyEM/netid/common/fields"
	"github.com/UnifyEM/netid/common/interfaces"
)

// capture runs a command through runner. Spawn failures, non-zero exits and
// timeouts are logged and reported as false.
func capture(ctx context.Context, runner Runner, logger interfaces.Logger, cmdAndArgs ...string) (string, bool) {
	if runner == nil {
		return "", false
	}

	out, err := runner.Stdout(ctx, cmdAndArgs...)
	if err != nil {
		logger.Debug(1201, "command unavailable", fields.NewFields(
			fields.NewField("cmd", strings.Join(cmdAndArgs, " ")),
			fields.NewField("error", common.SingleLine(err.Error())),
		))
		return "", false
	}
	return out, true
}
