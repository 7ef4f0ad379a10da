/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package netident

import (
	"context"
	"strings"
)

// Hostname runs the hostname command and falls back to the kernel's node
// name when the command is unavailable
func Hostname(ctx context.Context, runner Runner) (string, bool) {
	if runner != nil {
		if out, err := runner.Stdout(ctx, "hostname"); err == nil {
			if name := strings.TrimSpace(out); name != "" {
				return name, true
			}
		}
	}

	name := strings.TrimSpace(systemHostname())
	return name, name != ""
}
