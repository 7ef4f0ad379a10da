/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package common

import (
	"strings"
)

// SingleLine normalizes command output for logging:
//   - trims leading/trailing whitespace
//   - replaces newlines with " | "
//   - collapses runs of whitespace into single spaces
//   - truncates to maxLogText runes
func SingleLine(s string) string {
	if s == "" {
		return s
	}

	replacer := strings.NewReplacer(
		"\r\n", " | ",
		"\n", " | ",
		"\r", " | ",
	)
	s = replacer.Replace(strings.TrimSpace(s))
	s = strings.Join(strings.Fields(s), " ")

	if r := []rune(s); len(r) > maxLogText {
		s = string(r[:maxLogText]) + "..."
	}
	return s
}

const maxLogText = 240
