/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"fmt"
	"io"
)

// ErrorWrapper is a simple wrapper for CLI error handling.
// If there is an error, it prints it to w.
func ErrorWrapper(w io.Writer, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(w, "Error: %s\n", err.Error())
	}
}
