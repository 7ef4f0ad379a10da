/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

//go:build !linux && !darwin

package netident

import "os"

func systemHostname() string {
	name, err := os.Hostname()
	if err != nil {
		return ""
	}
	return name
}
