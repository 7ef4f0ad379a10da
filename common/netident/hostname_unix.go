/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

//go:build linux || darwin

package netident

import (
	"golang.org/x/sys/unix"
)

// systemHostname returns the node name reported by uname(2)
func systemHostname() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Nodename[:])
}
