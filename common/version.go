//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package common

// Version and Build are shared by every binary in this repository
const (
	Version = "0.3.0"
	Build   = 12
)
