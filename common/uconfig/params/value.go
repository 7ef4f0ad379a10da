/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package params

import (
	"strconv"
	"time"

	"github.com/UnifyEM/netid/common/interfaces"
)

// Ensure Value implements the ParameterValue interface
var _ interfaces.ParameterValue = (*Value)(nil)

type Value string

// String converts a Value to a string type
func (v Value) String() string {
	return string(v)
}

// Int converts a Value to an int type, returning 0 if it is not a number
func (v Value) Int() int {
	i, err := strconv.Atoi(v.String())
	if err != nil {
		return 0
	}
	return i
}

// Bool converts a Value to a bool type
func (v Value) Bool() bool {
	b, err := strconv.ParseBool(v.String())
	if err != nil {
		return false
	}
	return b
}

// Seconds interprets an integer Value as a number of seconds
func (v Value) Seconds() time.Duration {
	return time.Duration(v.Int()) * time.Second
}
