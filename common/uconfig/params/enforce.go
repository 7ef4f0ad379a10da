/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package params

import (
	"fmt"
	"strconv"
)

// enforceAny accepts an any type and returns a Value. Empty strings become the
// default; ints outside a non-zero min or max become the default.
func enforceAny(value any, min int, max int, def Value) Value {
	switch v := value.(type) {

	case string:
		if v == "" {
			return def
		}
		return enforce(Element{Value: Value(v), Default: def, Min: min, Max: max})

	case int:
		return enforce(Element{Value: Value(strconv.Itoa(v)), Default: def, Min: min, Max: max})

	default:
		return Value(fmt.Sprintf("%v", v))
	}
}

// enforce applies the default to an empty value and, when the value is an
// integer, the min and max constraints.
func enforce(e Element) Value {
	if e.Value == "" {
		return e.Default
	}

	intValue, err := strconv.Atoi(string(e.Value))
	if err == nil {
		if e.Min != 0 && intValue < e.Min {
			return e.Default
		}
		if e.Max != 0 && intValue > e.Max {
			return e.Default
		}
	}
	return e.Value
}
