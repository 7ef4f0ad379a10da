/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package interfaces

import "time"

// Config defines the methods for configuration file management
type Config interface {
	Load(string) error
	Save(string) error
	File() string
	NewSet(string) Parameters
	GetSet(string) Parameters
	Dump() (string, error)
}

// Parameters is a set of constrained key/value pairs
type Parameters interface {
	Exists(key string) bool
	Keys() []string
	Set(key string, value any)
	SetConstraint(key string, min, max int, def any)
	SetStringMap(data map[string]string)
	Get(key string) ParameterValue
	GetMap() map[string]string
}

type ParameterValue interface {
	String() string
	Int() int
	Bool() bool
	Seconds() time.Duration
}
