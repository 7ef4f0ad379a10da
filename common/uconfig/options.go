/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"errors"
	"os"
)

// ErrNotFound is returned by WithFind when none of the candidates exist
var ErrNotFound = errors.New("no configuration file found")

// WithLoad loads a specific file, which must exist
func WithLoad(filename string) func(*UConfig) error {
	return func(c *UConfig) error {
		return c.Load(filename)
	}
}

// WithFind loads the first file in the list that exists.
// Empty entries are skipped so callers can pass optional paths.
func WithFind(filenames []string) func(*UConfig) error {
	return func(c *UConfig) error {
		for _, filename := range filenames {
			if filename == "" {
				continue
			}
			if _, err := os.Stat(filename); err == nil {
				return c.Load(filename)
			}
		}
		return ErrNotFound
	}
}
