//
// Copyright (c) 2024-2026 Tenebris Technologies Inc.
// See LICENSE file for details
//

package util

import (
	"fmt"
	"strings"
)

type NVPairs struct {
	Pairs map[string]string
}

// NewNVPairs parses key=value arguments. Keys are lower-cased and may use
// dashes in place of underscores. An argument without '=' is an error.
func NewNVPairs(args []string) (*NVPairs, error) {
	r := NVPairs{
		Pairs: make(map[string]string),
	}

	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		key = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "-", "_")
		if !found || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		r.Pairs[key] = value
	}

	return &r, nil
}

// ToMap is a helper function to convert NVPairs to a map[string]string
func (p *NVPairs) ToMap() map[string]string {
	return p.Pairs
}

// Merge copies the pairs into m without replacing existing keys
func (p *NVPairs) Merge(m map[string]string) {
	for k, v := range p.Pairs {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
}
