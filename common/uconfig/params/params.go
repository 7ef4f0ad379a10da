/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package params implements a simple key/value store with constraints.
// Every value is kept as a string; typed access goes through Value.
package params

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/UnifyEM/netid/common/interfaces"
)

// Ensure Params implements the Parameters interface
var _ interfaces.Parameters = (*Params)(nil)

type Element struct {
	Value   Value `json:"value"`
	Default Value `json:"default"`
	Min     int   `json:"min"`
	Max     int   `json:"max"`
}

type Params struct {
	Data map[string]Element
}

// New returns an initialized Params object
func New() *Params {
	return &Params{Data: make(map[string]Element)}
}

// Exists checks if a key exists in the Params object
func (p *Params) Exists(key string) bool {
	_, ok := p.Data[key]
	return ok
}

// Keys returns the known keys in sorted order
func (p *Params) Keys() []string {
	keys := make([]string, 0, len(p.Data))
	for k := range p.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Set a key/value pair in the Params object
func (p *Params) Set(key string, value any) {
	element := p.Data[key]

	// enforceAny deals with empty strings and out of range ints and returns a string
	element.Value = enforceAny(value, element.Min, element.Max, element.Default)
	p.Data[key] = element
}

// SetConstraint sets a min and max constraint and a default for a key.
// An existing value is kept and re-checked against the new constraint.
func (p *Params) SetConstraint(key string, min, max int, def any) {
	element := p.Data[key]
	element.Default = Value(fmt.Sprintf("%v", def))
	element.Min = min
	element.Max = max
	element.Value = enforce(element)
	p.Data[key] = element
}

// SetStringMap sets multiple key/value pairs in the Params object
func (p *Params) SetStringMap(data map[string]string) {
	for key, value := range data {
		p.Set(key, value)
	}
}

// Get a Value from the Params object with constraints enforced
func (p *Params) Get(key string) interfaces.ParameterValue {
	element, ok := p.Data[key]
	if !ok {
		return Value("")
	}
	return enforce(element)
}

// GetMap converts the Params object to a map[string]string
// Constraints are enforced
func (p *Params) GetMap() map[string]string {
	r := make(map[string]string, len(p.Data))
	for key, element := range p.Data {
		r[key] = enforce(element).String()
	}
	return r
}

// Dump the raw Params object, including constraints, for debugging
func (p *Params) Dump() (string, error) {
	data, err := json.MarshalIndent(p.Data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
