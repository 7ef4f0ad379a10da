/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"encoding/json"
	"fmt"

	"github.com/UnifyEM/netid/common/interfaces"
	"github.com/UnifyEM/netid/common/uconfig/params"
)

// Ensure UConfig implements the Config interface
var _ interfaces.Config = (*UConfig)(nil)

// UConfig holds named parameter sets backed by an optional JSON file.
// On disk the file is {"set": {"key": "value"}}.
type UConfig struct {
	file string
	sets map[string]*params.Params
}

// New returns an UConfig instance after applying the options (see options.go)
func New(options ...func(*UConfig) error) (interfaces.Config, error) {
	c := &UConfig{sets: make(map[string]*params.Params)}

	for _, op := range options {
		if err := op(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// File returns the file the configuration was loaded from or saved to
func (c *UConfig) File() string {
	return c.file
}

// Save the configuration to the specified file, or the last one used
func (c *UConfig) Save(filename string) error {
	if filename != "" {
		c.file = filename
	}

	if c.file == "" {
		return fmt.Errorf("a filename is required")
	}
	return c.saveFile()
}

// Load the configuration from the specified file, or the last one used
func (c *UConfig) Load(filename string) error {
	if filename != "" {
		c.file = filename
	}

	if c.file == "" {
		return fmt.Errorf("a filename is required")
	}
	return c.loadFile()
}

// GetSet returns a specific configuration set or nil
func (c *UConfig) GetSet(set string) interfaces.Parameters {
	if value, ok := c.sets[set]; ok {
		return value
	}
	return nil
}

// NewSet returns the named set, creating it if required
func (c *UConfig) NewSet(key string) interfaces.Parameters {
	if _, ok := c.sets[key]; !ok {
		c.sets[key] = params.New()
	}
	return c.sets[key]
}

// Dump returns the effective configuration as indented JSON
func (c *UConfig) Dump() (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialization error: %w", err)
	}
	return string(data), nil
}

// MarshalJSON writes each set as a flat map with constraints enforced
func (c *UConfig) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]string, len(c.sets))
	for name, set := range c.sets {
		out[name] = set.GetMap()
	}
	return json.Marshal(out)
}

// UnmarshalJSON merges the file content into the existing sets so that
// constraints set before loading are kept
func (c *UConfig) UnmarshalJSON(data []byte) error {
	in := make(map[string]map[string]string)
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	if c.sets == nil {
		c.sets = make(map[string]*params.Params)
	}
	for name, values := range in {
		c.NewSet(name).SetStringMap(values)
	}
	return nil
}
