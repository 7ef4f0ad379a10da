/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package uconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load configuration from c.file
func (c *UConfig) loadFile() error {
	file, err := os.Open(c.file)
	if err != nil {
		return fmt.Errorf("error opening file %s: %w", c.file, err)
	}

	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	if err = json.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("deserialization error in %s: %w", c.file, err)
	}
	return nil
}

// Save configuration to c.file
func (c *UConfig) saveFile() error {
	if err := os.MkdirAll(filepath.Dir(c.file), 0755); err != nil {
		return fmt.Errorf("could not create directory: %w", err)
	}

	// Open the file for writing (create if not exists, truncate if exists)
	file, err := os.OpenFile(c.file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err = encoder.Encode(c); err != nil {
		return fmt.Errorf("could not encode to JSON: %w", err)
	}
	return nil
}
