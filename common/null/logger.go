/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package null

import (
	"github.com/UnifyEM/netid/common/interfaces"
)

// LoggerNull implements interfaces.Logger and discards all data.
// Collectors fall back to it when constructed without a logger, and
// tests use it to keep output clean.
type LoggerNull struct{}

func Logger() interfaces.Logger {
	return &LoggerNull{}
}

func (n *LoggerNull) Debug(_ uint32, _ string, _ interfaces.Fields)   {}
func (n *LoggerNull) Info(_ uint32, _ string, _ interfaces.Fields)    {}
func (n *LoggerNull) Warning(_ uint32, _ string, _ interfaces.Fields) {}
func (n *LoggerNull) Error(_ uint32, _ string, _ interfaces.Fields)   {}
func (n *LoggerNull) Debugf(_ uint32, _ string, _ ...any)             {}
func (n *LoggerNull) Infof(_ uint32, _ string, _ ...any)              {}
func (n *LoggerNull) Warningf(_ uint32, _ string, _ ...any)           {}
func (n *LoggerNull) Errorf(_ uint32, _ string, _ ...any)             {}
