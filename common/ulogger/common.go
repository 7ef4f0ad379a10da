/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package ulogger

import (
	"io"

	"github.com/UnifyEM/netid/common/interfaces"
)

// This package implements interfaces.Logger
var _ interfaces.Logger = (*NetLogger)(nil)

// Option is a function that configures a NetLogger
type Option func(*NetLogger) error

// New creates a new instance of NetLogger with the provided options
func New(options ...Option) (*NetLogger, error) {
	u := &NetLogger{retainDays: 7}

	for _, option := range options {
		if err := option(u); err != nil {
			return nil, err
		}
	}

	if err := u.open(); err != nil {
		return nil, err
	}
	return u, nil
}

// WithPrefix sets a process name or similar short identifier
func WithPrefix(prefix string) Option {
	return func(u *NetLogger) error {
		u.prefix = prefix
		return nil
	}
}

// WithLogFile sets the log file. An empty name disables file logging.
func WithLogFile(logfile string) Option {
	return func(u *NetLogger) error {
		u.logfile = logfile
		return nil
	}
}

// WithConsole sends log lines to w in addition to the log file.
// The report itself owns stdout, so the CLI passes os.Stderr here.
func WithConsole(w io.Writer) Option {
	return func(u *NetLogger) error {
		u.console = w
		return nil
	}
}

// WithDebug enables or disables debug logging
func WithDebug(debug bool) Option {
	return func(u *NetLogger) error {
		u.debug = debug
		return nil
	}
}

// WithRetention sets the number of days to retain rotated logs
func WithRetention(retainDays int) Option {
	return func(u *NetLogger) error {
		u.retainDays = retainDays
		return nil
	}
}
