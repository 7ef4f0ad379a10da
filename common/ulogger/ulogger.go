/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package ulogger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/UnifyEM/netid/common/interfaces"
)

const (
	levelDebug   = "DEBUG"
	levelInfo    = "INFO"
	levelWarning = "WARNING"
	levelError   = "ERROR"
)

// NetLogger writes to an optional log file and an optional console writer
type NetLogger struct {
	fileHandle     *os.File
	logfile        string
	console        io.Writer
	debug          bool
	prefix         string
	retainDays     int
	currentLogDate string
	now            func() time.Time
}

// open prepares the log file, if one was requested
func (u *NetLogger) open() error {
	if u.now == nil {
		u.now = time.Now
	}

	if u.logfile == "" {
		return nil
	}

	u.logfile = filepath.Clean(u.logfile)

	if err := os.MkdirAll(filepath.Dir(u.logfile), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	// An existing file keeps the date it was last written so that a
	// rotation happens on the first write of a new day
	if fileInfo, err := os.Stat(u.logfile); err == nil {
		u.currentLogDate = fileInfo.ModTime().Format("20060102")
	} else {
		u.currentLogDate = u.now().Format("20060102")
	}

	fh, err := os.OpenFile(u.logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		// Unable to log to file, so make sure messages still go somewhere
		u.fileHandle = nil
		if u.console == nil {
			u.console = os.Stderr
		}
		return nil
	}
	u.fileHandle = fh
	return nil
}

// Close closes the log file
func (u *NetLogger) Close() {
	if u.fileHandle != nil {
		_ = u.fileHandle.Sync()
		_ = u.fileHandle.Close()
		u.fileHandle = nil
	}
}

// formatMessage formats the log message with a timestamp
func (u *NetLogger) formatMessage(eid uint32, level string, message string, fields interfaces.Fields) string {
	msg := fmt.Sprintf("%s %s [%s] %04d %s",
		u.now().Format("2006-01-02 15:04:05"),
		u.prefix, level, eid, message)

	if fields != nil {
		if text := fields.ToText(); text != "" {
			msg += ": " + text
		}
	}
	return msg
}

// writeLog writes a log message and handles rotation if necessary
func (u *NetLogger) writeLog(eid uint32, level string, message string, fields interfaces.Fields) {
	if level == levelDebug && !u.debug {
		return
	}

	if err := u.rotateLogs(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "log rotation error: %s\n", err.Error())
	}

	line := u.formatMessage(eid, level, message, fields) + "\n"

	if u.fileHandle != nil {
		_, _ = u.fileHandle.WriteString(line)
	}

	if u.console != nil {
		_, _ = io.WriteString(u.console, line)
	}
}

// Debug logs a debug message
func (u *NetLogger) Debug(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, levelDebug, message, fields)
}

// Info logs an informational message
func (u *NetLogger) Info(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, levelInfo, message, fields)
}

// Warning logs a warning message
func (u *NetLogger) Warning(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, levelWarning, message, fields)
}

// Error logs an error message
func (u *NetLogger) Error(eid uint32, message string, fields interfaces.Fields) {
	u.writeLog(eid, levelError, message, fields)
}

func (u *NetLogger) Debugf(eid uint32, format string, v ...any) {
	u.writeLog(eid, levelDebug, fmt.Sprintf(format, v...), nil)
}

func (u *NetLogger) Infof(eid uint32, format string, v ...any) {
	u.writeLog(eid, levelInfo, fmt.Sprintf(format, v...), nil)
}

func (u *NetLogger) Warningf(eid uint32, format string, v ...any) {
	u.writeLog(eid, levelWarning, fmt.Sprintf(format, v...), nil)
}

func (u *NetLogger) Errorf(eid uint32, format string, v ...any) {
	u.writeLog(eid, levelError, fmt.Sprintf(format, v...), nil)
}
