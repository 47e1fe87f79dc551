// Copyright 2022 Seisio. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log provides the minimal leveled logging facade used by the
// segy package. Hosts can plug any backend by implementing Logger.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
)

// Level is a logger level.
type Level int8

const (
	// LevelDebug is logger debug level.
	LevelDebug Level = iota - 1
	// LevelInfo is logger info level.
	LevelInfo
	// LevelWarn is logger warn level.
	LevelWarn
	// LevelError is logger error level.
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return ""
}

// Logger is a logger interface.
type Logger interface {
	Log(level Level, a ...interface{}) error
}

type stdLogger struct {
	log *stdlog.Logger
}

// NewStdLogger creates a logger backed by the standard library writing to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{
		log: stdlog.New(w, "", stdlog.LstdFlags),
	}
}

func (l *stdLogger) Log(level Level, a ...interface{}) error {
	l.log.Printf("%s %s", level, fmt.Sprint(a...))
	return nil
}

// Filter is a logger that discards records below a minimum level.
type Filter struct {
	logger Logger
	level  Level
}

// FilterOption is a filter option.
type FilterOption func(*Filter)

// FilterLevel sets the minimum level the filter lets through.
func FilterLevel(level Level) FilterOption {
	return func(f *Filter) {
		f.level = level
	}
}

// NewFilter creates a filtering logger wrapping another logger.
func NewFilter(logger Logger, opts ...FilterOption) *Filter {
	f := &Filter{logger: logger}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Log implements Logger.
func (f *Filter) Log(level Level, a ...interface{}) error {
	if level < f.level {
		return nil
	}
	return f.logger.Log(level, a...)
}

// Helper provides sprint-style convenience methods over a Logger.
type Helper struct {
	logger Logger
}

// NewHelper creates a Helper wrapping a logger.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

// Debug logs a message at debug level.
func (h *Helper) Debug(a ...interface{}) {
	_ = h.logger.Log(LevelDebug, a...)
}

// Debugf logs a formatted message at debug level.
func (h *Helper) Debugf(format string, a ...interface{}) {
	_ = h.logger.Log(LevelDebug, fmt.Sprintf(format, a...))
}

// Info logs a message at info level.
func (h *Helper) Info(a ...interface{}) {
	_ = h.logger.Log(LevelInfo, a...)
}

// Infof logs a formatted message at info level.
func (h *Helper) Infof(format string, a ...interface{}) {
	_ = h.logger.Log(LevelInfo, fmt.Sprintf(format, a...))
}

// Warn logs a message at warn level.
func (h *Helper) Warn(a ...interface{}) {
	_ = h.logger.Log(LevelWarn, a...)
}

// Warnf logs a formatted message at warn level.
func (h *Helper) Warnf(format string, a ...interface{}) {
	_ = h.logger.Log(LevelWarn, fmt.Sprintf(format, a...))
}

// Error logs a message at error level.
func (h *Helper) Error(a ...interface{}) {
	_ = h.logger.Log(LevelError, a...)
}

// Errorf logs a formatted message at error level.
func (h *Helper) Errorf(format string, a ...interface{}) {
	_ = h.logger.Log(LevelError, fmt.Sprintf(format, a...))
}

// DefaultLogger is an unfiltered standard library logger writing to
// standard output.
var DefaultLogger = NewStdLogger(os.Stdout)
