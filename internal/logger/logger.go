// SPDX-License-Identifier: MIT

// Package logger configures the process-wide logrus logger of the demo
// binary. Library packages never log.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogOptions selects level and rendering of log output.
type LogOptions struct {
	// Verbose switches the level from info to debug.
	Verbose bool
	// DisableColor drops ANSI colour codes.
	DisableColor bool
	// HideLogTime omits the timestamp prefix.
	HideLogTime bool
	// Output receives log lines; nil means os.Stderr so that stdout carries
	// only the demo output.
	Output io.Writer
}

// Init applies options to the standard logrus logger.
func Init(options LogOptions) {
	Configure(logrus.StandardLogger(), options)
}

// Configure applies options to l.
func Configure(l *logrus.Logger, options LogOptions) {
	if options.Verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.InfoLevel)
	}

	out := options.Output
	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)
	l.SetFormatter(&Formatter{
		DisableColor: options.DisableColor,
		HideLogTime:  options.HideLogTime,
	})
}
