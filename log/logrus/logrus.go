// Package logrus adapts a logrus entry to cassmarshal.Logger.
package logrus

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/cassmarshal"
)

var _ cassmarshal.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

// New tags every entry with component=cassmarshal. A nil l yields a logger
// that discards output.
func New(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.New()
		l.SetOutput(io.Discard)
	}
	return Logger{E: l.WithField("component", "cassmarshal")}
}

func (l Logger) Debug(msg string, f cassmarshal.Fields) { l.with(f).Debug(msg) }
func (l Logger) Info(msg string, f cassmarshal.Fields)  { l.with(f).Info(msg) }
func (l Logger) Warn(msg string, f cassmarshal.Fields)  { l.with(f).Warn(msg) }
func (l Logger) Error(msg string, f cassmarshal.Fields) { l.with(f).Error(msg) }

func (l Logger) with(f cassmarshal.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	return l.E.WithFields(logrus.Fields(f))
}
