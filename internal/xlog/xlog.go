// Package xlog centralizes structured logging for xtile the way the
// teacher centralizes tick/log plumbing in internal/config: a single
// package-level logger that every other package imports, instead of each
// package constructing its own.
package xlog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the package-level structured logger every xtile package writes
// through. It is safe for concurrent use, though the event loop is
// single-threaded and never exercises that.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	Log.SetLevel(logrus.InfoLevel)
}

// SetLevel parses name (panic|fatal|error|warn|info|debug|trace) and
// applies it to Log, returning an error for an unrecognized level.
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	Log.SetLevel(lvl)
	return nil
}

// Fatal logs at Fatal level and exits the process with status 1. Used for
// spec.md §7 kind-1 setup errors: no display, redirection refused, color
// allocation failed.
func Fatal(args ...interface{}) {
	Log.Fatal(args...)
}

// Fatalf is the formatted form of Fatal.
func Fatalf(format string, args ...interface{}) {
	Log.Fatalf(format, args...)
}

// WithField is a thin forwarding helper so callers don't need to import
// logrus directly just to attach one field.
func WithField(key string, value interface{}) *logrus.Entry {
	return Log.WithField(key, value)
}
