// Package logging provides the shared logger. Each package obtains an
// entry tagged with its component name.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLogger is the root logger for the whole tool.
var DefaultLogger = logrus.New()

func init() {
	DefaultLogger.SetOutput(os.Stderr)
	DefaultLogger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}

// NewEntry returns a logger entry tagged with the given component name.
func NewEntry(component string) *logrus.Entry {
	return DefaultLogger.WithField("component", component)
}

// SetVerbose switches the root logger between info and debug level.
func SetVerbose(verbose bool) {
	if verbose {
		DefaultLogger.SetLevel(logrus.DebugLevel)
	} else {
		DefaultLogger.SetLevel(logrus.InfoLevel)
	}
}
