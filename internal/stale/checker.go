// Package stale decides whether a previous generation run's output is
// outdated relative to its schema and binding inputs.
package stale

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/logging"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/source"
)

// Checker compares the marker file's timestamp against every source and
// binding input. Any uncertainty resolves to "stale": a redundant
// regeneration is cheap, a silently skipped one leaves stale generated
// code behind.
type Checker struct {
	fs  afero.Fs
	log *logrus.Entry
}

// NewChecker creates a Checker statting binding files through fs.
func NewChecker(fs afero.Fs) *Checker {
	return &Checker{fs: fs, log: logging.NewEntry("stale")}
}

// IsStale reports whether regeneration is required. It returns true when
// the marker is absent, when any source or binding is newer than the
// marker, and when any source's modification time cannot be determined.
func (c *Checker) IsStale(marker *Marker, sources []source.Location, bindings []string) bool {
	if !marker.Exists() {
		c.log.Debugf("marker %s not found, generation required", marker.Path())
		return true
	}

	markerTime, err := marker.LastModified()
	if err != nil {
		c.log.Debugf("cannot read marker %s: %v", marker.Path(), err)
		return true
	}

	for _, src := range sources {
		modified, err := src.LastModified()
		if err != nil {
			// Cannot tell whether the marker is younger than this
			// source; regenerate to be on the safe side.
			c.log.Debugf("cannot determine modification time of %s: %v", src.Locator(), err)
			return true
		}
		if modified.After(markerTime) {
			c.log.Debugf("%s is newer than the marker file", src.Locator())
			return true
		}
	}

	for _, binding := range bindings {
		info, err := c.fs.Stat(binding)
		if err != nil {
			c.log.Debugf("cannot stat binding %s: %v", binding, err)
			return true
		}
		if info.ModTime().After(markerTime) {
			c.log.Debugf("%s is newer than the marker file", binding)
			return true
		}
	}

	return false
}
