// Package source models the locations schema inputs are read from: plain
// files, entries inside archives, and remote resources. Every location can
// report a modification timestamp or fail explicitly; an unknown timestamp
// is never treated as fresh.
package source

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/afero"
)

// ErrUnknownLastModified is returned when a location is reachable but does
// not report a modification time.
var ErrUnknownLastModified = errors.New("modification time unknown")

// LocatorError indicates a locator string that could not be decomposed
// into a usable location or file name.
type LocatorError struct {
	Locator string
	Reason  string
}

func (e *LocatorError) Error() string {
	return fmt.Sprintf("illegal locator [%s]: %s", e.Locator, e.Reason)
}

// Location is one schema input for an XJC run.
type Location interface {
	// Locator returns the full locator string, used verbatim as the XJC
	// argument for non-file locations.
	Locator() string

	// LastModified returns the location's modification time, or an error
	// when it cannot be determined.
	LastModified() (time.Time, error)

	// FileName returns the base file name, used when copying schemas into
	// a packaging location.
	FileName() (string, error)

	// Open returns a reader over the location's bytes.
	Open() (io.ReadCloser, error)
}

// Parse classifies a locator string into a Location. Local file paths need
// no scheme; archive entries use the jar-style "archive!/inner" form
// (optionally prefixed with "jar:" and "file:"); http(s) URIs become
// remote resources. All scheme dispatch lives here so call sites work with
// the variants only.
func Parse(fs afero.Fs, client *http.Client, locator string) (Location, error) {
	switch {
	case strings.HasPrefix(locator, "http://"), strings.HasPrefix(locator, "https://"):
		return NewRemoteResource(client, locator), nil

	case strings.HasPrefix(locator, "jar:"), strings.Contains(locator, "!"):
		bang := strings.Index(locator, "!")
		if bang == -1 {
			return nil, &LocatorError{Locator: locator, Reason: "lacks a '!'"}
		}

		archive := strings.TrimPrefix(strings.TrimPrefix(locator[:bang], "jar:"), "file:")
		inner := strings.TrimPrefix(locator[bang+1:], "/")
		if archive == "" || inner == "" {
			return nil, &LocatorError{Locator: locator, Reason: "empty archive or entry path"}
		}
		return NewArchiveEntry(fs, archive, inner), nil

	default:
		return NewLocalFile(fs, locator), nil
	}
}
