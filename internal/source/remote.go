package source

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"
)

// RemoteResource is a schema input addressed by an http(s) URI.
type RemoteResource struct {
	client *http.Client
	uri    string
}

// NewRemoteResource creates a RemoteResource probed through the given
// client. A nil client falls back to http.DefaultClient.
func NewRemoteResource(client *http.Client, uri string) *RemoteResource {
	if client == nil {
		client = http.DefaultClient
	}
	return &RemoteResource{client: client, uri: uri}
}

// Locator returns the URI.
func (r *RemoteResource) Locator() string {
	return r.uri
}

// LastModified issues a HEAD request and reads the Last-Modified header.
// The connection is released on every path; a missing or unparsable header
// is an explicit error, never silently treated as fresh.
func (r *RemoteResource) LastModified() (time.Time, error) {
	resp, err := r.client.Head(r.uri)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to connect to %s: %w", r.uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return time.Time{}, fmt.Errorf("probe of %s returned status %d", r.uri, resp.StatusCode)
	}

	header := resp.Header.Get("Last-Modified")
	if header == "" {
		return time.Time{}, fmt.Errorf("%s: %w", r.uri, ErrUnknownLastModified)
	}

	modified, err := http.ParseTime(header)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s reported unparsable Last-Modified %q: %w", r.uri, header, err)
	}
	return modified, nil
}

// FileName returns the base name of the URI path.
func (r *RemoteResource) FileName() (string, error) {
	u, err := url.Parse(r.uri)
	if err != nil {
		return "", &LocatorError{Locator: r.uri, Reason: err.Error()}
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "", &LocatorError{Locator: r.uri, Reason: "no file name component"}
	}
	return name, nil
}

// Open fetches the resource body.
func (r *RemoteResource) Open() (io.ReadCloser, error) {
	resp, err := r.client.Get(r.uri)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", r.uri, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch of %s returned status %d", r.uri, resp.StatusCode)
	}
	return resp.Body, nil
}
