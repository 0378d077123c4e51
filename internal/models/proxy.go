package models

import (
	"fmt"
	"strings"
)

// ProxySpec describes the HTTP/HTTPS proxy handed to XJC. It is supplied
// per run from configuration or environment and never persisted.
type ProxySpec struct {
	Username string
	Password string
	Host     string
	Port     int
}

// String renders the proxy on the form XJC expects for its httpproxy
// argument: [user[:password]@]host:port. The password is only included
// when a username is present, and the '@' separator only appears when a
// username is present.
func (p *ProxySpec) String() string {
	if p == nil || p.Host == "" {
		return ""
	}

	var b strings.Builder
	if p.Username != "" {
		b.WriteString(p.Username)
		if p.Password != "" {
			b.WriteString(":")
			b.WriteString(p.Password)
		}
		b.WriteString("@")
	}
	fmt.Fprintf(&b, "%s:%d", p.Host, p.Port)
	return b.String()
}
