package xjc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/source"
)

// ErrNoSources indicates the resolved schema source list was empty. XJC is
// never invoked with zero inputs; the caller decides whether this is fatal
// or a benign skip.
var ErrNoSources = errors.New("no schema sources found")

// ToolError indicates XJC returned a non-zero exit status. It carries the
// full source list so the failure report can enumerate every input.
type ToolError struct {
	ExitCode int
	Sources  []source.Location
}

func (e *ToolError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "XJC failed with exit status %d\n", e.ExitCode)
	b.WriteString("+=================== [XJC Error]\n")
	b.WriteString("|\n")
	for i, src := range e.Sources {
		fmt.Fprintf(&b, "| %d: %s\n", i, src.Locator())
	}
	b.WriteString("|\n")
	b.WriteString("+=================== [End XJC Error]")
	return b.String()
}
