// Package xjc assembles and executes invocations of the external XJC
// binding compiler.
package xjc

import "strings"

// ArgumentBuilder accumulates XJC argument tokens in call order. The
// compiler is sensitive to token order and duplication, so callers own the
// ordering and the builder never reorders or deduplicates.
type ArgumentBuilder struct {
	args []string
}

// NewArgumentBuilder creates an empty builder.
func NewArgumentBuilder() *ArgumentBuilder {
	return &ArgumentBuilder{}
}

// WithFlag appends a single "-<name>" token when enabled is true.
// Disabled flags are omitted entirely, never emitted in negated form.
func (b *ArgumentBuilder) WithFlag(enabled bool, name string) *ArgumentBuilder {
	if !enabled || strings.TrimSpace(name) == "" {
		return b
	}
	b.args = append(b.args, dashed(name))
	return b
}

// WithNamedArgument appends "-<name>" and its value as two consecutive
// tokens. The pair is omitted entirely when the value is empty.
func (b *ArgumentBuilder) WithNamedArgument(name, value string) *ArgumentBuilder {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(value) == "" {
		return b
	}
	b.args = append(b.args, dashed(name), value)
	return b
}

// WithPreCompiledArguments appends pre-built tokens verbatim, preserving
// their order.
func (b *ArgumentBuilder) WithPreCompiledArguments(args []string) *ArgumentBuilder {
	b.args = append(b.args, args...)
	return b
}

// Build returns a copy of the accumulated token vector.
func (b *ArgumentBuilder) Build() []string {
	out := make([]string, len(b.args))
	copy(out, b.args)
	return out
}

// dashed prefixes a single dash unless the name already carries one.
func dashed(name string) string {
	if strings.HasPrefix(name, "-") {
		return name
	}
	return "-" + name
}
