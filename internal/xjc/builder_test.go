package xjc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuilderPreservesCallOrder(t *testing.T) {
	args := NewArgumentBuilder().
		WithFlag(true, "xmlschema").
		WithNamedArgument("encoding", "UTF-8").
		WithFlag(true, "extension").
		WithPreCompiledArguments([]string{"-Xfluent-api", "a.xsd"}).
		Build()

	want := []string{"-xmlschema", "-encoding", "UTF-8", "-extension", "-Xfluent-api", "a.xsd"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Errorf("argument order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderOmitsDisabledFlags(t *testing.T) {
	args := NewArgumentBuilder().
		WithFlag(false, "quiet").
		WithFlag(true, "verbose").
		Build()

	want := []string{"-verbose"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Errorf("disabled flag leaked into output (-want +got):\n%s", diff)
	}
}

func TestBuilderOmitsEmptyNamedArguments(t *testing.T) {
	args := NewArgumentBuilder().
		WithNamedArgument("p", "").
		WithNamedArgument("target", "  ").
		WithNamedArgument("encoding", "UTF-8").
		Build()

	want := []string{"-encoding", "UTF-8"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Errorf("empty named argument leaked into output (-want +got):\n%s", diff)
	}
}

func TestBuilderDoesNotDoubleDash(t *testing.T) {
	args := NewArgumentBuilder().
		WithNamedArgument("-b", "bindings.xjb").
		Build()

	want := []string{"-b", "bindings.xjb"}
	if diff := cmp.Diff(want, args); diff != "" {
		t.Errorf("dash handling mismatch (-want +got):\n%s", diff)
	}
}

func TestBuilderBuildReturnsCopy(t *testing.T) {
	b := NewArgumentBuilder().WithFlag(true, "verbose")

	first := b.Build()
	first[0] = "mutated"

	if got := b.Build()[0]; got != "-verbose" {
		t.Errorf("Build result shares state with builder, got '%s'", got)
	}
}
