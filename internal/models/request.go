package models

import "github.com/yogeshrao/jaxb2-maven-plugin/internal/source"

// SourceContentType describes the content type of all schema sources in a
// run. The XJC binding compiler expects exactly one content-type flag, so
// all sources are assumed to share one type.
type SourceContentType string

const (
	// XMLSchema is the default source content type (*.xsd).
	XMLSchema SourceContentType = "xmlschema"
	// DTD sources (*.dtd).
	DTD SourceContentType = "dtd"
	// WSDL sources with inline schema (*.wsdl).
	WSDL SourceContentType = "wsdl"
)

// XJCFlag returns the XJC flag name corresponding to the content type.
func (t SourceContentType) XJCFlag() string {
	return string(t)
}

// GenerationRequest aggregates everything needed to assemble one XJC
// invocation. It is built fresh per run from configuration and treated as
// immutable once handed to the argument assembler.
type GenerationRequest struct {
	// SourceType selects the single content-type flag emitted first.
	SourceType SourceContentType

	// Boolean XJC flags, each rendered as "-<name>" only when enabled.
	NoPackageLevelAnnotations bool // npa
	LaxSchemaValidation       bool // nv
	Verbose                   bool
	Quiet                     bool
	EnableIntrospection       bool
	Extension                 bool
	ReadOnly                  bool
	NoGeneratedHeaderComments bool // no-header
	AddGeneratedAnnotation    bool // mark-generated

	// Named XJC arguments, omitted entirely when empty.
	Encoding    string
	PackageName string // p
	Target      string
	OutputDir   string // d
	Classpath   string

	// Proxy is the active proxy, or nil when none is configured.
	Proxy *ProxySpec

	// GenerateEpisode requests an episode file; EpisodeFile is its target
	// path. Episode generation requires XJC extension mode.
	GenerateEpisode bool
	EpisodeFile     string

	// Catalog resolves external entity references when non-empty.
	Catalog string

	// ExtraArguments are caller-supplied tokens appended verbatim.
	ExtraArguments []string

	// Bindings are XJB customization file paths, one "-b" pair each.
	Bindings []string

	// Sources are the schema inputs handed to XJC last.
	Sources []source.Location

	// BaseDir is used to relativize local paths for log readability.
	BaseDir string
}
