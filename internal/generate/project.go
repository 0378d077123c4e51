// Package generate orchestrates one incremental XJC generation step:
// staleness check, argument assembly, tool invocation, and
// post-processing.
package generate

import (
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/logging"
)

// ProjectContext supplies the host-build facts the orchestrator needs and
// receives registrations for newly generated directories. It replaces
// ambient build-system state with an explicit collaborator.
type ProjectContext interface {
	// OutputDirectory is where XJC writes generated sources.
	OutputDirectory() string

	// BaseDirectory is the root used to relativize paths.
	BaseDirectory() string

	// Classpath is the opaque classpath string handed to the tool.
	Classpath() string

	// StaleFile is the path of the marker file.
	StaleFile() string

	// AddGeneratedSourceRoot registers a directory of generated sources
	// with the host build.
	AddGeneratedSourceRoot(dir string)

	// AddResourceDirectory registers a directory of resources with the
	// host build.
	AddResourceDirectory(dir string)
}

// DirProject is a plain directory-backed ProjectContext for standalone
// use, where "registering" a directory just records and logs it.
type DirProject struct {
	OutputDir     string
	BaseDir       string
	ClasspathStr  string
	StaleFilePath string

	sourceRoots  []string
	resourceDirs []string
}

func (p *DirProject) OutputDirectory() string { return p.OutputDir }
func (p *DirProject) BaseDirectory() string   { return p.BaseDir }
func (p *DirProject) Classpath() string       { return p.ClasspathStr }
func (p *DirProject) StaleFile() string       { return p.StaleFilePath }

// AddGeneratedSourceRoot records the directory.
func (p *DirProject) AddGeneratedSourceRoot(dir string) {
	p.sourceRoots = append(p.sourceRoots, dir)
	logging.NewEntry("generate").Debugf("registered generated source root %s", dir)
}

// AddResourceDirectory records the directory.
func (p *DirProject) AddResourceDirectory(dir string) {
	p.resourceDirs = append(p.resourceDirs, dir)
	logging.NewEntry("generate").Debugf("registered resource directory %s", dir)
}

// GeneratedSourceRoots returns the registered source roots.
func (p *DirProject) GeneratedSourceRoots() []string { return p.sourceRoots }

// ResourceDirectories returns the registered resource directories.
func (p *DirProject) ResourceDirectories() []string { return p.resourceDirs }
