package config

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/models"
)

// GetOutputDir returns the directory XJC generates sources into.
func GetOutputDir() string {
	return viper.GetString("output_dir")
}

// GetBaseDir returns the directory paths are relativized against.
func GetBaseDir() string {
	return viper.GetString("base_dir")
}

// GetStaleFile returns the marker file path.
func GetStaleFile() string {
	return viper.GetString("stale_file")
}

// GetClasspath returns the opaque classpath string handed to the tool.
func GetClasspath() string {
	return viper.GetString("classpath")
}

// GetToolCommand returns the XJC command name or path.
func GetToolCommand() string {
	return viper.GetString("tool.command")
}

// GetSourceDirs returns the directories scanned for schema files.
func GetSourceDirs() []string {
	return viper.GetStringSlice("sources.dirs")
}

// GetSourceLocators returns explicitly configured schema locators
// (local paths, archive entries, or http(s) URIs).
func GetSourceLocators() []string {
	return viper.GetStringSlice("sources.locations")
}

// GetBindingDirs returns the directories scanned for XJB files.
func GetBindingDirs() []string {
	return viper.GetStringSlice("bindings.dirs")
}

// GetBindingFiles returns explicitly configured XJB files.
func GetBindingFiles() []string {
	return viper.GetStringSlice("bindings.files")
}

// GetSourceType returns the configured schema content type.
func GetSourceType() models.SourceContentType {
	return models.SourceContentType(viper.GetString("xjc.source_type"))
}

// ShouldClearOutputDir reports whether the output directory is cleared
// before each run.
func ShouldClearOutputDir() bool {
	return viper.GetBool("clear_output_dir")
}

// ShouldFailOnNoSchemas reports whether an empty schema list is fatal.
func ShouldFailOnNoSchemas() bool {
	return viper.GetBool("fail_on_no_schemas")
}

// ShouldGenerateEpisode reports whether an episode file is generated.
func ShouldGenerateEpisode() bool {
	return viper.GetBool("generate_episode")
}

// GetEpisodeFile returns the episode file path, defaulting to the
// standard location under the output directory.
func GetEpisodeFile() string {
	if f := viper.GetString("episode_file"); f != "" {
		return f
	}
	return filepath.Join(GetOutputDir(), "META-INF", "sun-jaxb.episode")
}

// GetCatalog returns the catalog file path, if any.
func GetCatalog() string {
	return viper.GetString("catalog")
}

// GetXSDPathWithinArtifact returns the relative packaging path schemas
// are copied into after generation, or empty to skip the copy.
func GetXSDPathWithinArtifact() string {
	return viper.GetString("xsd_path_within_artifact")
}

// GetArtifactOutputDir returns the packaging output root.
func GetArtifactOutputDir() string {
	return viper.GetString("artifact_output_dir")
}

// GetActiveProxy returns the configured proxy, or nil when none is set.
func GetActiveProxy() *models.ProxySpec {
	host := viper.GetString("proxy.host")
	if host == "" {
		return nil
	}
	return &models.ProxySpec{
		Username: viper.GetString("proxy.username"),
		Password: viper.GetString("proxy.password"),
		Host:     host,
		Port:     viper.GetInt("proxy.port"),
	}
}

// GetProbeTimeout returns the timeout for remote timestamp probes. Zero
// means unbounded, matching the original XJC plugin behavior.
func GetProbeTimeout() time.Duration {
	return viper.GetDuration("staleness.probe_timeout")
}

// NewHTTPClient builds the client used for remote source probes.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: GetProbeTimeout()}
}

// NewGenerationRequest builds a request from the current configuration.
// Sources and bindings are resolved separately and filled in by the
// caller.
func NewGenerationRequest() *models.GenerationRequest {
	return &models.GenerationRequest{
		SourceType:                GetSourceType(),
		NoPackageLevelAnnotations: viper.GetBool("xjc.no_package_level_annotations"),
		LaxSchemaValidation:       viper.GetBool("xjc.lax_schema_validation"),
		Verbose:                   viper.GetBool("xjc.verbose"),
		Quiet:                     viper.GetBool("xjc.quiet"),
		EnableIntrospection:       viper.GetBool("xjc.enable_introspection"),
		Extension:                 viper.GetBool("xjc.extension"),
		ReadOnly:                  viper.GetBool("xjc.read_only"),
		NoGeneratedHeaderComments: viper.GetBool("xjc.no_header"),
		AddGeneratedAnnotation:    viper.GetBool("xjc.mark_generated"),
		Encoding:                  viper.GetString("xjc.encoding"),
		PackageName:               viper.GetString("xjc.package"),
		Target:                    viper.GetString("xjc.target"),
		OutputDir:                 GetOutputDir(),
		Classpath:                 GetClasspath(),
		Proxy:                     GetActiveProxy(),
		GenerateEpisode:           ShouldGenerateEpisode(),
		EpisodeFile:               GetEpisodeFile(),
		Catalog:                   GetCatalog(),
		ExtraArguments:            viper.GetStringSlice("xjc.arguments"),
		BaseDir:                   GetBaseDir(),
	}
}
