package generate

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/yogeshrao/jaxb2-maven-plugin/internal/models"
	"github.com/yogeshrao/jaxb2-maven-plugin/internal/source"
)

// schemaExtensions maps a source content type to the file extension used
// when scanning schema directories.
var schemaExtensions = map[models.SourceContentType]string{
	models.XMLSchema: ".xsd",
	models.DTD:       ".dtd",
	models.WSDL:      ".wsdl",
}

// ResolveSources collects schema inputs: every matching file under the
// given directories, plus explicitly configured locators (local paths,
// archive entries, or remote URIs). Directory scans are sorted so the
// argument vector stays deterministic. Missing directories are skipped;
// an overall empty result is the assembler's concern, not this one's.
func ResolveSources(fs afero.Fs, client *http.Client, dirs, locators []string, sourceType models.SourceContentType) ([]source.Location, error) {
	ext, ok := schemaExtensions[sourceType]
	if !ok {
		return nil, fmt.Errorf("unsupported source type %q", sourceType)
	}

	files, err := scanDirs(fs, dirs, ext)
	if err != nil {
		return nil, err
	}

	locations := make([]source.Location, 0, len(files)+len(locators))
	for _, f := range files {
		locations = append(locations, source.NewLocalFile(fs, f))
	}
	for _, locator := range locators {
		loc, err := source.Parse(fs, client, locator)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// ResolveBindings collects XJB customization files from the given
// directories plus explicitly configured files, in deterministic order.
func ResolveBindings(fs afero.Fs, dirs, files []string) ([]string, error) {
	found, err := scanDirs(fs, dirs, ".xjb")
	if err != nil {
		return nil, err
	}
	return append(found, files...), nil
}

func scanDirs(fs afero.Fs, dirs []string, ext string) ([]string, error) {
	var found []string
	for _, dir := range dirs {
		if exists, _ := afero.DirExists(fs, dir); !exists {
			continue
		}

		err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && strings.EqualFold(filepath.Ext(path), ext) {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
		}
	}
	sort.Strings(found)
	return found, nil
}
