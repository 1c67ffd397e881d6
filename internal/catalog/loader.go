package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

// LoadError codes.
const (
	ErrCodeNotFound   = "CATALOG_NOT_FOUND"
	ErrCodeNoFiles    = "CATALOG_NO_FILES"
	ErrCodeLoadFailed = "CATALOG_LOAD_FAILED"
	ErrCodeInvalid    = "CATALOG_INVALID"
)

// LoadError reports a catalog loading failure with a machine code.
type LoadError struct {
	Code    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Load reads and validates all CUE files in a directory as one catalog.
// Uses the CUE SDK's Go API directly (not a CLI subprocess); schema
// violations surface with CUE's own file positions.
func Load(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog directory not found: %s", dir)}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing catalog directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}

	cueFiles, err := findCUEFiles(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("scanning directory: %v", err)}
	}
	if len(cueFiles) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("building CUE value: %v", err)}
	}

	catalog := &Catalog{}
	if servicesVal := value.LookupPath(cue.ParsePath("services")); servicesVal.Exists() {
		if err := servicesVal.Decode(&catalog.Services); err != nil {
			return nil, &LoadError{Code: ErrCodeInvalid, Message: fmt.Sprintf("decoding services: %v", err)}
		}
	}
	if templatesVal := value.LookupPath(cue.ParsePath("templates")); templatesVal.Exists() {
		if err := templatesVal.Decode(&catalog.Templates); err != nil {
			return nil, &LoadError{Code: ErrCodeInvalid, Message: fmt.Sprintf("decoding templates: %v", err)}
		}
	}
	if len(catalog.Services) == 0 {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: "catalog defines no services"}
	}
	if err := catalog.Validate(); err != nil {
		return nil, &LoadError{Code: ErrCodeInvalid, Message: err.Error()}
	}
	return catalog, nil
}

// findCUEFiles walks the directory for .cue files, skipping hidden
// directories and cue.mod.
func findCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if name != "." && (strings.HasPrefix(name, ".") || name == "cue.mod") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, ".cue") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}
