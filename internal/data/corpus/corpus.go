package corpus

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Rami-ben-jouira/rag-agent-project/internal/domain/medical"
)

type LoadErrorCode string

const (
	LoadErrorNotFound          LoadErrorCode = "not_found"
	LoadErrorRead              LoadErrorCode = "read_failed"
	LoadErrorMalformed         LoadErrorCode = "malformed"
	LoadErrorUnsupportedFormat LoadErrorCode = "unsupported_format"
)

// LoadError is fatal to an ingestion run: nothing has been written when it is returned.
type LoadError struct {
	Code  LoadErrorCode
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "corpus: load failed"
	}
	switch e.Code {
	case LoadErrorNotFound:
		return fmt.Sprintf("corpus: file %s not found", e.Path)
	case LoadErrorRead:
		return fmt.Sprintf("corpus: read %s: %v", e.Path, e.Cause)
	case LoadErrorMalformed:
		return fmt.Sprintf("corpus: invalid document in %s: %v", e.Path, e.Cause)
	case LoadErrorUnsupportedFormat:
		return fmt.Sprintf("corpus: unsupported format %q for %s (supported: .json, .yaml, .yml)", filepath.Ext(e.Path), e.Path)
	default:
		return fmt.Sprintf("corpus: load %s failed", e.Path)
	}
}

func (e *LoadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// Load reads a corpus of disease records. The format is picked by file
// extension (.json or none, .yaml, .yml). The document must be a sequence of
// records.
func Load(path string) ([]medical.DiseaseRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Code: LoadErrorNotFound, Path: path, Cause: err}
		}
		return nil, &LoadError{Code: LoadErrorRead, Path: path, Cause: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(path, data)
	case ".json", "":
		return decodeJSON(path, data)
	default:
		return nil, &LoadError{Code: LoadErrorUnsupportedFormat, Path: path}
	}
}

func decodeJSON(path string, data []byte) ([]medical.DiseaseRecord, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &LoadError{Code: LoadErrorMalformed, Path: path, Cause: errors.New("expected a JSON array of records")}
	}
	var records []medical.DiseaseRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, &LoadError{Code: LoadErrorMalformed, Path: path, Cause: err}
	}
	return records, nil
}

func decodeYAML(path string, data []byte) ([]medical.DiseaseRecord, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &LoadError{Code: LoadErrorMalformed, Path: path, Cause: err}
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.SequenceNode {
		return nil, &LoadError{Code: LoadErrorMalformed, Path: path, Cause: errors.New("expected a YAML sequence of records")}
	}
	var records []medical.DiseaseRecord
	if err := root.Content[0].Decode(&records); err != nil {
		return nil, &LoadError{Code: LoadErrorMalformed, Path: path, Cause: err}
	}
	return records, nil
}
