package target

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Source resolves the current redirect target.
type Source interface {
	CurrentTarget() (string, error)
}

// ErrNoTarget - the document parsed but carries no usable target.
var ErrNoTarget = errors.New("current_target missing or empty")

// redirectDoc is the on-disk configuration document. Only one field is
// recognized; anything else in the file is ignored.
type redirectDoc struct {
	CurrentTarget string `json:"current_target"`
}

// FileSource reads the redirect target from a JSON file.
type FileSource struct {
	path string
}

// NewFileSource returns a FileSource over the given document path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// CurrentTarget opens and parses the document fresh on every call.
func (s *FileSource) CurrentTarget() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("read target file: %w", err)
	}

	var doc redirectDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("parse target file: %w", err)
	}

	tgt := strings.TrimSpace(doc.CurrentTarget)
	if tgt == "" {
		return "", ErrNoTarget
	}
	return tgt, nil
}
