// Package archive bundles generated artifacts into a single downloadable ZIP.
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// Artifact is one named output of a batch run: either a rendered article or
// a captured per-row error.
type Artifact struct {
	Name    string
	Content []byte
}

// BuildZip packages artifacts into a ZIP, entries in slice order. Names are
// index-prefixed by the orchestrator, so row ordering stays recoverable.
func BuildZip(artifacts []Artifact) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	for _, a := range artifacts {
		entry, err := w.Create(a.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to create zip entry %s: %w", a.Name, err)
		}
		if _, err := entry.Write(a.Content); err != nil {
			return nil, fmt.Errorf("failed to write zip entry %s: %w", a.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip: %w", err)
	}
	return buf.Bytes(), nil
}
