package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
)

type zipDecoder struct{}

// NewZipDecoder returns the default zip collaborator, backed by the
// standard library reader over an in-memory container.
func NewZipDecoder() ZipDecoder {
	return zipDecoder{}
}

func (zipDecoder) List(data []byte) ([]string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open zip index: %w", err)
	}
	paths := make([]string, 0, len(r.File))
	for _, f := range r.File {
		paths = append(paths, f.Name)
	}
	return paths, nil
}
