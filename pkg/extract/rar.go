package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/nwaples/rardecode"
)

// The decoder setup is resolved once on first use and read-only after,
// so concurrent extractions can share it without coordination.
var (
	rarSetupOnce sync.Once
	rarPassword  string
)

type rarDecoder struct {
	password string
}

// NewRarDecoder returns the default rar collaborator. An optional
// password for encrypted containers is taken from ARCPOST_RAR_PASSWORD
// on first use.
func NewRarDecoder() RarDecoder {
	rarSetupOnce.Do(func() {
		rarPassword = os.Getenv("ARCPOST_RAR_PASSWORD")
	})
	return rarDecoder{password: rarPassword}
}

func (d rarDecoder) Headers(data []byte) ([]FileHeader, error) {
	r, err := rardecode.NewReader(bytes.NewReader(data), d.password)
	if err != nil {
		return nil, fmt.Errorf("failed to open rar container: %w", err)
	}
	var headers []FileHeader
	for {
		h, err := r.Next()
		if errors.Is(err, io.EOF) {
			return headers, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read rar header: %w", err)
		}
		headers = append(headers, FileHeader{Name: h.Name, IsDir: h.IsDir})
	}
}
