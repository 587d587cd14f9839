package extract

import (
	"context"
	"errors"

	"github.com/datatug/arcpost/pkg/arcfiles"
	"github.com/datatug/arcpost/pkg/fsutils"
)

// ErrNoSource is returned when an entry carries no local filesystem
// location to read container bytes from.
var ErrNoSource = errors.New("entry has no source location")

type osContentReader struct{}

// NewContentReader returns the default content reader, which loads an
// entry's container bytes from its scanned filesystem location.
func NewContentReader() ContentReader {
	return osContentReader{}
}

func (osContentReader) ReadContent(ctx context.Context, entry arcfiles.Entry) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if entry.Source == "" {
		return nil, ErrNoSource
	}
	return fsutils.ReadFileData(entry.Source, 0)
}
