package extract

import (
	"context"

	"github.com/datatug/arcpost/pkg/arcfiles"
)

// ContentReader loads the raw bytes of an entry's container file.
type ContentReader interface {
	ReadContent(ctx context.Context, entry arcfiles.Entry) ([]byte, error)
}

// ZipDecoder lists the internal paths of a zip container. Directory
// entries end in the path separator. Order follows the zip's own index.
type ZipDecoder interface {
	List(data []byte) ([]string, error)
}

// FileHeader is one member header as reported by a rar decoder.
type FileHeader struct {
	Name  string
	IsDir bool
}

// RarDecoder lists the member headers of a rar container.
type RarDecoder interface {
	Headers(data []byte) ([]FileHeader, error)
}
