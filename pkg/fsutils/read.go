package fsutils

import (
	"io"
	"os"
)

// ReadFileData reads file content with an optional cap: max == 0 reads
// the whole file, max > 0 reads at most the first max bytes, max < 0
// reads at most the last |max| bytes.
func ReadFileData(filename string, max int64) ([]byte, error) {
	if max == 0 {
		return os.ReadFile(filename)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	if max > 0 {
		data, err := io.ReadAll(io.LimitReader(file, max))
		if err != nil {
			return nil, err
		}
		return data, nil
	}

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	absMax := -max
	if absMax > stat.Size() {
		absMax = stat.Size()
	}
	if _, err = file.Seek(-absMax, io.SeekEnd); err != nil {
		return nil, err
	}
	return io.ReadAll(file)
}
