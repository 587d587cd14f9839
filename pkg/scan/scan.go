// Package scan turns command-line path arguments into the flat entry
// batch the grouping stage consumes, mimicking how a browser drop
// exposes individually picked files and whole directory trees.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/datatug/arcpost/pkg/arcfiles"
)

// Batch scans the given paths. A plain file becomes a loose entry with
// no drop-relative path; a directory becomes a dropped tree whose
// members get paths of the form "/<dir-base>/<relative path>".
func Batch(paths []string) ([]arcfiles.Entry, error) {
	var entries []arcfiles.Entry
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			entries = append(entries, arcfiles.Entry{
				Name:   info.Name(),
				Size:   info.Size(),
				Source: p,
			})
			continue
		}
		tree, err := walkTree(p)
		if err != nil {
			return nil, err
		}
		entries = append(entries, tree...)
	}
	return entries, nil
}

func walkTree(dir string) ([]arcfiles.Entry, error) {
	base := filepath.Base(filepath.Clean(dir))
	var entries []arcfiles.Entry
	err := fs.WalkDir(os.DirFS(dir), ".", func(rel string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		entries = append(entries, arcfiles.Entry{
			Name:   d.Name(),
			Size:   info.Size(),
			Path:   arcfiles.Separator + path.Join(base, rel),
			Source: filepath.Join(dir, filepath.FromSlash(rel)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return entries, nil
}
