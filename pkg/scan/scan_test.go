package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func writeFile(t *testing.T, name string, size int) {
	t.Helper()
	assert.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	assert.NoError(t, os.WriteFile(name, make([]byte, size), 0644))
}

func TestBatch_LooseFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "photos.zip")
	writeFile(t, file, 10)

	entries, err := Batch([]string{file})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, "photos.zip", entries[0].Name)
	assert.Equal(t, int64(10), entries[0].Size)
	assert.Equal(t, "", entries[0].Path)
	assert.Equal(t, file, entries[0].Source)
}

func TestBatch_DirectoryTree(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "season1")
	writeFile(t, filepath.Join(root, "ep01.mkv"), 3)
	writeFile(t, filepath.Join(root, "extras", "bonus.mkv"), 2)

	entries, err := Batch([]string{root})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(entries))

	byPath := map[string]int64{}
	for _, e := range entries {
		byPath[e.Path] = e.Size
		assert.NotEqual(t, "", e.Source)
	}
	assert.Equal(t, int64(3), byPath["/season1/ep01.mkv"])
	assert.Equal(t, int64(2), byPath["/season1/extras/bonus.mkv"])
}

func TestBatch_MixedArguments(t *testing.T) {
	dir := t.TempDir()
	loose := filepath.Join(dir, "movie.rar")
	writeFile(t, loose, 5)
	root := filepath.Join(dir, "docs")
	writeFile(t, filepath.Join(root, "readme.txt"), 1)

	entries, err := Batch([]string{loose, root})
	assert.NoError(t, err)
	assert.Equal(t, 2, len(entries))
	assert.Equal(t, "movie.rar", entries[0].Name)
	assert.Equal(t, "/docs/readme.txt", entries[1].Path)
}

func TestBatch_MissingPath(t *testing.T) {
	_, err := Batch([]string{filepath.Join(t.TempDir(), "nope")})
	assert.Error(t, err)
}
