package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/datatug/arcpost/pkg/arcfiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentReader(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.zip")
	require.NoError(t, os.WriteFile(source, []byte("container bytes"), 0644))

	reader := NewContentReader()

	t.Run("reads_from_source", func(t *testing.T) {
		data, err := reader.ReadContent(context.Background(), arcfiles.Entry{Name: "a.zip", Source: source})
		require.NoError(t, err)
		assert.Equal(t, []byte("container bytes"), data)
	})

	t.Run("no_source", func(t *testing.T) {
		_, err := reader.ReadContent(context.Background(), arcfiles.Entry{Name: "a.zip"})
		assert.ErrorIs(t, err, ErrNoSource)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := reader.ReadContent(ctx, arcfiles.Entry{Name: "a.zip", Source: source})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := reader.ReadContent(context.Background(), arcfiles.Entry{
			Name: "b.zip", Source: filepath.Join(dir, "none.zip"),
		})
		assert.Error(t, err)
	})
}
