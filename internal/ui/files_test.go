package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSavePath(t *testing.T) {
	dir := t.TempDir()

	path, exists := jsonSavePath(filepath.Join(dir, "drawing.JSON"))
	assert.Equal(t, filepath.Join(dir, "drawing.JSON"), path)
	assert.False(t, exists)

	path, exists = jsonSavePath(filepath.Join(dir, "sketch"))
	assert.Equal(t, filepath.Join(dir, "sketch.json"), path)
	assert.False(t, exists)

	taken := filepath.Join(dir, "taken.json")
	require.NoError(t, os.WriteFile(taken, []byte(`{"figuras":[]}`), 0o644))
	path, exists = jsonSavePath(filepath.Join(dir, "taken"))
	assert.Equal(t, taken, path)
	assert.True(t, exists)
}
