package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func baseNames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func TestDiscoverFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.jpg")
	touch(t, dir, "b.pdf")
	touch(t, dir, "c.png")
	touch(t, dir, "notes.txt")
	touch(t, dir, "archive.zip")

	files, skipped, err := Discover(dir, nil)

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.jpg", "b.pdf", "c.png"}, baseNames(files))
	assert.Empty(t, skipped)
}

func TestDiscoverSkipsDotfilesAndDirs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, ".hidden.jpg")
	touch(t, dir, "visible.jpg")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.jpg"), 0o755))

	files, _, err := Discover(dir, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"visible.jpg"}, baseNames(files))
}

func TestDiscoverDedupesCaseInsensitively(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "Receipt.JPG")
	touch(t, dir, "receipt.jpg")

	files, skipped, err := Discover(dir, nil)

	require.NoError(t, err)
	assert.Len(t, files, 1)
	assert.Len(t, skipped, 1)
	assert.NotEqual(t, baseNames(files)[0], skipped[0])
}

func TestDiscoverMissingDir(t *testing.T) {
	_, _, err := Discover(filepath.Join(t.TempDir(), "absent"), nil)

	assert.Error(t, err)
}
