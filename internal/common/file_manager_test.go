package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManager_EnsureDirectory(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, fm.EnsureDirectory(dir, 0755))
	assert.DirExists(t, dir)

	// Existing directories are accepted as-is.
	require.NoError(t, fm.EnsureDirectory(dir, 0755))

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	err := fm.EnsureDirectory(file, 0755)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "path", validationErr.Field)
}

func TestFileManager_CheckWritable(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	dir := t.TempDir()

	assert.NoError(t, fm.CheckWritable(dir))
	assert.Error(t, fm.CheckWritable(filepath.Join(dir, "missing")))

	if os.Geteuid() == 0 {
		return
	}
	readonly := filepath.Join(dir, "readonly")
	require.NoError(t, os.Mkdir(readonly, 0555))
	t.Cleanup(func() { _ = os.Chmod(readonly, 0755) })
	assert.Error(t, fm.CheckWritable(readonly))
}

func TestFileManager_ReadWrite(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, fm.WriteFile(path, []byte("storage: {}\n"), DefaultFileWriteOptions()))

	data, err := fm.ReadFile(path, FileReadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "storage: {}\n", string(data))

	_, err = fm.ReadFile(path, FileReadOptions{MaxSize: 4})
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = fm.ReadFile(filepath.Dir(path), FileReadOptions{})
	assert.Error(t, err)

	_, err = fm.ReadFile(filepath.Join(t.TempDir(), "missing"), FileReadOptions{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileManager_RemoveAll(t *testing.T) {
	fm := NewFileManager(zerolog.Nop())
	root := t.TempDir()
	dir := filepath.Join(root, "db", "000001")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CURRENT"), []byte("x"), 0644))

	require.NoError(t, fm.RemoveAll(filepath.Join(root, "db")))
	assert.NoDirExists(t, filepath.Join(root, "db"))
	assert.NoError(t, fm.RemoveAll(filepath.Join(root, "db")))
}
