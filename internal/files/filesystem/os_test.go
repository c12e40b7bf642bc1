package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_ReadFile(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "View.swift")
	expected := "struct View {}"
	require.NoError(t, os.WriteFile(filePath, []byte(expected), 0644))

	fs := NewOSFileSystem()

	data, err := fs.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, expected, string(data))
}

func TestOSFileSystem_ReadFile_Missing(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.ReadFile(filepath.Join(t.TempDir(), "missing.swift"))
	assert.True(t, os.IsNotExist(err))
}

func TestOSFileSystem_ReadDir_Sorted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.swift"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.swift"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	fs := NewOSFileSystem()
	entries, err := fs.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a.swift", "b.swift", "sub"}, names)
}

func TestOSFileSystem_ReadDir_Missing(t *testing.T) {
	fs := NewOSFileSystem()

	_, err := fs.ReadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestOSFileSystem_Stat(t *testing.T) {
	dir := t.TempDir()
	fs := NewOSFileSystem()

	info, err := fs.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOSFileSystem_MkdirAllAndRename(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "App", "Model.swift")
	require.NoError(t, os.MkdirAll(filepath.Dir(src), 0755))
	require.NoError(t, os.WriteFile(src, []byte("model"), 0644))

	fs := NewOSFileSystem()
	dstDir := filepath.Join(dir, "backup", "App")
	require.NoError(t, fs.MkdirAll(dstDir))

	dst := filepath.Join(dstDir, "Model.swift")
	require.NoError(t, fs.Rename(src, dst))

	_, err := os.Stat(src)
	assert.True(t, os.IsNotExist(err))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "model", string(data))
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.py")
	dst := filepath.Join(dir, "b.py")
	require.NoError(t, os.WriteFile(src, []byte("print(1)"), 0600))

	require.NoError(t, copyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "print(1)", string(data))

	srcInfo, _ := os.Stat(src)
	dstInfo, _ := os.Stat(dst)
	assert.Equal(t, srcInfo.Mode().Perm(), dstInfo.Mode().Perm())
}

func TestCopyFile_TimestampFailureKeepsCopy(t *testing.T) {
	orig := chtimes
	chtimes = func(string, time.Time, time.Time) error { return errors.New("read-only mount") }
	t.Cleanup(func() { chtimes = orig })

	dir := t.TempDir()
	src := filepath.Join(dir, "a.swift")
	dst := filepath.Join(dir, "b.swift")
	require.NoError(t, os.WriteFile(src, []byte("struct A {}"), 0644))

	require.NoError(t, copyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "struct A {}", string(data))
}
