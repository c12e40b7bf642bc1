package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the set of filesystem operations the tree tools need.
// Walks only list and read; the duplicate finder additionally creates
// directories and moves files.
type FileSystemProvider interface {
	// ReadDir returns the entries of a directory sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// ReadFile reads a file's full content. The underlying handle is
	// released before ReadFile returns, whether or not the read succeeded.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string) error

	// Rename moves a file to a new path. The destination directory must exist.
	Rename(oldPath, newPath string) error
}
