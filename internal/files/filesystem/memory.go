package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content []byte
	info    *memoryFileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Read failures can be injected per path to exercise error tolerance.
type MemoryFileSystem struct {
	entries      map[string]*memoryEntry // absolute path -> entry
	root         string
	readDirErrs  map[string]error
	readFileErrs map[string]error
	renameErrs   map[string]error
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries:      make(map[string]*memoryEntry),
		root:         root,
		readDirErrs:  make(map[string]error),
		readFileErrs: make(map[string]error),
		renameErrs:   make(map[string]error),
	}
	mfs.entries[root] = newDirEntry(root)

	return mfs
}

// Root returns the root directory of the virtual filesystem.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.abs(filePath)
	contentBytes := []byte(content)

	mfs.entries[absPath] = &memoryEntry{
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: time.Now(),
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an empty directory.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	absPath := mfs.abs(dirPath)
	if _, exists := mfs.entries[absPath]; !exists {
		mfs.entries[absPath] = newDirEntry(absPath)
	}
	mfs.ensureDirectoriesExist(absPath)
}

// FailReadDir makes ReadDir on dirPath return err.
func (mfs *MemoryFileSystem) FailReadDir(dirPath string, err error) {
	mfs.readDirErrs[mfs.abs(dirPath)] = err
}

// FailReadFile makes ReadFile on filePath return err.
func (mfs *MemoryFileSystem) FailReadFile(filePath string, err error) {
	mfs.readFileErrs[mfs.abs(filePath)] = err
}

// FailRename makes Rename of oldPath return err.
func (mfs *MemoryFileSystem) FailRename(oldPath string, err error) {
	mfs.renameErrs[mfs.abs(oldPath)] = err
}

// Exists reports whether a file or directory exists at p.
func (mfs *MemoryFileSystem) Exists(p string) bool {
	_, ok := mfs.entries[mfs.abs(p)]
	return ok
}

// abs resolves p against the root and normalizes it to forward slashes.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == filePath {
		return
	}
	if _, exists := mfs.entries[dir]; exists {
		return
	}

	mfs.entries[dir] = newDirEntry(dir)
	mfs.ensureDirectoriesExist(dir)
}

func newDirEntry(absPath string) *memoryEntry {
	return &memoryEntry{
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	absPath := mfs.abs(dirPath)
	if err, ok := mfs.readDirErrs[absPath]; ok {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %w", &fs.PathError{Op: "readdir", Path: dirPath, Err: fs.ErrNotExist})
	}
	if !entry.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for p, e := range mfs.entries {
		if p != absPath && path.Dir(p) == absPath {
			result = append(result, e.info)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})

	return result, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	absPath := mfs.abs(filePath)
	if err, ok := mfs.readFileErrs[absPath]; ok {
		return nil, err
	}

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if entry.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}

	return entry.content, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	entry, exists := mfs.entries[mfs.abs(statPath)]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return entry.info, nil
}

// MkdirAll implements FileSystemProvider.MkdirAll
func (mfs *MemoryFileSystem) MkdirAll(dirPath string) error {
	absPath := mfs.abs(dirPath)
	for p := absPath; ; p = path.Dir(p) {
		if entry, exists := mfs.entries[p]; exists && !entry.info.isDir {
			return fmt.Errorf("mkdir %s: not a directory: %s", dirPath, p)
		}
		if p == path.Dir(p) {
			break
		}
	}

	mfs.AddDir(absPath)
	return nil
}

// Rename implements FileSystemProvider.Rename. Only files can be renamed.
func (mfs *MemoryFileSystem) Rename(oldPath, newPath string) error {
	src := mfs.abs(oldPath)
	dst := mfs.abs(newPath)
	if err, ok := mfs.renameErrs[src]; ok {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: err}
	}

	entry, exists := mfs.entries[src]
	if !exists {
		return &fs.PathError{Op: "rename", Path: oldPath, Err: fs.ErrNotExist}
	}
	if entry.info.isDir {
		return fmt.Errorf("rename %s: directories are not supported", oldPath)
	}

	parent, exists := mfs.entries[path.Dir(dst)]
	if !exists || !parent.info.isDir {
		return &fs.PathError{Op: "rename", Path: newPath, Err: fs.ErrNotExist}
	}

	delete(mfs.entries, src)
	entry.info.name = path.Base(dst)
	mfs.entries[dst] = entry
	return nil
}

// Paths returns every file (not directory) path under the root, sorted.
func (mfs *MemoryFileSystem) Paths() []string {
	var paths []string
	for p, e := range mfs.entries {
		if !e.info.isDir && strings.HasPrefix(p, mfs.root) {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	return paths
}
