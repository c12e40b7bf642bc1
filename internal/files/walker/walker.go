package walker

import (
	"iter"
	"path/filepath"
	"slices"

	"github.com/vvka-141/treetidy/internal/files/filesystem"
	"github.com/vvka-141/treetidy/internal/logging"
	"github.com/vvka-141/treetidy/pkg/treetidy"
)

// Walker traverses a directory tree through a filesystem provider.
// Traversal order is deterministic: a directory is yielded before its
// children, and children are visited in lexicographic order.
type Walker struct {
	fsProvider filesystem.FileSystemProvider
	skip       SkipFunc
	logger     treetidy.Logger
}

// Option configures a Walker.
type Option func(*Walker)

// WithSkip sets the predicate deciding which subtrees are pruned.
func WithSkip(skip SkipFunc) Option {
	return func(w *Walker) {
		if skip != nil {
			w.skip = skip
		}
	}
}

// WithLogger sets the logger used for diagnostics about unreadable directories.
func WithLogger(logger treetidy.Logger) Option {
	return func(w *Walker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a Walker over fsProvider.
// Panics if fsProvider is nil.
func New(fsProvider filesystem.FileSystemProvider, opts ...Option) *Walker {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	w := &Walker{
		fsProvider: fsProvider,
		skip:       Never,
		logger:     logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk returns a sequence of (directory path, file names) pairs covering
// root and every reachable subdirectory not pruned by the skip predicate.
// Directory paths are root joined with the relative path; file names are
// sorted. The root itself is never pruned.
func (w *Walker) Walk(root string) iter.Seq2[string, []string] {
	return func(yield func(string, []string) bool) {
		w.visit(root, nil, yield)
	}
}

// visit lists dir and recurses into its subdirectories. It returns false
// once the consumer has stopped iterating.
func (w *Walker) visit(dir string, rel []string, yield func(string, []string) bool) bool {
	entries, err := w.fsProvider.ReadDir(dir)
	if err != nil {
		w.logger.Verbose("Skipping unreadable directory %s: %v", dir, err)
		return true
	}

	var files, subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}
	slices.Sort(files)
	slices.Sort(subdirs)

	if !yield(dir, files) {
		return false
	}

	for _, name := range subdirs {
		childRel := append(slices.Clone(rel), name)
		if w.skip(childRel) {
			w.logger.Verbose("Skipping %s", filepath.Join(dir, name))
			continue
		}
		if !w.visit(filepath.Join(dir, name), childRel, yield) {
			return false
		}
	}
	return true
}

// Files returns a sequence of file paths, flattening Walk.
func (w *Walker) Files(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for dir, names := range w.Walk(root) {
			for _, name := range names {
				if !yield(filepath.Join(dir, name)) {
					return
				}
			}
		}
	}
}
