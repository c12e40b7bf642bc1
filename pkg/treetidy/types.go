package treetidy

import (
	"path/filepath"
	"strings"
)

// FileEntry is a file discovered during a walk.
type FileEntry struct {
	Path      string // Path as produced by the walk (root joined with relative path)
	Name      string // Base filename including extension
	Extension string // Extension including the leading dot, or "" if none
}

// NewFileEntry derives name and extension from path. Leading dots of the
// name are not an extension: ".swift" has none.
func NewFileEntry(path string) FileEntry {
	name := filepath.Base(path)
	return FileEntry{
		Path:      path,
		Name:      name,
		Extension: filepath.Ext(strings.TrimLeft(name, ".")),
	}
}

// HasExtension reports whether the entry matches one of exts. With fold
// the extension is compared case-insensitively; otherwise the name must
// end with ext exactly.
func (e FileEntry) HasExtension(exts []string, fold bool) bool {
	for _, ext := range exts {
		if fold {
			if strings.EqualFold(e.Extension, ext) {
				return true
			}
			continue
		}
		if strings.HasSuffix(e.Name, ext) {
			return true
		}
	}
	return false
}

// DuplicateGroup collects the paths of tracked files sharing a basename.
// Paths are in walk order.
type DuplicateGroup struct {
	Name  string
	Paths []string
}

// IsDuplicate reports whether the group has more than one member.
func (g DuplicateGroup) IsDuplicate() bool {
	return len(g.Paths) > 1
}

// Action is the resolution of one duplicate group: the canonical file stays,
// the others are relocated into the backup mirror.
type Action struct {
	Name string
	Keep string
	Move []string
}

// Relocation is the outcome of moving one duplicate.
type Relocation struct {
	Source      string
	Destination string
	Err         error
}

// Failed reports whether the move did not happen.
func (r Relocation) Failed() bool {
	return r.Err != nil
}

// CleanupSummary aggregates a duplicate finder run.
type CleanupSummary struct {
	Groups      int
	Moved       int
	Failed      int
	Relocations []Relocation
	DryRun      bool
}

// PlaceholderMatch is a single editor placeholder occurrence.
type PlaceholderMatch struct {
	Path    string
	Line    int // 1-based line of the match start
	Snippet string
	Pattern string // Name of the pattern that matched
}

// FileResult is the outcome of scanning one file. A file that could not be
// read has a non-empty SkipReason and no matches.
type FileResult struct {
	Path       string
	SkipReason string
	Matches    []PlaceholderMatch
}

// Skipped reports whether the file was not scanned.
func (r FileResult) Skipped() bool {
	return r.SkipReason != ""
}

// ScanResult aggregates a placeholder scan.
type ScanResult struct {
	Matches      []PlaceholderMatch // Sorted by path, line, snippet
	FilesScanned int
	Skipped      []FileResult
}

// Clean reports whether no placeholder was found.
func (r ScanResult) Clean() bool {
	return len(r.Matches) == 0
}
