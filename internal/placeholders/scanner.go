package placeholders

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/vvka-141/treetidy/internal/config"
	"github.com/vvka-141/treetidy/internal/files/filesystem"
	"github.com/vvka-141/treetidy/internal/files/walker"
	"github.com/vvka-141/treetidy/internal/logging"
	"github.com/vvka-141/treetidy/pkg/treetidy"
)

// Settings is the explicit input of a scan.
type Settings struct {
	Root       string
	Extensions []string        // Scanned extensions, case-insensitive
	Skip       walker.SkipFunc // Pruned subtrees
}

// Scanner walks a tree and reports placeholder occurrences.
// It never modifies the tree.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	logger     treetidy.Logger
}

// NewScanner creates a Scanner reading through fsProvider.
// Panics if fsProvider is nil. A nil logger discards diagnostics.
func NewScanner(fsProvider filesystem.FileSystemProvider, logger treetidy.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Scanner{fsProvider: fsProvider, logger: logger}
}

// Settings derives scan settings for root from cfg. With
// respect_gitignore enabled, directories ignored by root/.gitignore are
// pruned as well.
func (s *Scanner) Settings(cfg *config.Config, root string) (Settings, error) {
	skip := walker.ComponentEquals(cfg.Placeholders.Skip...)
	if cfg.Placeholders.RespectGitignore {
		ignored, err := walker.GitignoreSkip(s.fsProvider, root)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read .gitignore: %w", err)
		}
		skip = walker.Any(skip, ignored)
	}
	return Settings{
		Root:       root,
		Extensions: slices.Clone(cfg.Placeholders.Extensions),
		Skip:       skip,
	}, nil
}

// Scan reads every file under settings.Root with a scanned extension and
// returns all matches sorted by path, line and snippet. Files that cannot
// be read are listed in the result's Skipped and contribute no matches.
func (s *Scanner) Scan(settings Settings) (treetidy.ScanResult, error) {
	info, err := s.fsProvider.Stat(settings.Root)
	if err != nil || !info.IsDir() {
		return treetidy.ScanResult{}, fmt.Errorf("%w: %s", treetidy.ErrRootNotFound, settings.Root)
	}

	w := walker.New(s.fsProvider, walker.WithSkip(settings.Skip), walker.WithLogger(s.logger))

	var result treetidy.ScanResult
	for filePath := range w.Files(settings.Root) {
		if !treetidy.NewFileEntry(filePath).HasExtension(settings.Extensions, true) {
			continue
		}

		fr := s.ScanFile(filePath)
		if fr.Skipped() {
			s.logger.Verbose("Skipping unreadable file %s: %s", fr.Path, fr.SkipReason)
			result.Skipped = append(result.Skipped, fr)
			continue
		}
		result.FilesScanned++
		result.Matches = append(result.Matches, fr.Matches...)
	}

	slices.SortStableFunc(result.Matches, compareMatches)

	s.logger.Verbose("Scanned %d file(s), %d match(es)", result.FilesScanned, len(result.Matches))
	return result, nil
}

// ScanFile reads and matches a single file.
func (s *Scanner) ScanFile(filePath string) treetidy.FileResult {
	data, err := s.fsProvider.ReadFile(filePath)
	if err != nil {
		return treetidy.FileResult{Path: filePath, SkipReason: err.Error()}
	}
	return treetidy.FileResult{
		Path:    filePath,
		Matches: FindMatches(filePath, Decode(data)),
	}
}

func compareMatches(a, b treetidy.PlaceholderMatch) int {
	return cmp.Or(
		cmp.Compare(a.Path, b.Path),
		cmp.Compare(a.Line, b.Line),
		cmp.Compare(a.Snippet, b.Snippet),
	)
}
