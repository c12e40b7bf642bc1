package duplicates

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vvka-141/treetidy/internal/config"
	"github.com/vvka-141/treetidy/internal/files/filesystem"
	"github.com/vvka-141/treetidy/internal/files/walker"
	"github.com/vvka-141/treetidy/internal/logging"
	"github.com/vvka-141/treetidy/pkg/treetidy"
)

// Settings is the explicit input of a duplicate finder run.
type Settings struct {
	Root       string          // Tree to clean
	BackupDir  string          // Backup mirror root
	Extensions []string        // Tracked extensions, case-sensitive suffix match
	Skip       walker.SkipFunc // Pruned subtrees; must cover the backup directory
	DryRun     bool            // Report without moving
}

// SettingsFromConfig derives run settings from cfg. The backup directory
// name is always added to the skip fragments.
func SettingsFromConfig(cfg *config.Config) Settings {
	fragments := append(slices.Clone(cfg.Duplicates.Skip), cfg.BackupName())
	return Settings{
		Root:       cfg.Root,
		BackupDir:  cfg.BackupPath(cfg.Root),
		Extensions: slices.Clone(cfg.Duplicates.Extensions),
		Skip:       walker.ComponentContains(fragments...),
	}
}

// Finder scans a tree for duplicates and relocates them.
type Finder struct {
	fsProvider filesystem.FileSystemProvider
	logger     treetidy.Logger
	newSuffix  func() string
}

// NewFinder creates a Finder operating on fsProvider.
// Panics if fsProvider is nil. A nil logger discards diagnostics.
func NewFinder(fsProvider filesystem.FileSystemProvider, logger treetidy.Logger) *Finder {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Finder{
		fsProvider: fsProvider,
		logger:     logger,
		newSuffix:  func() string { return uuid.New().String()[:8] },
	}
}

// Scan walks s.Root and returns every group of tracked files sharing a
// basename with at least two members, sorted by basename.
func (f *Finder) Scan(s Settings) ([]treetidy.DuplicateGroup, error) {
	info, err := f.fsProvider.Stat(s.Root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", treetidy.ErrRootNotFound, s.Root)
	}

	w := walker.New(f.fsProvider, walker.WithSkip(s.Skip), walker.WithLogger(f.logger))

	registry := make(map[string][]string)
	var order []string
	for filePath := range w.Files(s.Root) {
		entry := treetidy.NewFileEntry(filePath)
		if !entry.HasExtension(s.Extensions, false) {
			continue
		}
		if _, seen := registry[entry.Name]; !seen {
			order = append(order, entry.Name)
		}
		registry[entry.Name] = append(registry[entry.Name], entry.Path)
	}

	var groups []treetidy.DuplicateGroup
	for _, name := range order {
		g := treetidy.DuplicateGroup{Name: name, Paths: registry[name]}
		if g.IsDuplicate() {
			groups = append(groups, g)
		}
	}
	slices.SortFunc(groups, func(a, b treetidy.DuplicateGroup) int {
		return strings.Compare(a.Name, b.Name)
	})

	f.logger.Verbose("Found %d duplicate group(s) under %s", len(groups), s.Root)
	return groups, nil
}

// Resolve picks the canonical file of each duplicate group. Groups with a
// single member produce no action.
func Resolve(groups []treetidy.DuplicateGroup) []treetidy.Action {
	var actions []treetidy.Action
	for _, g := range groups {
		if !g.IsDuplicate() {
			continue
		}
		paths := slices.Clone(g.Paths)
		slices.SortFunc(paths, comparePaths)
		actions = append(actions, treetidy.Action{
			Name: g.Name,
			Keep: paths[0],
			Move: paths[1:],
		})
	}
	return actions
}

// comparePaths orders by length in characters, then lexicographically.
func comparePaths(a, b string) int {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la != lb {
		return la - lb
	}
	return strings.Compare(a, b)
}

// Apply relocates every duplicate of action into the backup mirror.
// Failures are recorded per file and do not stop the remaining moves.
func (f *Finder) Apply(s Settings, action treetidy.Action) []treetidy.Relocation {
	relocations := make([]treetidy.Relocation, 0, len(action.Move))
	for _, src := range action.Move {
		relocations = append(relocations, f.relocate(s, src))
	}
	return relocations
}

func (f *Finder) relocate(s Settings, src string) treetidy.Relocation {
	r := treetidy.Relocation{Source: src}

	rel, err := filepath.Rel(s.Root, src)
	if err != nil {
		r.Err = fmt.Errorf("failed to get relative path: %w", err)
		return r
	}
	r.Destination = filepath.Join(s.BackupDir, rel)

	if s.DryRun {
		return r
	}

	if err := f.fsProvider.MkdirAll(filepath.Dir(r.Destination)); err != nil {
		r.Err = fmt.Errorf("failed to create backup directory: %w", err)
		return r
	}

	if _, err := f.fsProvider.Stat(r.Destination); err == nil {
		taken := r.Destination
		r.Destination = withSuffix(r.Destination, f.newSuffix())
		f.logger.Verbose("%s already exists, using %s", taken, r.Destination)
	} else if !errors.Is(err, fs.ErrNotExist) {
		r.Err = fmt.Errorf("failed to check backup destination: %w", err)
		return r
	}

	if err := f.fsProvider.Rename(src, r.Destination); err != nil {
		r.Err = fmt.Errorf("failed to move file: %w", err)
		return r
	}

	f.logger.Verbose("Moved %s -> %s", src, r.Destination)
	return r
}

// withSuffix inserts "-suffix" before the extension of p.
func withSuffix(p, suffix string) string {
	ext := filepath.Ext(p)
	return strings.TrimSuffix(p, ext) + "-" + suffix + ext
}

// Run scans, resolves and applies, reporting each group as it is processed.
// It returns ErrRelocationFailed if any duplicate could not be moved.
func (f *Finder) Run(s Settings, rep *Reporter) (treetidy.CleanupSummary, error) {
	summary := treetidy.CleanupSummary{DryRun: s.DryRun}

	groups, err := f.Scan(s)
	if err != nil {
		return summary, err
	}

	rep.Start()

	actions := Resolve(groups)
	if len(actions) == 0 {
		rep.NothingFound(s.Extensions)
		return summary, nil
	}

	for _, action := range actions {
		rep.Group(action)
		for _, r := range f.Apply(s, action) {
			rep.Relocation(r, s.DryRun)
			summary.Relocations = append(summary.Relocations, r)
			if r.Failed() {
				summary.Failed++
				f.logger.Error("Could not move %s: %v", r.Source, r.Err)
			} else {
				summary.Moved++
			}
		}
	}
	summary.Groups = len(actions)

	rep.Finish(summary, s.BackupDir)

	if summary.Failed > 0 {
		return summary, fmt.Errorf("%d of %d duplicate(s) could not be moved: %w",
			summary.Failed, summary.Failed+summary.Moved, treetidy.ErrRelocationFailed)
	}
	return summary, nil
}
