package walker

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/vvka-141/treetidy/internal/files/filesystem"
)

// SkipFunc decides whether a directory is pruned. It receives the
// directory's path components relative to the walk root.
type SkipFunc func(components []string) bool

// Never prunes nothing.
func Never([]string) bool { return false }

// ComponentContains prunes directories with any component containing one of
// fragments as a substring. "App.xcodeproj" matches ".xcodeproj".
func ComponentContains(fragments ...string) SkipFunc {
	fragments = nonEmpty(fragments)
	return func(components []string) bool {
		for _, c := range components {
			for _, f := range fragments {
				if strings.Contains(c, f) {
					return true
				}
			}
		}
		return false
	}
}

// ComponentEquals prunes directories with any component equal to one of names.
func ComponentEquals(names ...string) SkipFunc {
	set := make(map[string]struct{}, len(names))
	for _, n := range nonEmpty(names) {
		set[n] = struct{}{}
	}
	return func(components []string) bool {
		for _, c := range components {
			if _, ok := set[c]; ok {
				return true
			}
		}
		return false
	}
}

// Any prunes a directory if any of preds does. Nil predicates are ignored.
func Any(preds ...SkipFunc) SkipFunc {
	return func(components []string) bool {
		for _, p := range preds {
			if p != nil && p(components) {
				return true
			}
		}
		return false
	}
}

// GitignoreSkip prunes directories matched by the .gitignore file at root.
// A missing .gitignore yields Never.
func GitignoreSkip(fsProvider filesystem.FileSystemProvider, root string) (SkipFunc, error) {
	content, err := fsProvider.ReadFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Never, nil
		}
		return nil, err
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	matcher := ignore.CompileIgnoreLines(lines...)

	return func(components []string) bool {
		return matcher.MatchesPath(strings.Join(components, "/") + "/")
	}, nil
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
