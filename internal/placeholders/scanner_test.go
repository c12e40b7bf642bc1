package placeholders

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/treetidy/internal/config"
	"github.com/vvka-141/treetidy/internal/files/filesystem"
	"github.com/vvka-141/treetidy/pkg/treetidy"
)

func newTestScanner(t *testing.T) (*Scanner, *filesystem.MemoryFileSystem, Settings) {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/project")
	s := NewScanner(mfs, nil)
	settings, err := s.Settings(config.Default(), "/project")
	require.NoError(t, err)
	return s, mfs, settings
}

func TestScan_Clean(t *testing.T) {
	s, mfs, settings := newTestScanner(t)
	mfs.AddFile("App.swift", "struct App {}\n")
	mfs.AddFile("Bridge.h", "#import <Foundation/Foundation.h>\n")

	result, err := s.Scan(settings)
	require.NoError(t, err)

	assert.True(t, result.Clean())
	assert.Empty(t, result.Matches)
	assert.Equal(t, 2, result.FilesScanned)
}

func TestScan_SortedByPathAndLine(t *testing.T) {
	s, mfs, settings := newTestScanner(t)
	mfs.AddFile("b.swift", "<#late#>\n")
	mfs.AddFile("a.swift", "\n\n<#third#>\n<#first#>")
	mfs.AddFile("a.m", "<#objc#>")

	result, err := s.Scan(settings)
	require.NoError(t, err)

	var got []string
	for _, m := range result.Matches {
		got = append(got, strings.TrimPrefix(m.Path, "/project/")+":"+m.Snippet)
	}
	assert.Equal(t, []string{"a.m:<#objc#>", "a.swift:<#third#>", "a.swift:<#first#>", "b.swift:<#late#>"}, got)
	assert.Equal(t, 3, result.Matches[1].Line)
	assert.Equal(t, 4, result.Matches[2].Line)
}

func TestScan_ExtensionAllowList(t *testing.T) {
	s, mfs, settings := newTestScanner(t)
	mfs.AddFile("README.md", "<#doc#>")
	mfs.AddFile("script.py", "<#py#>")
	mfs.AddFile("Upper.SWIFT", "<#upper#>")
	mfs.AddFile("Debug.xcconfig", "FLAG = <#value#>")
	mfs.AddFile("impl.cpp", "<#cpp#>")
	mfs.AddFile(".swift", "<#dotfile#>")

	result, err := s.Scan(settings)
	require.NoError(t, err)

	var snippets []string
	for _, m := range result.Matches {
		snippets = append(snippets, m.Snippet)
	}
	assert.ElementsMatch(t, []string{"<#upper#>", "<#value#>", "<#cpp#>"}, snippets)
}

func TestScan_SkipsBuildAndVCSDirectories(t *testing.T) {
	s, mfs, settings := newTestScanner(t)
	for _, dir := range treetidy.DefaultPlaceholderSkip() {
		mfs.AddFile(dir+"/nested/Gen.swift", "<#generated#>")
	}
	mfs.AddFile("Sources/BuildTools/Tool.swift", "<#kept#>")

	result, err := s.Scan(settings)
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, "/project/Sources/BuildTools/Tool.swift", result.Matches[0].Path)
}

func TestScan_UnreadableFileIsSkipped(t *testing.T) {
	s, mfs, settings := newTestScanner(t)
	mfs.AddFile("Locked.swift", "<#hidden#>")
	mfs.AddFile("Open.swift", "<#visible#>")
	mfs.FailReadFile("Locked.swift", fs.ErrPermission)

	result, err := s.Scan(settings)
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, "<#visible#>", result.Matches[0].Snippet)
	require.Len(t, result.Skipped, 1)
	assert.Equal(t, "/project/Locked.swift", result.Skipped[0].Path)
	assert.True(t, result.Skipped[0].Skipped())
	assert.Equal(t, 1, result.FilesScanned)
}

func TestScan_UnreadableDirectoryIsSkipped(t *testing.T) {
	s, mfs, settings := newTestScanner(t)
	mfs.AddFile("Private/A.swift", "<#a#>")
	mfs.AddFile("Public/B.swift", "<#b#>")
	mfs.FailReadDir("Private", fs.ErrPermission)

	result, err := s.Scan(settings)
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, "/project/Public/B.swift", result.Matches[0].Path)
}

func TestScan_RespectGitignore(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/project")
	mfs.AddFile(".gitignore", "Generated/\n")
	mfs.AddFile("Generated/Model.swift", "<#gen#>")
	mfs.AddFile("Model.swift", "<#src#>")

	cfg := config.Default()
	cfg.Placeholders.RespectGitignore = true

	s := NewScanner(mfs, nil)
	settings, err := s.Settings(cfg, "/project")
	require.NoError(t, err)

	result, err := s.Scan(settings)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "/project/Model.swift", result.Matches[0].Path)
}

func TestScan_RootNotFound(t *testing.T) {
	s, _, settings := newTestScanner(t)
	settings.Root = "/missing"

	_, err := s.Scan(settings)
	assert.True(t, errors.Is(err, treetidy.ErrRootNotFound))
}

func TestScan_Idempotent(t *testing.T) {
	s, mfs, settings := newTestScanner(t)
	mfs.AddFile("a.swift", "<#a#>")

	first, err := s.Scan(settings)
	require.NoError(t, err)
	second, err := s.Scan(settings)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScan_OSFileSystem(t *testing.T) {
	root := t.TempDir()
	write := func(rel, content string) {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	write("App/View.swift", "Text(<#String#>)\n")
	write(".git/info/View.swift", "<#ignored#>")
	write("Pods/Lib/Lib.m", "<#ignored#>")

	s := NewScanner(filesystem.NewOSFileSystem(), nil)
	settings, err := s.Settings(config.Default(), root)
	require.NoError(t, err)

	result, err := s.Scan(settings)
	require.NoError(t, err)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, filepath.Join(root, "App", "View.swift"), result.Matches[0].Path)
	assert.Equal(t, 1, result.Matches[0].Line)
}

func TestWriteReport_Clean(t *testing.T) {
	var out bytes.Buffer
	WriteReport(&out, nil, treetidy.ScanResult{})

	assert.True(t, strings.HasPrefix(out.String(), "✅ No Xcode placeholders (<#...#>) found.\n"))
}

func TestWriteReport_Matches(t *testing.T) {
	var out bytes.Buffer
	WriteReport(&out, nil, treetidy.ScanResult{Matches: []treetidy.PlaceholderMatch{
		{Path: "/p/a.swift", Line: 3, Snippet: "<#x#>"},
		{Path: "/p/b.swift", Line: 1, Snippet: "<#y#>"},
	}})

	expected := strings.Join([]string{
		"❌ PLACEHOLDERS FOUND (these break the build):",
		"",
		"- /p/a.swift:3",
		"  <#x#>",
		"",
		"- /p/b.swift:1",
		"  <#y#>",
		"",
		"Total matches: 2",
		"",
		"➡️ Fix or remove these spots (or comment out the affected blocks) and rebuild.",
		"",
	}, "\n")
	assert.Equal(t, expected, out.String())
}

func TestNewScanner_NilProvider(t *testing.T) {
	assert.Panics(t, func() { NewScanner(nil, nil) })
}
