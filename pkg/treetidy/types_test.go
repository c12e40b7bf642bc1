package treetidy

import (
	"errors"
	"testing"
)

func TestNewFileEntry(t *testing.T) {
	e := NewFileEntry("./App/Views/ContentView.swift")
	if e.Name != "ContentView.swift" {
		t.Errorf("Name = %q, want ContentView.swift", e.Name)
	}
	if e.Extension != ".swift" {
		t.Errorf("Extension = %q, want .swift", e.Extension)
	}

	for _, name := range []string{"Makefile", ".swift", "..swift"} {
		if e := NewFileEntry("App/" + name); e.Extension != "" {
			t.Errorf("NewFileEntry(%q).Extension = %q, want empty", name, e.Extension)
		}
	}

	if e := NewFileEntry(".hidden.swift"); e.Extension != ".swift" {
		t.Errorf("Extension = %q, want .swift", e.Extension)
	}
}

func TestDuplicateGroup_IsDuplicate(t *testing.T) {
	if (DuplicateGroup{Name: "a.py", Paths: []string{"a.py"}}).IsDuplicate() {
		t.Error("single-member group should not be a duplicate")
	}
	if !(DuplicateGroup{Name: "a.py", Paths: []string{"a.py", "x/a.py"}}).IsDuplicate() {
		t.Error("two-member group should be a duplicate")
	}
}

func TestFileEntry_HasExtension(t *testing.T) {
	tests := []struct {
		name string
		exts []string
		fold bool
		want bool
	}{
		{"View.swift", []string{".swift", ".py"}, false, true},
		{"script.py", []string{".swift", ".py"}, false, true},
		{"View.SWIFT", []string{".swift"}, false, false},
		{"View.SWIFT", []string{".swift"}, true, true},
		{"Config.xcconfig", []string{".xcconfig"}, true, true},
		{"notes.txt", []string{".swift"}, true, false},
		{"README", []string{".swift"}, false, false},
		{".swift", []string{".swift"}, true, false},
		{".hidden.SWIFT", []string{".swift"}, true, true},
	}

	for _, tt := range tests {
		if got := NewFileEntry(tt.name).HasExtension(tt.exts, tt.fold); got != tt.want {
			t.Errorf("%q.HasExtension(%v, %v) = %v, want %v", tt.name, tt.exts, tt.fold, got, tt.want)
		}
	}
}

func TestResultPredicates(t *testing.T) {
	if !(ScanResult{}).Clean() {
		t.Error("empty ScanResult should be clean")
	}
	if (ScanResult{Matches: []PlaceholderMatch{{Path: "a.swift", Line: 1}}}).Clean() {
		t.Error("ScanResult with matches should not be clean")
	}
	if !(FileResult{SkipReason: "permission denied"}).Skipped() {
		t.Error("FileResult with reason should be skipped")
	}
	if !(Relocation{Err: errors.New("x")}).Failed() {
		t.Error("Relocation with error should be failed")
	}
}
