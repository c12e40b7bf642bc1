package placeholders

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/vvka-141/treetidy/pkg/treetidy"
)

// Pattern is one of the fixed placeholder grammars.
type Pattern struct {
	Name string
	re   *regexp.Regexp
}

// Patterns are applied independently; a region matched by more than one
// pattern is reported once per pattern.
var Patterns = []Pattern{
	// <# ... #>, may span lines
	{Name: "generic", re: regexp.MustCompile(`(?s)<#.*?#>`)},
	// <#T##name##Type#>, single line
	{Name: "typed", re: regexp.MustCompile(`<#T##.*?#>`)},
	// <#[# ... #]#>, may span lines
	{Name: "bracketed", re: regexp.MustCompile(`(?s)<#\[#.*?#\]#>`)},
}

// FindMatches applies every pattern to content and returns the matches in
// pattern order, then offset order.
func FindMatches(path, content string) []treetidy.PlaceholderMatch {
	var matches []treetidy.PlaceholderMatch
	for _, p := range Patterns {
		for _, loc := range p.re.FindAllStringIndex(content, -1) {
			matches = append(matches, treetidy.PlaceholderMatch{
				Path:    path,
				Line:    strings.Count(content[:loc[0]], "\n") + 1,
				Snippet: Snippet(content[loc[0]:loc[1]]),
				Pattern: p.Name,
			})
		}
	}
	return matches
}

// Snippet collapses whitespace runs to single spaces and caps the result at
// treetidy.MaxSnippetLength characters, marker included.
func Snippet(raw string) string {
	oneLine := strings.Join(strings.Fields(raw), " ")
	if utf8.RuneCountInString(oneLine) <= treetidy.MaxSnippetLength {
		return oneLine
	}

	keep := treetidy.MaxSnippetLength - utf8.RuneCountInString(treetidy.TruncationMarker)
	runes := []rune(oneLine)
	return string(runes[:keep]) + treetidy.TruncationMarker
}
