// Package placeholders finds editor placeholder tokens such as <#name#>
// left in source files by IDE code completion. Such tokens compile only in
// the editor, so any occurrence is reported as a build-breaking finding.
//
// Matching is literal pattern matching over the decoded file text; the
// source language is never parsed.
package placeholders
