// Package files groups the file-related sub-packages used by both tools:
//   - filesystem: provider interface with OS and in-memory implementations
//   - walker: lazy directory traversal with skip predicates
package files
