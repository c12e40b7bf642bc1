// Package duplicates finds tracked source files that share a basename across
// a tree and relocates all but the canonical copy into a backup mirror.
//
// The canonical copy of a group is the member with the shortest path, ties
// broken lexicographically. Relocated files keep their path relative to the
// root under the backup directory, so the tree can be restored by hand.
// Each relocation is independent: a failed move is recorded and the run
// continues with the remaining duplicates.
package duplicates
