// Package walker provides the recursive directory traversal shared by the
// duplicate finder and the placeholder scanner.
//
// A Walker yields (directory, file names) pairs lazily. Directories matched
// by the skip predicate are pruned before descent, so nothing beneath them is
// ever listed. Directories that cannot be listed are omitted without
// aborting the walk.
package walker
