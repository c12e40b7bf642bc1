// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the operations the walker, the placeholder scanner and
// the duplicate finder perform, enabling tests against in-memory trees while
// production code runs on the OS filesystem.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing, with injectable
//     read failures
package filesystem
