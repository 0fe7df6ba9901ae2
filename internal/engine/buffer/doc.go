// Package buffer provides the thread-safe text buffer the editor core
// operates on.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Line lookup where a line ends at "\n", "\r\n" or a lone "\r"
//   - Coordinate conversion between byte offsets and line/column positions
//   - Named marks that follow edits, with left or right gravity
//   - A selection made of the "insert" and "selection_bound" marks
//   - User-action brackets that group edits into one ChangeSet
//   - A modified flag and revision tracking
//   - Read-only snapshots for concurrent access
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello, World!")
//
//	buf.BeginUserAction()
//	buf.Insert(7, "Beautiful ") // "Hello, Beautiful World!"
//	buf.Delete(0, 7)            // "Beautiful World!"
//	buf.EndUserAction()         // listeners see one ChangeSet
//
// Content is stored verbatim. Line terminators are never normalized, so
// a buffer loaded from disk saves back byte for byte.
package buffer
