// Package stream moves bytes between io streams and a text buffer.
//
// OutputStream is the decoding side: it accepts arbitrary byte chunks,
// holds back a multi-byte character or a "\r" that straddles a chunk
// boundary, and inserts validated UTF-8 into the buffer inside a single
// user action. The resulting buffer content does not depend on how the
// input was chunked.
//
// InputStream is the encoding side: an io.Reader that yields the buffer's
// lines joined by a chosen newline sequence.
//
// Load and Save wrap both with golang.org/x/text charset conversion.
package stream
