package stream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/inkwell/internal/engine/buffer"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultChunkSize is the read size used by Load.
const DefaultChunkSize = 8 * 1024

// LoadOptions configures Load.
type LoadOptions struct {
	// Encoding is an IANA charset name. Empty or "utf-8" reads UTF-8,
	// switching to UTF-16 when a byte order mark says so.
	Encoding string

	// ChunkSize is the number of bytes handed to the decoder per write.
	ChunkSize int

	// KeepTrailingNewline disables trimming of the final line terminator.
	KeepTrailingNewline bool
}

// LoadResult describes a completed load.
type LoadResult struct {
	Newline                buffer.LineEnding
	TrimmedTrailingNewline bool

	// BytesRead counts the bytes taken from the reader, before charset
	// decoding.
	BytesRead int64
}

// SaveOptions configures Save.
type SaveOptions struct {
	Encoding           string
	Newline            buffer.LineEnding
	AddTrailingNewline bool
}

// Load decodes r into target through an OutputStream.
func Load(ctx context.Context, r io.Reader, target Target, opts LoadOptions) (LoadResult, error) {
	var res LoadResult

	dec, err := decoderFor(opts.Encoding)
	if err != nil {
		return res, err
	}

	size := opts.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}

	out := NewOutputStream(target, WithTrimTrailingNewline(!opts.KeepTrailingNewline))
	src := &countingReader{r: r}
	rd := transform.NewReader(src, dec)
	chunk := make([]byte, size)

	for {
		if err := ctx.Err(); err != nil {
			out.abort()
			return res, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		n, rerr := rd.Read(chunk)
		res.BytesRead = src.n
		if n > 0 {
			if _, err := out.WriteContext(ctx, chunk[:n]); err != nil {
				out.abort()
				return res, err
			}
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			out.abort()
			return res, fmt.Errorf("read input: %w", rerr)
		}
	}

	if err := out.Flush(ctx); err != nil {
		out.abort()
		return res, err
	}
	res.Newline = out.DetectNewline()
	if err := out.Close(); err != nil {
		return res, err
	}
	res.TrimmedTrailingNewline = out.TrimmedTrailingNewline()

	log.Info("loaded", "bytes", res.BytesRead, "newline", res.Newline.String(), "trimmed", res.TrimmedTrailingNewline)
	return res, nil
}

// Save encodes src to w. It returns the number of bytes handed to w's
// charset encoder.
func Save(ctx context.Context, w io.Writer, src Source, opts SaveOptions) (int64, error) {
	enc, err := encoderFor(opts.Encoding)
	if err != nil {
		return 0, err
	}

	tw := transform.NewWriter(w, enc)
	in := NewInputStream(src, opts.Newline, opts.AddTrailingNewline)
	chunk := make([]byte, DefaultChunkSize)

	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, fmt.Errorf("%w: %w", ErrCancelled, err)
		}

		n, rerr := in.Read(chunk)
		if n > 0 {
			if _, err := tw.Write(chunk[:n]); err != nil {
				return total, fmt.Errorf("encode output: %w", err)
			}
			total += int64(n)
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
	}

	if err := tw.Close(); err != nil {
		return total, fmt.Errorf("encode output: %w", err)
	}

	log.Info("saved", "bytes", total, "newline", opts.Newline.String())
	return total, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func isUTF8(name string) bool {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

func lookup(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// decoderFor returns a transformer producing UTF-8. The UTF-8 path passes
// bytes through untouched so the OutputStream sees invalid sequences.
func decoderFor(name string) (transform.Transformer, error) {
	if isUTF8(name) {
		return unicode.BOMOverride(transform.Nop), nil
	}
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder(), nil
}

func encoderFor(name string) (transform.Transformer, error) {
	if isUTF8(name) {
		return transform.Nop, nil
	}
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	return enc.NewEncoder(), nil
}
