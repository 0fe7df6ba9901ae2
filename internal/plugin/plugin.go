package plugin

import (
	"context"
	"io"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/language"
	"github.com/dshills/inkwell/internal/stream"
	"github.com/dshills/inkwell/internal/textops"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("inkwell.plugin")

// Plugin is an editing operation applied to a buffer.
type Plugin interface {
	Name() string
	Apply(ctx context.Context, pc *Context) error
}

// Func adapts a function to Plugin.
type Func struct {
	ID string
	Fn func(ctx context.Context, pc *Context) error
}

// Name returns the plugin name.
func (f Func) Name() string { return f.ID }

// Apply calls Fn.
func (f Func) Apply(ctx context.Context, pc *Context) error { return f.Fn(ctx, pc) }

// Context is what a plugin operates on.
type Context struct {
	Buffer *buffer.Buffer

	// Languages resolves comment markers; nil uses the built-in table.
	Languages *language.Registry

	// Config supplies defaults; nil uses config.Default.
	Config *config.Config

	// Input feeds the stream decoder.
	Input io.Reader

	// Load is filled in by the stream decoder.
	Load stream.LoadResult
}

func (pc *Context) config() *config.Config {
	if pc.Config == nil {
		return config.Default()
	}
	return pc.Config
}

func (pc *Context) buffer() (*buffer.Buffer, error) {
	if pc == nil || pc.Buffer == nil {
		return nil, ErrNoBuffer
	}
	return pc.Buffer, nil
}

// CommentMarker returns the line comment marker for the buffer's
// language. Languages without one use comment.default_marker.
func (pc *Context) CommentMarker() string {
	langs := pc.Languages
	if langs == nil {
		langs = language.NewBuiltinRegistry()
	}

	if pc.Buffer != nil {
		if l, ok := langs.Get(pc.Buffer.Language()); ok && l.LineComment != "" {
			return l.LineComment
		}
	}
	if m := pc.config().Comment.DefaultMarker; m != "" {
		return m
	}
	return textops.DefaultCommentMarker
}

// SortOptions returns the configured sort flags.
func (pc *Context) SortOptions() textops.SortOptions {
	s := pc.config().Sort
	return textops.SortOptions{
		IgnoreCase:       s.IgnoreCase,
		Reverse:          s.Reverse,
		RemoveDuplicates: s.RemoveDuplicates,
		Language:         s.Tag(),
	}
}

// LoadOptions returns the configured decoder settings.
func (pc *Context) LoadOptions() stream.LoadOptions {
	s := pc.config().Stream
	return stream.LoadOptions{
		Encoding:            s.Encoding,
		ChunkSize:           s.ChunkSize,
		KeepTrailingNewline: !s.TrimTrailingNewline,
	}
}
