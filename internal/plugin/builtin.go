package plugin

import (
	"context"
	"fmt"

	"github.com/dshills/inkwell/internal/stream"
	"github.com/dshills/inkwell/internal/textops"
)

// Built-in plugin names.
const (
	NameCommentToggle      = "comment-toggle"
	NameWhitespaceStripper = "strip-trailing-whitespace"
	NameStreamDecoder      = "stream-decoder"
	NameSortLines          = "sort-lines"
)

// CaseTransform changes the case of the selection.
type CaseTransform struct {
	Mode textops.CaseMode
}

// Name returns "case-" followed by the mode, e.g. "case-upper".
func (p CaseTransform) Name() string {
	return "case-" + p.Mode.String()
}

func (p CaseTransform) Apply(ctx context.Context, pc *Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := pc.buffer()
	if err != nil {
		return err
	}
	return textops.ChangeCase(b, p.Mode, pc.config().Case.Tag())
}

// CommentToggle adds or removes line comments on the selected lines.
type CommentToggle struct {
	// Marker overrides the language's comment marker.
	Marker string
}

func (CommentToggle) Name() string { return NameCommentToggle }

func (p CommentToggle) Apply(ctx context.Context, pc *Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := pc.buffer()
	if err != nil {
		return err
	}

	marker := p.Marker
	if marker == "" {
		marker = pc.CommentMarker()
	}
	return textops.ToggleComment(b, marker)
}

// WhitespaceStripper removes trailing blanks from every line.
type WhitespaceStripper struct{}

func (WhitespaceStripper) Name() string { return NameWhitespaceStripper }

func (WhitespaceStripper) Apply(ctx context.Context, pc *Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := pc.buffer()
	if err != nil {
		return err
	}
	return textops.StripTrailingWhitespace(b)
}

// StreamDecoder loads Context.Input into the buffer.
type StreamDecoder struct {
	// Options overrides the configured stream settings when non-nil.
	Options *stream.LoadOptions
}

func (StreamDecoder) Name() string { return NameStreamDecoder }

func (p StreamDecoder) Apply(ctx context.Context, pc *Context) error {
	b, err := pc.buffer()
	if err != nil {
		return err
	}
	if pc.Input == nil {
		return ErrNoInput
	}

	opts := pc.LoadOptions()
	if p.Options != nil {
		opts = *p.Options
	}

	res, err := stream.Load(ctx, pc.Input, b, opts)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	pc.Load = res
	return nil
}

// SortLines sorts the selected lines, or the whole buffer.
type SortLines struct {
	// Options overrides the configured sort flags when non-nil.
	Options *textops.SortOptions
}

func (SortLines) Name() string { return NameSortLines }

func (p SortLines) Apply(ctx context.Context, pc *Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := pc.buffer()
	if err != nil {
		return err
	}

	opts := pc.SortOptions()
	if p.Options != nil {
		opts = *p.Options
	}
	return textops.SortLines(b, opts)
}

// Builtins returns one instance of every built-in plugin.
func Builtins() []Plugin {
	return []Plugin{
		CaseTransform{Mode: textops.CaseUpper},
		CaseTransform{Mode: textops.CaseLower},
		CaseTransform{Mode: textops.CaseInvert},
		CaseTransform{Mode: textops.CaseTitle},
		CommentToggle{},
		WhitespaceStripper{},
		StreamDecoder{},
		SortLines{},
	}
}
