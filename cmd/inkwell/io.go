package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/inkwell/internal/document"
	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/plugin"
	"github.com/spf13/cobra"
)

var errWriteStdin = errors.New("cannot write standard input in place")

// open loads path, or standard input when path is empty or "-".
func (a *app) open(cmd *cobra.Command, path string) (*document.Document, error) {
	ctx := cmd.Context()
	if path == "" || path == "-" {
		return a.mgr.OpenReader(ctx, a.stdinName, cmd.InOrStdin())
	}
	return a.mgr.Open(ctx, path)
}

// emit saves doc in place when write is set, and writes it to standard
// output otherwise.
func (a *app) emit(cmd *cobra.Command, doc *document.Document, write bool) error {
	ctx := cmd.Context()
	if write {
		if doc.Path == "" {
			return errWriteStdin
		}
		return a.mgr.Save(ctx, doc.ID)
	}
	_, err := a.mgr.WriteTo(ctx, doc.ID, cmd.OutOrStdout())
	return err
}

// edit opens the input, runs fn on it and emits the result.
func (a *app) edit(cmd *cobra.Command, args []string, write bool, fn func(ctx context.Context, doc *document.Document) error) error {
	doc, err := a.open(cmd, argOrEmpty(args))
	if err != nil {
		return err
	}
	defer a.mgr.Close(doc.ID)

	if err := fn(cmd.Context(), doc); err != nil {
		return err
	}
	return a.emit(cmd, doc, write)
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// selectLines selects a 1-based inclusive line range "N" or "N:M". An
// empty expr selects the whole buffer.
func selectLines(b *buffer.Buffer, expr string) error {
	if expr == "" {
		return b.SelectRange(0, b.Len())
	}

	first, last, err := parseLineRange(expr)
	if err != nil {
		return err
	}
	count := int(b.LineCount())
	if first < 1 || first > count {
		return fmt.Errorf("line %d out of range (1-%d)", first, count)
	}
	last = min(last, count)

	start := b.LineStartOffset(uint32(first - 1))
	end := b.NextLineOffset(uint32(last - 1))
	return b.SelectRange(start, end)
}

func parseLineRange(expr string) (int, int, error) {
	a, b, ok := strings.Cut(expr, ":")
	first, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid line range %q", expr)
	}
	if !ok {
		return first, first, nil
	}
	last, err := strconv.Atoi(b)
	if err != nil || last < first {
		return 0, 0, fmt.Errorf("invalid line range %q", expr)
	}
	return first, last, nil
}

// apply runs p on doc unless plugins.disabled names it.
func (a *app) apply(ctx context.Context, doc *document.Document, p plugin.Plugin) error {
	if a.cfg.Plugins.IsDisabled(p.Name()) {
		return fmt.Errorf("%w: %q", plugin.ErrPluginDisabled, p.Name())
	}
	log.Debug("applying plugin", "name", p.Name(), "document", string(doc.ID))
	return p.Apply(ctx, a.mgr.Context(doc))
}
