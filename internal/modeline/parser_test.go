package modeline

import (
	"strings"
	"testing"

	"github.com/dshills/inkwell/internal/engine/buffer"
)

func scan(t *testing.T, text string) Options {
	t.Helper()
	return NewParser(nil).Scan(buffer.NewBufferFromString(text))
}

func TestVim(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Options
	}{
		{
			"first form",
			"# vim: ts=4 sw=2 et\ncode",
			Options{TabWidth: 4, IndentWidth: 2, InsertSpaces: true, Set: SetTabWidth | SetIndentWidth | SetInsertSpaces},
		},
		{
			"set form",
			"/* vim: set ft=cs tw=80 nowrap: trailing text */",
			Options{Language: "csharp", RightMargin: 80, ShowRightMargin: true, WrapMode: WrapNone,
				Set: SetLanguage | SetRightMargin | SetShowRightMargin | SetWrapMode},
		},
		{
			"vi and ex prefixes",
			"vi: noet\nex: tabstop=3",
			Options{InsertSpaces: false, TabWidth: 3, Set: SetInsertSpaces | SetTabWidth},
		},
		{
			"requires whitespace before",
			"xvim: ts=4",
			Options{},
		},
		{
			"zero ignored",
			"vim: ts=0 sw=8x",
			Options{IndentWidth: 8, Set: SetIndentWidth},
		},
		{
			"unmapped filetype lowercases",
			"vim: ft=Python",
			Options{Language: "python", Set: SetLanguage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scan(t, tt.text); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEmacs(t *testing.T) {
	got := scan(t, "#!/bin/sh\n# -*- Mode: shell-script; tab-width: 8; indent-tabs-mode: nil -*-\n")
	want := Options{Language: "sh", TabWidth: 8, InsertSpaces: true, Set: SetLanguage | SetTabWidth | SetInsertSpaces}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	got = scan(t, "\n\n;; -*- mode: c++ -*-")
	if got.Set != 0 {
		t.Errorf("emacs modeline past line 2 should be ignored, got %+v", got)
	}

	got = scan(t, "-*- autowrap: t; indent-offset: 4 -*- vim: ts=2")
	want = Options{WrapMode: WrapWord, IndentWidth: 4, TabWidth: 2, Set: SetWrapMode | SetIndentWidth | SetTabWidth}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestKate(t *testing.T) {
	got := scan(t, "// kate: hl C++; space-indent on; indent-width 4; word-wrap-column 100;")
	want := Options{
		Language: "cpp", InsertSpaces: true, IndentWidth: 4, RightMargin: 100, ShowRightMargin: true,
		Set: SetLanguage | SetInsertSpaces | SetIndentWidth | SetRightMargin | SetShowRightMargin,
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestScanWindow(t *testing.T) {
	lines := make([]string, 40)
	for i := range lines {
		lines[i] = "text"
	}

	lines[5] = "// kate: tab-width 3;"
	lines[20] = "// kate: indent-width 9;"
	lines[33] = "// vim: ts=7"
	lines[38] = "// vim: et"

	// Line 21 is never read and vim only honors the last 3 lines.

	got := scan(t, strings.Join(lines, "\n"))
	want := Options{TabWidth: 3, InsertSpaces: true, Set: SetTabWidth | SetInsertSpaces}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestMappings(t *testing.T) {
	m, err := ParseMappings([]byte("[vim]\nFOO = \"bar\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := resolve(m.Vim, "foo"); got != "bar" {
		t.Errorf("resolve(foo) = %q", got)
	}

	merged := DefaultMappings().Merge(m)
	if merged.Vim["cs"] != "csharp" || merged.Vim["foo"] != "bar" {
		t.Errorf("merge lost entries: %v", merged.Vim)
	}

	if _, err := ParseMappings([]byte("[vim\n")); err == nil {
		t.Error("expected parse error")
	}
}

func TestApply(t *testing.T) {
	defaults := Settings{TabWidth: 8, IndentWidth: 8}

	first := Options{TabWidth: 4, Set: SetTabWidth}
	cur := first.Apply(defaults, defaults, nil)
	if cur.TabWidth != 4 {
		t.Fatalf("TabWidth = %d, want 4", cur.TabWidth)
	}

	// Modeline removed: tab width goes back to the default.
	cur = Options{}.Apply(cur, defaults, &first)
	if cur.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want default 8", cur.TabWidth)
	}

	// Changed by the user since: kept.
	cur = first.Apply(defaults, defaults, nil)
	cur.TabWidth = 2
	cur = Options{}.Apply(cur, defaults, &first)
	if cur.TabWidth != 2 {
		t.Errorf("TabWidth = %d, want user value 2", cur.TabWidth)
	}
}
