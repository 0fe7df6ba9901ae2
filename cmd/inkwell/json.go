package main

import (
	"github.com/dshills/inkwell/internal/modeline"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// jsonDoc builds a JSON object one path at a time, keeping the first error.
type jsonDoc struct {
	s   string
	err error
}

func (j *jsonDoc) set(path string, v any) {
	if j.err != nil {
		return
	}
	j.s, j.err = sjson.Set(j.s, path, v)
}

// bytes returns the document followed by a newline, indented when
// indent is set.
func (j *jsonDoc) bytes(indent bool) ([]byte, error) {
	if j.err != nil {
		return nil, j.err
	}
	s := j.s
	if s == "" {
		s = "{}"
	}
	if indent {
		return pretty.Pretty([]byte(s)), nil
	}
	return append([]byte(s), '\n'), nil
}

func (j *jsonDoc) settings(prefix string, s modeline.Settings) {
	j.set(prefix+".tab_width", s.TabWidth)
	j.set(prefix+".indent_width", s.IndentWidth)
	j.set(prefix+".insert_spaces", s.InsertSpaces)
	j.set(prefix+".wrap", s.WrapMode.String())
	j.set(prefix+".right_margin", s.RightMargin)
	j.set(prefix+".show_right_margin", s.ShowRightMargin)
}

// modelineOptions sets only the options a modeline assigned.
func (j *jsonDoc) modelineOptions(prefix string, o modeline.Options) {
	j.set(prefix, map[string]any{})
	if o.Has(modeline.SetLanguage) {
		j.set(prefix+".language", o.Language)
	}
	if o.Has(modeline.SetTabWidth) {
		j.set(prefix+".tab_width", o.TabWidth)
	}
	if o.Has(modeline.SetIndentWidth) {
		j.set(prefix+".indent_width", o.IndentWidth)
	}
	if o.Has(modeline.SetInsertSpaces) {
		j.set(prefix+".insert_spaces", o.InsertSpaces)
	}
	if o.Has(modeline.SetWrapMode) {
		j.set(prefix+".wrap", o.WrapMode.String())
	}
	if o.Has(modeline.SetRightMargin) {
		j.set(prefix+".right_margin", o.RightMargin)
	}
	if o.Has(modeline.SetShowRightMargin) {
		j.set(prefix+".show_right_margin", o.ShowRightMargin)
	}
}
