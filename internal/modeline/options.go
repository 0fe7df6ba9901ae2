package modeline

// Set records which Options fields a modeline assigned.
type Set uint8

const (
	SetTabWidth Set = 1 << iota
	SetIndentWidth
	SetWrapMode
	SetShowRightMargin
	SetRightMargin
	SetLanguage
	SetInsertSpaces
)

// WrapMode is the line wrapping requested by a modeline.
type WrapMode uint8

const (
	WrapNone WrapMode = iota
	WrapWord
)

// String returns the wrap mode name.
func (w WrapMode) String() string {
	if w == WrapWord {
		return "word"
	}
	return "none"
}

// Options holds the settings found in a document's modelines.
type Options struct {
	Language        string
	TabWidth        int
	IndentWidth     int
	InsertSpaces    bool
	WrapMode        WrapMode
	RightMargin     int
	ShowRightMargin bool

	Set Set
}

// Has reports whether every flag in s was assigned.
func (o Options) Has(s Set) bool {
	return o.Set&s == s
}

// Settings are the editing settings a document carries.
type Settings struct {
	TabWidth        int
	IndentWidth     int
	InsertSpaces    bool
	WrapMode        WrapMode
	RightMargin     int
	ShowRightMargin bool
}

// Apply returns cur with the modeline options applied. A setting that
// prev assigned but o does not goes back to its default, unless it was
// changed since prev was applied.
func (o Options) Apply(cur, defaults Settings, prev *Options) Settings {
	var p Options
	if prev != nil {
		p = *prev
	}

	if o.Has(SetInsertSpaces) {
		cur.InsertSpaces = o.InsertSpaces
	} else if p.Has(SetInsertSpaces) && cur.InsertSpaces == p.InsertSpaces {
		cur.InsertSpaces = defaults.InsertSpaces
	}

	if o.Has(SetTabWidth) {
		cur.TabWidth = o.TabWidth
	} else if p.Has(SetTabWidth) && cur.TabWidth == p.TabWidth {
		cur.TabWidth = defaults.TabWidth
	}

	if o.Has(SetIndentWidth) {
		cur.IndentWidth = o.IndentWidth
	} else if p.Has(SetIndentWidth) && cur.IndentWidth == p.IndentWidth {
		cur.IndentWidth = defaults.IndentWidth
	}

	if o.Has(SetWrapMode) {
		cur.WrapMode = o.WrapMode
	} else if p.Has(SetWrapMode) && cur.WrapMode == p.WrapMode {
		cur.WrapMode = defaults.WrapMode
	}

	if o.Has(SetRightMargin) {
		cur.RightMargin = o.RightMargin
	} else if p.Has(SetRightMargin) && cur.RightMargin == p.RightMargin {
		cur.RightMargin = defaults.RightMargin
	}

	if o.Has(SetShowRightMargin) {
		cur.ShowRightMargin = o.ShowRightMargin
	} else if p.Has(SetShowRightMargin) && cur.ShowRightMargin == p.ShowRightMargin {
		cur.ShowRightMargin = defaults.ShowRightMargin
	}

	return cur
}
