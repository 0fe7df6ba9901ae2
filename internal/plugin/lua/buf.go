package lua

import (
	"github.com/dshills/inkwell/internal/engine/buffer"
	lua "github.com/yuin/gopher-lua"
)

// bufModule exposes a buffer to scripts as the global buf.
type bufModule struct {
	b *buffer.Buffer
}

func registerBuf(L *lua.LState, b *buffer.Buffer) {
	m := &bufModule{b: b}
	mod := L.NewTable()

	L.SetField(mod, "text", L.NewFunction(m.text))
	L.SetField(mod, "text_range", L.NewFunction(m.textRange))
	L.SetField(mod, "len", L.NewFunction(m.bufLen))
	L.SetField(mod, "line_count", L.NewFunction(m.lineCount))
	L.SetField(mod, "line_text", L.NewFunction(m.lineText))
	L.SetField(mod, "line_start", L.NewFunction(m.lineStart))
	L.SetField(mod, "line_end", L.NewFunction(m.lineEnd))
	L.SetField(mod, "position", L.NewFunction(m.position))
	L.SetField(mod, "offset", L.NewFunction(m.offset))
	L.SetField(mod, "insert", L.NewFunction(m.insert))
	L.SetField(mod, "delete", L.NewFunction(m.delete))
	L.SetField(mod, "replace", L.NewFunction(m.replace))
	L.SetField(mod, "selection", L.NewFunction(m.selection))
	L.SetField(mod, "select", L.NewFunction(m.selectRange))
	L.SetField(mod, "cursor", L.NewFunction(m.cursor))
	L.SetField(mod, "language", L.NewFunction(m.language))
	L.SetField(mod, "modified", L.NewFunction(m.modified))

	L.SetGlobal("buf", mod)
}

// text() -> string
func (m *bufModule) text(L *lua.LState) int {
	L.Push(lua.LString(m.b.Text()))
	return 1
}

// text_range(start, end) -> string
func (m *bufModule) textRange(L *lua.LState) int {
	start := L.CheckInt64(1)
	end := L.CheckInt64(2)
	L.Push(lua.LString(m.b.TextRange(start, end)))
	return 1
}

// len() -> number
func (m *bufModule) bufLen(L *lua.LState) int {
	L.Push(lua.LNumber(m.b.Len()))
	return 1
}

// line_count() -> number
func (m *bufModule) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(m.b.LineCount()))
	return 1
}

// checkLine reads a 1-based line argument and returns the 0-based line.
func (m *bufModule) checkLine(L *lua.LState, n int) uint32 {
	line := L.CheckInt(n)
	if line < 1 || line > int(m.b.LineCount()) {
		L.ArgError(n, "line out of range")
	}
	return uint32(line - 1)
}

// line_text(n) -> string, without the terminator
func (m *bufModule) lineText(L *lua.LState) int {
	L.Push(lua.LString(m.b.LineText(m.checkLine(L, 1))))
	return 1
}

// line_start(n) -> offset
func (m *bufModule) lineStart(L *lua.LState) int {
	L.Push(lua.LNumber(m.b.LineStartOffset(m.checkLine(L, 1))))
	return 1
}

// line_end(n) -> offset of the terminator
func (m *bufModule) lineEnd(L *lua.LState) int {
	L.Push(lua.LNumber(m.b.LineEndOffset(m.checkLine(L, 1))))
	return 1
}

// position(offset) -> line, column (1-based line, 0-based byte column)
func (m *bufModule) position(L *lua.LState) int {
	p := m.b.OffsetToPoint(L.CheckInt64(1))
	L.Push(lua.LNumber(p.Line + 1))
	L.Push(lua.LNumber(p.Column))
	return 2
}

// offset(line, column) -> offset, clamped to the line end
func (m *bufModule) offset(L *lua.LState) int {
	line := m.checkLine(L, 1)
	col := L.OptInt(2, 0)
	if col < 0 {
		L.ArgError(2, "negative column")
	}
	L.Push(lua.LNumber(m.b.PointToOffset(buffer.Point{Line: line, Column: uint32(col)})))
	return 1
}

// insert(offset, text) -> end offset
func (m *bufModule) insert(L *lua.LState) int {
	offset := L.CheckInt64(1)
	text := L.CheckString(2)

	end, err := m.b.Insert(offset, text)
	if err != nil {
		L.RaiseError("insert: %v", err)
		return 0
	}
	L.Push(lua.LNumber(end))
	return 1
}

// delete(start, end)
func (m *bufModule) delete(L *lua.LState) int {
	start := L.CheckInt64(1)
	end := L.CheckInt64(2)

	if err := m.b.Delete(start, end); err != nil {
		L.RaiseError("delete: %v", err)
	}
	return 0
}

// replace(start, end, text) -> end offset
func (m *bufModule) replace(L *lua.LState) int {
	start := L.CheckInt64(1)
	end := L.CheckInt64(2)
	text := L.CheckString(3)

	newEnd, err := m.b.Replace(start, end, text)
	if err != nil {
		L.RaiseError("replace: %v", err)
		return 0
	}
	L.Push(lua.LNumber(newEnd))
	return 1
}

// selection() -> start, end or nil
func (m *bufModule) selection(L *lua.LState) int {
	start, end, ok := m.b.SelectionBounds()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(start))
	L.Push(lua.LNumber(end))
	return 2
}

// select(anchor, head)
func (m *bufModule) selectRange(L *lua.LState) int {
	anchor := L.CheckInt64(1)
	head := L.OptInt64(2, anchor)

	if err := m.b.SelectRange(anchor, head); err != nil {
		L.RaiseError("select: %v", err)
	}
	return 0
}

// cursor() -> offset
func (m *bufModule) cursor(L *lua.LState) int {
	L.Push(lua.LNumber(m.b.Cursor()))
	return 1
}

// language() -> id
func (m *bufModule) language(L *lua.LState) int {
	L.Push(lua.LString(m.b.Language()))
	return 1
}

// modified() -> bool
func (m *bufModule) modified(L *lua.LState) int {
	L.Push(lua.LBool(m.b.Modified()))
	return 1
}
