// Package lua runs Lua scripts as plugins.
//
// A script defines a global apply function. inkwell calls it inside one
// user action with a buf module bound to the document:
//
//	-- upper.lua
//	function apply()
//	    local s, e = buf.selection()
//	    if not s then return end
//	    local text = buf.text_range(s, e)
//	    buf.delete(s, e)
//	    buf.insert(s, string.upper(text))
//	end
//
// Offsets are byte offsets from 0. Lines are numbered from 1.
//
// Scripts run in a sandbox: only the base, table, string and math
// libraries are open, and dofile, loadfile, load, loadstring and require
// are removed. Execution stops when the context passed to Apply is done.
package lua
