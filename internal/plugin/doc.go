// Package plugin runs editing operations against a document buffer through
// one interface.
//
// A Plugin has a name and an Apply method. Apply receives a Context that
// carries the buffer plus the settings the operation needs:
//
//	reg := plugin.NewBuiltinRegistry()
//	pc := &plugin.Context{Buffer: buf, Languages: langs, Config: cfg}
//	if err := reg.Apply(ctx, "comment-toggle", pc); err != nil {
//	    return err
//	}
//
// The built-in plugins wrap the textops and stream packages. Script
// plugins live in the lua sub-package.
package plugin
