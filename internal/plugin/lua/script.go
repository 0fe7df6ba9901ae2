package lua

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/inkwell/internal/plugin"
	"github.com/tliron/commonlog"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var log = commonlog.GetLogger("inkwell.plugin.lua")

// Script is a compiled Lua plugin.
type Script struct {
	name  string
	proto *lua.FunctionProto
}

var _ plugin.Plugin = (*Script)(nil)

// Compile parses a script. Syntax errors are reported here rather than
// on first use.
func Compile(name string, r io.Reader) (*Script, error) {
	chunk, err := parse.Parse(r, name)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, err)
	}
	return &Script{name: name, proto: proto}, nil
}

// LoadFile compiles the script at path. The plugin is named after the
// file, without its extension.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Compile(name, f)
}

// Register loads each script in paths into reg.
func Register(reg *plugin.Registry, paths []string) error {
	for _, path := range paths {
		s, err := LoadFile(path)
		if err != nil {
			return err
		}
		if err := reg.Register(s); err != nil {
			return err
		}
		log.Info("loaded script", "name", s.name, "path", path)
	}
	return nil
}

// Name returns the plugin name.
func (s *Script) Name() string {
	return s.name
}

// Apply runs the script in a fresh state and calls its apply function
// inside one user action named after the script.
func (s *Script) Apply(ctx context.Context, pc *plugin.Context) error {
	if pc == nil || pc.Buffer == nil {
		return plugin.ErrNoBuffer
	}

	st := NewState(func(msg string) {
		log.Info("script output", "plugin", s.name, "message", msg)
	})
	defer st.Close()
	registerBuf(st.L, pc.Buffer)

	if err := st.Run(ctx, s.proto); err != nil {
		return fmt.Errorf("lua %s: %w", s.name, err)
	}
	if st.GetGlobal("apply").Type() != lua.LTFunction {
		return fmt.Errorf("lua %s: %w", s.name, ErrNoApply)
	}

	return pc.Buffer.UserAction(s.name, func() error {
		if _, err := st.Call(ctx, "apply"); err != nil {
			return fmt.Errorf("lua %s: %w", s.name, err)
		}
		return nil
	})
}
