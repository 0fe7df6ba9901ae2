package lua

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/inkwell/internal/engine/buffer"
	"github.com/dshills/inkwell/internal/plugin"
	glua "github.com/yuin/gopher-lua"
)

func compile(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Compile("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return s
}

func TestStateSandbox(t *testing.T) {
	st := NewState(nil)
	defer st.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "io", "os", "debug"} {
		if v := st.GetGlobal(name); v != glua.LNil {
			t.Errorf("%s should not be available, got %s", name, v.Type())
		}
	}
	for _, name := range []string{"string", "table", "math", "pairs"} {
		if v := st.GetGlobal(name); v == glua.LNil {
			t.Errorf("%s should be available", name)
		}
	}
}

func TestStateCall(t *testing.T) {
	st := NewState(nil)
	defer st.Close()

	ctx := context.Background()
	if err := st.DoString(ctx, `function add(a, b) return a + b, "ok" end`); err != nil {
		t.Fatal(err)
	}

	got, err := st.Call(ctx, "add", glua.LNumber(2), glua.LNumber(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != glua.LNumber(5) || got[1] != glua.LString("ok") {
		t.Errorf("Call returned %v", got)
	}

	if _, err := st.Call(ctx, "missing"); err == nil {
		t.Error("calling a missing function should fail")
	}
}

func TestStatePrint(t *testing.T) {
	var out []string
	st := NewState(func(s string) { out = append(out, s) })
	defer st.Close()

	if err := st.DoString(context.Background(), `print("a", 1, true)`); err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0] != "a\t1\ttrue" {
		t.Errorf("print output %q", out)
	}
}

func TestStateClosed(t *testing.T) {
	st := NewState(nil)
	st.Close()
	if err := st.DoString(context.Background(), "x = 1"); !errors.Is(err, ErrStateClosed) {
		t.Errorf("expected ErrStateClosed, got %v", err)
	}
}

func TestStateTimeout(t *testing.T) {
	st := NewState(nil)
	defer st.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := st.DoString(ctx, `while true do end`)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected context.DeadlineExceeded, got %v", err)
	}
}

func TestScriptApply(t *testing.T) {
	s := compile(t, `
function apply()
	local s, e = buf.selection()
	if not s then return end
	local text = buf.text_range(s, e)
	buf.replace(s, e, string.upper(text))
end
`)

	b := buffer.NewBufferFromString("say hello")
	b.SelectRange(4, 9)

	sets := 0
	b.Subscribe(func(buffer.ChangeSet) { sets++ })

	if err := s.Apply(context.Background(), &plugin.Context{Buffer: b}); err != nil {
		t.Fatal(err)
	}
	if b.Text() != "say HELLO" {
		t.Errorf("got %q", b.Text())
	}
	if sets != 1 {
		t.Errorf("expected one change set, got %d", sets)
	}
}

func TestScriptLines(t *testing.T) {
	s := compile(t, `
function apply()
	for n = buf.line_count(), 1, -1 do
		buf.insert(buf.line_start(n), n .. ": ")
	end
end
`)

	b := buffer.NewBufferFromString("a\nb\r\nc")
	if err := s.Apply(context.Background(), &plugin.Context{Buffer: b}); err != nil {
		t.Fatal(err)
	}
	if b.Text() != "1: a\n2: b\r\n3: c" {
		t.Errorf("got %q", b.Text())
	}
}

func TestScriptPositions(t *testing.T) {
	s := compile(t, `
function apply()
	local line, col = buf.position(4)
	buf.insert(buf.offset(line, 99), "!" .. line .. col)
end
`)

	b := buffer.NewBufferFromString("ab\ncd")
	if err := s.Apply(context.Background(), &plugin.Context{Buffer: b}); err != nil {
		t.Fatal(err)
	}
	if b.Text() != "ab\ncd!21" {
		t.Errorf("got %q", b.Text())
	}
}

func TestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"no apply", `x = 1`, ErrNoApply},
		{"bad offset", `function apply() buf.delete(0, 99) end`, nil},
		{"bad line", `function apply() buf.line_text(7) end`, nil},
		{"runtime error", `function apply() error("boom") end`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buffer.NewBufferFromString("abc")
			err := compile(t, tt.src).Apply(context.Background(), &plugin.Context{Buffer: b})
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if b.InUserAction() {
				t.Error("user action left open")
			}
		})
	}

	if err := compile(t, "x = 1").Apply(context.Background(), &plugin.Context{}); !errors.Is(err, plugin.ErrNoBuffer) {
		t.Errorf("expected ErrNoBuffer, got %v", err)
	}
}

func TestCompileSyntaxError(t *testing.T) {
	if _, err := Compile("bad", strings.NewReader("function (")); err == nil {
		t.Error("expected a syntax error")
	}
}

func TestRegister(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shout.lua")
	src := `function apply() buf.replace(0, buf.len(), string.upper(buf.text())) end`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	reg := plugin.NewRegistry()
	if err := Register(reg, []string{path}); err != nil {
		t.Fatal(err)
	}

	b := buffer.NewBufferFromString("quiet")
	if err := reg.Apply(context.Background(), "shout", &plugin.Context{Buffer: b}); err != nil {
		t.Fatal(err)
	}
	if b.Text() != "QUIET" {
		t.Errorf("got %q", b.Text())
	}

	if err := Register(reg, []string{filepath.Join(dir, "missing.lua")}); err == nil {
		t.Error("expected an error for a missing script")
	}
}
