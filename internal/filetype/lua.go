package filetype

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// LoadLua runs a file type script and returns the types it declares.
//
// A script declares types by calling the global filetype function with a
// table using the same field names as the YAML format:
//
//	filetype {
//	  name = "zig",
//	  match = "\\.zig$",
//	  comment = "//",
//	  indent_forward = "{\\s*$",
//	  pairs = { ["("] = ")", ["{"] = "}" },
//	  rules = { { pattern = "//.*$", label = "comment" } },
//	  keywords = { keyword = { "fn", "const", "var" } },
//	}
//
// Scripts run with only the base, table, string and math libraries.
func LoadLua(path string) ([]*FileType, error) {
	return loadLua(func(L *lua.LState) error { return L.DoFile(path) }, path)
}

// LoadLuaString runs a file type script held in memory.
func LoadLuaString(name, code string) ([]*FileType, error) {
	return loadLua(func(L *lua.LState) error { return L.DoString(code) }, name)
}

func loadLua(run func(*lua.LState) error, name string) ([]*FileType, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibraries(L)

	var defs []Definition
	var declErr error
	L.SetGlobal("filetype", L.NewFunction(func(L *lua.LState) int {
		def, err := tableDefinition(L.CheckTable(1))
		if err != nil && declErr == nil {
			declErr = err
		}
		defs = append(defs, def)
		return 0
	}))

	if err := run(L); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, name, err)
	}
	if declErr != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrScript, name, declErr)
	}

	out := make([]*FileType, 0, len(defs))
	for _, def := range defs {
		ft, err := def.Compile()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out = append(out, ft)
	}
	return out, nil
}

// openSafeLibraries opens only libraries without file system or process
// access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func tableDefinition(t *lua.LTable) (Definition, error) {
	d := Definition{
		Name:           luaString(t, "name"),
		Match:          luaString(t, "match"),
		Comment:        luaString(t, "comment"),
		IndentForward:  luaString(t, "indent_forward"),
		IndentBackward: luaString(t, "indent_backward"),
		Lexer:          luaString(t, "lexer"),
	}

	if n, ok := t.RawGetString("shift_width").(lua.LNumber); ok {
		d.ShiftWidth = int(n)
	}
	if b, ok := t.RawGetString("auto_indent").(lua.LBool); ok {
		v := bool(b)
		d.AutoIndent = &v
	}
	if b, ok := t.RawGetString("expand_tab").(lua.LBool); ok {
		d.ExpandTab = bool(b)
	}

	if pairs, ok := t.RawGetString("pairs").(*lua.LTable); ok {
		d.Pairs = make(map[string]string)
		pairs.ForEach(func(k, v lua.LValue) {
			d.Pairs[k.String()] = v.String()
		})
	}

	if rules, ok := t.RawGetString("rules").(*lua.LTable); ok {
		for i := 1; i <= rules.Len(); i++ {
			rt, ok := rules.RawGetInt(i).(*lua.LTable)
			if !ok {
				return d, fmt.Errorf("%w: %s: rule %d is not a table", ErrInvalidDefinition, d.Name, i)
			}
			r := RuleDefinition{
				Pattern: luaString(rt, "pattern"),
				Label:   luaString(rt, "label"),
			}
			if n, ok := rt.RawGetString("submatch").(lua.LNumber); ok {
				r.Submatch = int(n)
			}
			d.Rules = append(d.Rules, r)
		}
	}

	if kw, ok := t.RawGetString("keywords").(*lua.LTable); ok {
		d.Keywords = make(map[string][]string)
		kw.ForEach(func(k, v lua.LValue) {
			words, ok := v.(*lua.LTable)
			if !ok {
				return
			}
			label := k.String()
			for i := 1; i <= words.Len(); i++ {
				d.Keywords[label] = append(d.Keywords[label], words.RawGetInt(i).String())
			}
		})
	}

	return d, nil
}

func luaString(t *lua.LTable, key string) string {
	if s, ok := t.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}
