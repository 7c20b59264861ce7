// Package lua exposes the reader to gopher-lua scripts.
//
// Expressions become tables with a single key naming the variant:
//
//	{atom="x"} {string="x"} {number=1} {bool=true} {list={...}}
//
// A dotted list is {list={...}, tail={...}}. Numbers are Lua numbers (float64),
// so magnitudes above 2^53 lose precision.
package lua

import (
	"github.com/alttpo/lisp"
	lua "github.com/yuin/gopher-lua"
)

const ModuleName = "lisp"

// Value converts e into the table form described in the package comment.
func Value(l *lua.LState, e *lisp.Expr) lua.LValue {
	if e == nil {
		return lua.LNil
	}

	t := l.NewTable()
	switch e.Kind {
	case lisp.KindAtom:
		t.RawSetString("atom", lua.LString(e.Text))
	case lisp.KindString:
		t.RawSetString("string", lua.LString(e.Text))
	case lisp.KindNumber:
		t.RawSetString("number", lua.LNumber(e.Number))
	case lisp.KindBool:
		t.RawSetString("bool", lua.LBool(e.Bool))
	case lisp.KindList, lisp.KindDottedList:
		list := l.NewTable()
		for _, c := range e.List {
			list.Append(Value(l, c))
		}
		t.RawSetString("list", list)
		if e.Kind == lisp.KindDottedList {
			t.RawSetString("tail", Value(l, e.Tail))
		}
	}
	return t
}

// Loader is a lua.LGFunction that returns the module table. Every reader
// function takes the source string and an optional boolean selecting
// lisp.FullReader, and returns the expression table or nil and a message.
func Loader(l *lua.LState) int {
	mod := l.SetFuncs(l.NewTable(), map[string]lua.LGFunction{
		"read_expr": readWith(lisp.Reader.ReadExpr),
		"read_list": readWith(lisp.Reader.ReadList),
	})
	l.Push(mod)
	return 1
}

// Preload makes the module available to require(ModuleName).
func Preload(l *lua.LState) {
	l.PreloadModule(ModuleName, Loader)
}

func readWith(read func(lisp.Reader, []byte) (*lisp.Expr, error)) lua.LGFunction {
	return func(l *lua.LState) int {
		src := l.CheckString(1)
		r := lisp.StrictReader
		if l.OptBool(2, false) {
			r = lisp.FullReader
		}

		e, err := read(r, []byte(src))
		if err != nil {
			l.Push(lua.LNil)
			l.Push(lua.LString(err.Error()))
			return 2
		}
		l.Push(Value(l, e))
		return 1
	}
}
