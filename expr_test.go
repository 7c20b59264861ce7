package lisp

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestExpr_String(t *testing.T) {
	tests := []struct {
		name string
		e    *Expr
		want string
	}{
		{
			name: "()",
			e:    List(),
			want: "()",
		},
		{
			name: "(abc)",
			e:    List(MustAtom("abc")),
			want: "(abc)",
		},
		{
			name: "(abc 12 #t #f)",
			e:    List(MustAtom("abc"), Number(12), Bool(true), Bool(false)),
			want: "(abc 12 #t #f)",
		},
		{
			name: "negative number",
			e:    Number(-4),
			want: "-4",
		},
		{
			name: "string with quote",
			e:    Str(`say "hi"`),
			want: `"say \"hi\""`,
		},
		{
			name: "string with backslash",
			e:    Str(`a\b`),
			want: "!!(" + ErrUnprintable.Error() + ")!!",
		},
		{
			name: "(a (b c) . d)",
			e:    MustDottedList(MustAtom("d"), MustAtom("a"), List(MustAtom("b"), MustAtom("c"))),
			want: "(a (b c) . d)",
		},
		{
			name: "nil",
			e:    nil,
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpr_StringReadsBack(t *testing.T) {
	inputs := []string{
		"()",
		"(1 2 3)",
		`(1 2 "Hello World")`,
		`(define #t #f #xFF #b11 #o321 "1\"23" <=?)`,
		"(a (b (c)) . (d . e))",
		"( x\ty\n)",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			want, err := FullReader.ReadList([]byte(in))
			if err != nil {
				t.Fatal(err)
			}
			got, err := FullReader.ReadList([]byte(want.String()))
			if err != nil {
				t.Fatalf("reading %q: %v", want.String(), err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestAtom(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		wantErr error
	}{
		{name: "xpass: letters", s: "abc"},
		{name: "xpass: symbols and digits", s: "+1-x?"},
		{name: "xpass: hash", s: "#"},
		{name: "xfail: empty", s: "", wantErr: ErrInvalidAtom},
		{name: "xfail: leading digit", s: "1a", wantErr: ErrInvalidAtom},
		{name: "xfail: space", s: "a b", wantErr: ErrInvalidAtom},
		{name: "xfail: dot", s: "a.b", wantErr: ErrInvalidAtom},
		{name: "xfail: true", s: "#t", wantErr: ErrInvalidAtom},
		{name: "xfail: false", s: "#f", wantErr: ErrInvalidAtom},
		{name: "xfail: non-ASCII", s: "é", wantErr: ErrInvalidAtom},
		{name: "xfail: reads as number", s: "#x1fz", wantErr: ErrInvalidAtom},
		{name: "xfail: overflowing number", s: "#b" + strings.Repeat("1", 70), wantErr: ErrInvalidAtom},
		{name: "xpass: radix prefix without digits", s: "#b2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Atom(tt.s)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Atom() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if e.Kind != KindAtom || e.Text != tt.s {
				t.Errorf("Atom() = %#v", e)
			}
			if got := MustReadExpr([]byte(tt.s)); !reflect.DeepEqual(got, e) {
				t.Errorf("read back %#v, want %#v", got, e)
			}
		})
	}
}

func TestDottedList(t *testing.T) {
	if _, err := DottedList(Number(1)); !errors.Is(err, ErrEmptyDottedList) {
		t.Errorf("no elements: err = %v", err)
	}
	if _, err := DottedList(nil, Number(1)); !errors.Is(err, ErrEmptyDottedList) {
		t.Errorf("no tail: err = %v", err)
	}
	e, err := DottedList(Number(2), Number(1))
	if err != nil {
		t.Fatal(err)
	}
	if e.Kind != KindDottedList || len(e.List) != 1 || e.Tail.Number != 2 {
		t.Errorf("DottedList() = %#v", e)
	}
}

func TestKind_String(t *testing.T) {
	kinds := map[Kind]string{
		KindAtom:       "atom",
		KindList:       "list",
		KindDottedList: "dotted list",
		KindNumber:     "number",
		KindString:     "string",
		KindBool:       "bool",
		Kind(42):       "Kind(42)",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(k), got, want)
		}
	}
}
