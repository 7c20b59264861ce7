package lisp

import (
	"errors"
	"strconv"
	"strings"
)

type Kind int

var (
	ErrUnexpectedChar  = errors.New("unexpected character")
	ErrNumberOverflow  = errors.New("number out of 64-bit range")
	ErrInvalidUTF8     = errors.New("string is not valid UTF-8")
	ErrInvalidAtom     = errors.New("invalid atom")
	ErrEmptyDottedList = errors.New("dotted list needs at least one element before the tail")
	ErrUnprintable     = errors.New("string contains a backslash")
	ErrTooDeep         = errors.New("lists nested too deep")
)

const (
	KindAtom Kind = iota
	KindList
	KindDottedList
	KindNumber
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindList:
		return "list"
	case KindDottedList:
		return "dotted list"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Expr is one node of a parsed expression tree. Kind selects which payload
// fields are meaningful:
//
//	KindAtom, KindString: Text
//	KindNumber:           Number
//	KindBool:             Bool
//	KindList:             List
//	KindDottedList:       List and Tail
type Expr struct {
	Kind
	Text   string
	Number int64
	Bool   bool
	List   []*Expr
	Tail   *Expr
}

func (e *Expr) String() string {
	var sb strings.Builder

	err := e.appendToBuilder(&sb)
	if err != nil {
		return "!!(" + err.Error() + ")!!"
	}

	return sb.String()
}

func (e *Expr) appendToBuilder(sb *strings.Builder) (err error) {
	if e == nil {
		return
	}

	switch e.Kind {
	case KindList, KindDottedList:
		sb.WriteByte('(')
		for i, c := range e.List {
			if i > 0 {
				sb.WriteByte(' ')
			}
			err = c.appendToBuilder(sb)
			if err != nil {
				return
			}
		}
		if e.Kind == KindDottedList {
			sb.WriteString(" . ")
			err = e.Tail.appendToBuilder(sb)
			if err != nil {
				return
			}
		}
		sb.WriteByte(')')
		return
	case KindAtom:
		sb.WriteString(e.Text)
		return
	case KindNumber:
		sb.WriteString(strconv.FormatInt(e.Number, 10))
		return
	case KindBool:
		if e.Bool {
			sb.WriteString("#t")
		} else {
			sb.WriteString("#f")
		}
		return
	case KindString:
		// backslash is only ever the first half of \" so it has no spelling
		if strings.IndexByte(e.Text, '\\') >= 0 {
			return ErrUnprintable
		}
		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(e.Text, `"`, `\"`))
		sb.WriteByte('"')
		return
	}

	return
}
