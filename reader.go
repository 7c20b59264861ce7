package lisp

import "io"

// DefaultMaxDepth is the list nesting limit of a Reader that sets none.
const DefaultMaxDepth = 1000

// Reader reads expressions from byte slices. The zero value is StrictReader.
type Reader struct {
	extended bool
	maxDepth int
}

// StrictReader accepts only the base grammar: lists are read by ReadList and
// never appear as elements, and whitespace only separates elements.
var StrictReader = Reader{extended: false}

// FullReader also accepts nested lists, dotted tails such as (a b . c), and
// whitespace just inside the parentheses.
var FullReader = Reader{extended: true}

var (
	whitespace = repeat(char(isSpace), 0)
	openParen  = sym('(')
	closeParen = sym(')')
	dotSep     = right(whitespace, right(sym('.'), whitespace))
)

// ReadExpr reads one number, atom, boolean or string from the start of in
// using StrictReader. Bytes after the expression are ignored.
func ReadExpr(in []byte) (e *Expr, err error) {
	return StrictReader.ReadExpr(in)
}

// ReadList reads a parenthesized list from the start of in using StrictReader.
// Bytes after the closing parenthesis are ignored.
func ReadList(in []byte) (e *Expr, err error) {
	return StrictReader.ReadList(in)
}

// MustReadExpr is ReadExpr but panics on error.
func MustReadExpr(in []byte) (e *Expr) {
	var err error
	e, err = ReadExpr(in)
	if err != nil {
		panic(err)
	}
	return
}

// MustReadList is ReadList but panics on error.
func MustReadList(in []byte) (e *Expr) {
	var err error
	e, err = ReadList(in)
	if err != nil {
		panic(err)
	}
	return
}

// WithMaxDepth returns a copy of r that fails with ErrTooDeep on lists nested
// more than n deep. n <= 0 selects DefaultMaxDepth.
func (r Reader) WithMaxDepth(n int) Reader {
	r.maxDepth = n
	return r
}

// ReadExpr reads one expression from the start of in, ignoring trailing bytes.
func (r Reader) ReadExpr(in []byte) (e *Expr, err error) {
	e, _, err = r.ParseExpr(in, 0)
	return
}

// ReadList reads one list from the start of in, ignoring trailing bytes.
func (r Reader) ReadList(in []byte) (e *Expr, err error) {
	e, _, err = r.ParseList(in, 0)
	return
}

// ParseExpr reads one expression starting at offset pos of in and returns it
// along with the offset just past it. On error next is pos.
func (r Reader) ParseExpr(in []byte, pos int) (e *Expr, next int, err error) {
	if pos < 0 || pos > len(in) {
		return nil, pos, io.ErrUnexpectedEOF
	}
	return r.parseExpr(in, pos, 0)
}

// ParseList reads a list starting at offset pos of in and returns it along with
// the offset just past the closing parenthesis. On error next is pos.
func (r Reader) ParseList(in []byte, pos int) (e *Expr, next int, err error) {
	if pos < 0 || pos > len(in) {
		return nil, pos, io.ErrUnexpectedEOF
	}
	return r.parseList(in, pos, 1)
}

func (r Reader) limit() int {
	if r.maxDepth <= 0 {
		return DefaultMaxDepth
	}
	return r.maxDepth
}

// parseExpr tries the literals, then (extended only) a list one level deeper
// than depth.
func (r Reader) parseExpr(in []byte, pos, depth int) (e *Expr, next int, err error) {
	e, next, err = literal(in, pos)
	if err == nil || !r.extended || !recoverable(err) {
		return
	}
	if _, _, perr := openParen(in, pos); perr != nil {
		return nil, pos, err
	}
	return r.parseList(in, pos, depth+1)
}

// parseList reads the list at pos, which sits depth levels deep. Once the
// opening parenthesis matched every failure is committed.
func (r Reader) parseList(in []byte, pos, depth int) (e *Expr, next int, err error) {
	if _, next, err = openParen(in, pos); err != nil {
		return nil, pos, err
	}
	if depth > r.limit() {
		return nil, pos, ErrTooDeep
	}
	if e, next, err = r.parseElements(in, next, depth); err != nil {
		return nil, pos, commit(err)
	}
	return e, next, nil
}

// parseElements reads everything after the opening parenthesis up to and
// including the closing one. A separator not followed by an element is left
// unconsumed.
func (r Reader) parseElements(in []byte, pos, depth int) (e *Expr, next int, err error) {
	next = pos
	if r.extended {
		_, next, _ = whitespace(in, next)
	}

	var items []*Expr
	var p int
	e, p, err = r.parseExpr(in, next, depth)
	for err == nil {
		items = append(items, e)
		next = p
		_, p, _ = whitespace(in, next)
		e, p, err = r.parseExpr(in, p, depth)
	}
	if !recoverable(err) {
		return nil, pos, err
	}

	var tail *Expr
	if r.extended && len(items) > 0 {
		if _, p, err = dotSep(in, next); err == nil {
			if tail, next, err = r.parseExpr(in, p, depth); err != nil {
				return nil, pos, err
			}
		}
	}

	if r.extended {
		_, next, _ = whitespace(in, next)
	}
	if _, next, err = closeParen(in, next); err != nil {
		return nil, pos, err
	}

	if tail != nil {
		return &Expr{Kind: KindDottedList, List: items, Tail: tail}, next, nil
	}
	return List(items...), next, nil
}
