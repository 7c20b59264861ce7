package lisp

// Atom returns an atom node for s. s must match the atom grammar and must not
// read back as something else: "#t", "#f" and radix literals such as "#x1f" are
// rejected.
func Atom(s string) (e *Expr, err error) {
	if s == "" || s == "#t" || s == "#f" {
		return nil, ErrInvalidAtom
	}
	for i := 0; i < len(s); i++ {
		if i == 0 && !isAtomStart(s[i]) {
			return nil, ErrInvalidAtom
		} else if i > 0 && !isAtomRemainder(s[i]) {
			return nil, ErrInvalidAtom
		}
	}

	if _, _, err = numberLiteral([]byte(s), 0); err == nil || !recoverable(err) {
		return nil, ErrInvalidAtom
	}

	return &Expr{
		Kind: KindAtom,
		Text: s,
	}, nil
}

func MustAtom(s string) (e *Expr) {
	var err error
	e, err = Atom(s)
	if err != nil {
		panic(err)
	}
	return
}

func Number(v int64) *Expr {
	return &Expr{
		Kind:   KindNumber,
		Number: v,
	}
}

func Str(s string) *Expr {
	return &Expr{
		Kind: KindString,
		Text: s,
	}
}

func Bool(b bool) *Expr {
	return &Expr{
		Kind: KindBool,
		Bool: b,
	}
}

func List(children ...*Expr) *Expr {
	if children == nil {
		children = make([]*Expr, 0)
	}
	return &Expr{
		Kind: KindList,
		List: children,
	}
}

func DottedList(tail *Expr, children ...*Expr) (e *Expr, err error) {
	if len(children) == 0 || tail == nil {
		return nil, ErrEmptyDottedList
	}
	return &Expr{
		Kind: KindDottedList,
		List: children,
		Tail: tail,
	}, nil
}

func MustDottedList(tail *Expr, children ...*Expr) (e *Expr) {
	var err error
	e, err = DottedList(tail, children...)
	if err != nil {
		panic(err)
	}
	return
}
