package lisp

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var (
	letter = char(isLetter)
	digit  = char(isDigit)
	symbol = char(isSymbol)
)

// prefixed number literals are tried before plain decimal.
var numberLiteral = alt(
	radixNumber("#o", "01234567", 8),
	radixNumber("#b", "01", 2),
	radixNumber("#x", "0123456789abcdefABCDEF", 16),
	convert(span(repeat(digit, 1)), decimal),
)

func decimal(digits []byte) (*Expr, error) {
	return parseNumber(digits, 10)
}

func radixNumber(prefix, digits string, base int) rule[*Expr] {
	return convert(
		right(tag(prefix), span(repeat(oneOf(digits), 1))),
		func(b []byte) (*Expr, error) {
			return parseNumber(b, base)
		},
	)
}

// parseNumber expects b to hold only digits valid in base. strconv accepts
// either case for hex letters, so no normalization is needed.
func parseNumber(b []byte, base int) (*Expr, error) {
	v, err := strconv.ParseInt(string(b), base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: %q in base %d", ErrNumberOverflow, b, base)
		}
		return nil, err
	}
	return Number(v), nil
}

var stringLiteral = convert(
	left(right(sym('"'), repeat(alt(noneOf(`\"`), right(sym('\\'), sym('"'))), 0)), sym('"')),
	func(b []byte) (*Expr, error) {
		if !utf8.Valid(b) {
			return nil, ErrInvalidUTF8
		}
		return Str(string(b)), nil
	},
)

var atomLiteral = convert(
	span(right(alt(letter, symbol), repeat(alt(letter, digit, symbol), 0))),
	func(b []byte) (*Expr, error) {
		switch string(b) {
		case "#t":
			return Bool(true), nil
		case "#f":
			return Bool(false), nil
		}
		return &Expr{Kind: KindAtom, Text: string(b)}, nil
	},
)

// literal is every expression except a list.
var literal = alt(numberLiteral, atomLiteral, stringLiteral)
