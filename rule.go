package lisp

import (
	"errors"
	"io"
	"strings"
)

// rule matches one grammar production in in starting at pos. On success it
// returns the value and the offset just past the match; on failure it returns
// pos unchanged, so a caller can retry another rule from the same place.
type rule[T any] func(in []byte, pos int) (v T, next int, err error)

// recoverable reports whether err is a plain mismatch. Any other error is
// committed: alternation and repetition pass it up instead of trying again.
func recoverable(err error) bool {
	var c committedError
	if errors.As(err, &c) {
		return false
	}
	return errors.Is(err, ErrUnexpectedChar) || errors.Is(err, io.ErrUnexpectedEOF)
}

// committedError keeps a mismatch from being retried while still matching
// its sentinel under errors.Is.
type committedError struct {
	err error
}

func (c committedError) Error() string { return c.err.Error() }
func (c committedError) Unwrap() error { return c.err }

// commit makes a mismatch final. Other errors are returned as they are.
func commit(err error) error {
	if !recoverable(err) {
		return err
	}
	return committedError{err: err}
}

func char(pred func(c byte) bool) rule[byte] {
	return func(in []byte, pos int) (c byte, next int, err error) {
		if pos >= len(in) {
			return 0, pos, io.ErrUnexpectedEOF
		}
		if c = in[pos]; !pred(c) {
			return 0, pos, ErrUnexpectedChar
		}
		return c, pos + 1, nil
	}
}

func sym(want byte) rule[byte] {
	return char(func(c byte) bool { return c == want })
}

func oneOf(set string) rule[byte] {
	return char(func(c byte) bool { return strings.IndexByte(set, c) >= 0 })
}

func noneOf(set string) rule[byte] {
	return char(func(c byte) bool { return strings.IndexByte(set, c) < 0 })
}

// tag matches exactly the bytes of s.
func tag(s string) rule[string] {
	return func(in []byte, pos int) (string, int, error) {
		for i := 0; i < len(s); i++ {
			if pos+i >= len(in) {
				return "", pos, io.ErrUnexpectedEOF
			}
			if in[pos+i] != s[i] {
				return "", pos, ErrUnexpectedChar
			}
		}
		return s, pos + len(s), nil
	}
}

// right matches a then b, keeping b's value.
func right[A, B any](a rule[A], b rule[B]) rule[B] {
	return func(in []byte, pos int) (B, int, error) {
		var zero B
		_, next, err := a(in, pos)
		if err != nil {
			return zero, pos, err
		}
		v, next, err := b(in, next)
		if err != nil {
			return zero, pos, err
		}
		return v, next, nil
	}
}

// left matches a then b, keeping a's value.
func left[A, B any](a rule[A], b rule[B]) rule[A] {
	return func(in []byte, pos int) (A, int, error) {
		var zero A
		v, next, err := a(in, pos)
		if err != nil {
			return zero, pos, err
		}
		_, next, err = b(in, next)
		if err != nil {
			return zero, pos, err
		}
		return v, next, nil
	}
}

// repeat matches r as often as it can and fails unless that is at least min times.
func repeat[T any](r rule[T], min int) rule[[]T] {
	return func(in []byte, pos int) ([]T, int, error) {
		var vs []T
		next := pos
		for {
			v, p, err := r(in, next)
			if err != nil {
				if !recoverable(err) {
					return nil, pos, err
				}
				if len(vs) < min {
					return nil, pos, err
				}
				return vs, next, nil
			}
			if p == next {
				if len(vs) < min {
					return nil, pos, ErrUnexpectedChar
				}
				return vs, next, nil
			}
			vs = append(vs, v)
			next = p
		}
	}
}

// span replaces the value of r with the bytes r consumed.
func span[T any](r rule[T]) rule[[]byte] {
	return func(in []byte, pos int) ([]byte, int, error) {
		_, next, err := r(in, pos)
		if err != nil {
			return nil, pos, err
		}
		return in[pos:next:next], next, nil
	}
}

// convert maps the value of r through f. An error from f fails the rule and is
// committed unless f itself returns a mismatch.
func convert[A, B any](r rule[A], f func(A) (B, error)) rule[B] {
	return func(in []byte, pos int) (B, int, error) {
		var zero B
		a, next, err := r(in, pos)
		if err != nil {
			return zero, pos, err
		}
		b, err := f(a)
		if err != nil {
			return zero, pos, err
		}
		return b, next, nil
	}
}

// alt tries each rule in order from the same position and returns the first
// match. When all of them mismatch, running out of input is reported over an
// unexpected character.
func alt[T any](rs ...rule[T]) rule[T] {
	return func(in []byte, pos int) (T, int, error) {
		var zero T
		var failed error = ErrUnexpectedChar
		for _, r := range rs {
			v, next, err := r(in, pos)
			if err == nil {
				return v, next, nil
			}
			if !recoverable(err) {
				return zero, pos, err
			}
			if errors.Is(err, io.ErrUnexpectedEOF) {
				failed = err
			}
		}
		return zero, pos, failed
	}
}
