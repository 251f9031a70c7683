// Package errs defines the typed error kinds returned by internal/treeedit.
package errs

import "fmt"

// Kind classifies a treeedit error the way internal/diag classifies diagnostics.
type Kind uint8

const (
	InvalidOperation Kind = iota
	NotImplemented
	ArgumentError
	TreeReplacementError
	FileNotFound
)

func (k Kind) String() string {
	switch k {
	case InvalidOperation:
		return "InvalidOperation"
	case NotImplemented:
		return "NotImplemented"
	case ArgumentError:
		return "ArgumentError"
	case TreeReplacementError:
		return "TreeReplacementError"
	case FileNotFound:
		return "FileNotFound"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type carried across the treeedit API surface.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("treeedit: %s: %s: %s: %v", e.Kind, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("treeedit: %s: %s: %s", e.Kind, e.Op, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

func Wrap(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

func InvalidOperationf(op, format string, args ...any) *Error {
	return New(InvalidOperation, op, fmt.Sprintf(format, args...))
}

func NotImplementedf(op, format string, args ...any) *Error {
	return New(NotImplemented, op, fmt.Sprintf(format, args...))
}

func ArgumentErrorf(op, format string, args ...any) *Error {
	return New(ArgumentError, op, fmt.Sprintf(format, args...))
}

func TreeReplacementErrorf(op, format string, args ...any) *Error {
	return New(TreeReplacementError, op, fmt.Sprintf(format, args...))
}

func FileNotFoundf(op, format string, args ...any) *Error {
	return New(FileNotFound, op, fmt.Sprintf(format, args...))
}

// Is reports whether err is a treeedit *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	for err != nil {
		if te, ok := err.(*Error); ok {
			e = te
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == kind
}
