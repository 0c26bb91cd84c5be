package http

import "errors"

// ParseError is a closed set of reasons a request line can be rejected for. Every
// variant is a comparable sentinel, so errors.Is works as expected.
type ParseError uint8

const (
	ErrInvalidRequest ParseError = iota + 1
	ErrInvalidEncoding
	ErrInvalidProtocol
	ErrInvalidMethod
)

func (p ParseError) Error() string {
	switch p {
	case ErrInvalidRequest:
		return "InvalidRequest"
	case ErrInvalidEncoding:
		return "InvalidEncoding"
	case ErrInvalidProtocol:
		return "InvalidProtocol"
	case ErrInvalidMethod:
		return "InvalidMethod"
	default:
		return "ParseError"
	}
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var perr ParseError
	return errors.As(err, &perr)
}
