package method

import "errors"

// ErrUnknown is returned when a token doesn't name any of the supported methods.
var ErrUnknown = errors.New("unknown method")

type Method uint8

const (
	Unknown Method = iota
	GET
	DELETE
	POST
	PUT
	HEAD
	CONNECT
	OPTIONS
	TRACE
	PATCH

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods. They are sorted by their integer value, however
// Unknown method is not included. So in order to index the List, you must subtract 1 first.
var List = []Method{GET, DELETE, POST, PUT, HEAD, CONNECT, OPTIONS, TRACE, PATCH}

var names = [...]string{
	Unknown: "Unknown",
	GET:     "GET",
	DELETE:  "DELETE",
	POST:    "POST",
	PUT:     "PUT",
	HEAD:    "HEAD",
	CONNECT: "CONNECT",
	OPTIONS: "OPTIONS",
	TRACE:   "TRACE",
	PATCH:   "PATCH",
}

func (m Method) String() string {
	if int(m) >= len(names) {
		return names[Unknown]
	}

	return names[m]
}

// Parse matches the token against known methods. Matching is case-sensitive, so
// "get" is Unknown.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if str == "GET" {
			return GET
		} else if str == "PUT" {
			return PUT
		}
	case 4:
		if str == "POST" {
			return POST
		} else if str == "HEAD" {
			return HEAD
		}
	case 5:
		if str == "PATCH" {
			return PATCH
		} else if str == "TRACE" {
			return TRACE
		}
	case 6:
		if str == "DELETE" {
			return DELETE
		}
	case 7:
		if str == "CONNECT" {
			return CONNECT
		} else if str == "OPTIONS" {
			return OPTIONS
		}
	}

	return Unknown
}

// FromString is Parse, but reports an unknown token as ErrUnknown.
func FromString(str string) (Method, error) {
	if m := Parse(str); m != Unknown {
		return m, nil
	}

	return Unknown, ErrUnknown
}
