package http1

import (
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/method"
	"github.com/indigo-web/lite/http/query"
	"github.com/indigo-web/utils/uf"
)

const protocol = "HTTP/1.1"

// Parser turns a request line into a request. It holds no state, so a single instance
// may be shared between connections.
type Parser struct{}

func NewParser() Parser {
	return Parser{}
}

func (Parser) Parse(data []byte) (*http.Request, error) {
	return Parse(data)
}

// Parse extracts the method, path and query from the request line. Everything after
// the protocol token is ignored.
//
// The data is NOT copied: the path and the query are views into it. Modifying data
// while the request is still in use results in undefined behaviour.
func Parse(data []byte) (*http.Request, error) {
	if !utf8.Valid(data) {
		return nil, http.ErrInvalidEncoding
	}

	line := uf.B2S(data)

	methodToken, line, ok := nextWord(line)
	if !ok {
		return nil, http.ErrInvalidRequest
	}

	path, line, ok := nextWord(line)
	if !ok {
		return nil, http.ErrInvalidRequest
	}

	protoToken, _, ok := nextWord(line)
	if !ok {
		return nil, http.ErrInvalidRequest
	}

	if protoToken != protocol {
		return nil, http.ErrInvalidProtocol
	}

	m, err := method.FromString(methodToken)
	if err != nil {
		return nil, http.ErrInvalidMethod
	}

	var q *query.Query
	if mark := strings.IndexByte(path, '?'); mark != -1 {
		q = query.Decode(path[mark+1:])
		path = path[:mark]
	}

	return http.NewRequest(m, path, q), nil
}

// nextWord returns the text before the first space or carriage return and the text
// after it. Both delimiters are single-byte, so slicing around them is safe.
func nextWord(s string) (word, rest string, ok bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\r':
			return s[:i], s[i+1:], true
		}
	}

	return "", "", false
}
