package http

import (
	"strings"

	"github.com/indigo-web/lite/http/method"
	"github.com/indigo-web/lite/http/query"
)

// Request is a parsed request line. It is never modified after being constructed.
//
// When produced by the parser, the path and all the query strings are views into the
// buffer the request was parsed from. The buffer therefore must stay untouched as long
// as the request is in use. Use Clone to detach the request from the buffer.
type Request struct {
	path   string
	query  *query.Query
	method method.Method
}

func NewRequest(m method.Method, path string, q *query.Query) *Request {
	return &Request{
		path:   path,
		query:  q,
		method: m,
	}
}

// Path returns the request path without the query part. It isn't URL-decoded.
func (r *Request) Path() string {
	return r.path
}

func (r *Request) Method() method.Method {
	return r.method
}

// Query returns nil if the path carried no '?'.
func (r *Request) Query() *query.Query {
	return r.query
}

func (r *Request) HasQuery() bool {
	return r.query != nil
}

// Clone returns a request owning its memory, so it may outlive the buffer it was
// parsed from.
func (r *Request) Clone() *Request {
	clone := &Request{
		path:   strings.Clone(r.path),
		method: r.method,
	}

	if r.query != nil {
		clone.query = r.query.Clone()
	}

	return clone
}
