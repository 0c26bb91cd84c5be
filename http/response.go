package http

import "github.com/indigo-web/lite/http/status"

// Response is a status code with an optional body. Absent body differs from an empty
// one: see the serializer for how each of them is rendered.
type Response struct {
	body    string
	code    status.Code
	hasBody bool
}

// NewResponse returns a new response with the code. At most one body may be passed;
// the rest are ignored.
func NewResponse(code status.Code, body ...string) *Response {
	resp := &Response{code: code}
	if len(body) > 0 {
		resp.String(body[0])
	}

	return resp
}

// Code sets the response code.
func (r *Response) Code(code status.Code) *Response {
	r.code = code
	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	r.body = body
	r.hasBody = true
	return r
}

// Bytes copies the body, as a response may be kept after the slice was reused.
func (r *Response) Bytes(body []byte) *Response {
	return r.String(string(body))
}

func (r *Response) StatusCode() status.Code {
	return r.code
}

// Body returns the body and whether it was set at all.
func (r *Response) Body() (string, bool) {
	return r.body, r.hasBody
}
