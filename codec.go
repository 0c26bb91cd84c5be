package lite

import (
	"io"

	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/internal/transport/http1"
)

// ParseRequest parses the request line out of data. Anything after the line is ignored.
//
// The returned request refers to data instead of copying it, so data must not be modified
// while the request is in use. Call Request.Clone if the buffer must be reused earlier.
// Errors are always one of http.ParseError variants.
func ParseRequest(data []byte) (*http.Request, error) {
	return http1.Parse(data)
}

// Send writes the response into the sink. Errors of the sink are returned as is.
func Send(response *http.Response, sink io.Writer) error {
	return http1.Send(response, sink)
}
