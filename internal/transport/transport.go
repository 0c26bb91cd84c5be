package transport

import (
	"io"

	"github.com/indigo-web/lite/http"
)

type Parser interface {
	Parse(data []byte) (*http.Request, error)
}

// Serializer converts a response into bytes and writes it into the sink
type Serializer interface {
	Write(response *http.Response, sink io.Writer) error
}

// Transport is a general pair of a parser and a serializer. Usually consists of both belonging
// to a same protocol major version
type Transport interface {
	Parser
	Serializer
}
