package http1

import (
	"io"
	"strconv"

	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/status"
)

const (
	responseLinePrefix = "HTTP/1.1 "
	contentLength      = "Content-Length: "
	crlf               = "\r\n"
	// defaultBody is sent instead of a missing body. It is counted by Content-Length
	// as any other body.
	defaultBody = " "
)

// Serializer renders responses into its own buffer, so the whole response leaves in a
// single write. It is not safe for concurrent use.
type Serializer struct {
	buff []byte
}

func NewSerializer(buff []byte) *Serializer {
	return &Serializer{
		buff: buff[:0],
	}
}

// Write renders the response into the sink as
//
//	HTTP/1.1 <code> <reason>\r\nContent-Length: <len>\r\n\r\n <body>
//
// Note the space between the blank line and the body. Errors of the sink are returned
// as they are.
func (s *Serializer) Write(response *http.Response, sink io.Writer) error {
	defer s.clear()

	body, ok := response.Body()
	if !ok {
		body = defaultBody
	}

	code := response.StatusCode()
	s.buff = append(s.buff, responseLinePrefix...)
	s.buff = strconv.AppendUint(s.buff, uint64(code), 10)
	s.sp()
	s.buff = append(s.buff, status.Text(code)...)
	s.crlf()
	s.buff = strconv.AppendInt(append(s.buff, contentLength...), int64(len(body)), 10)
	s.crlf()
	s.crlf()
	s.sp()
	s.buff = append(s.buff, body...)

	n, err := sink.Write(s.buff)
	if err == nil && n < len(s.buff) {
		err = io.ErrShortWrite
	}

	return err
}

func (s *Serializer) sp() {
	s.buff = append(s.buff, ' ')
}

func (s *Serializer) crlf() {
	s.buff = append(s.buff, crlf...)
}

func (s *Serializer) clear() {
	s.buff = s.buff[:0]
}

// Send writes the response into the sink using a throwaway serializer.
func Send(response *http.Response, sink io.Writer) error {
	return NewSerializer(nil).Write(response, sink)
}
