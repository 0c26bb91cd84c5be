package dummy

import (
	"io"
	"net"
	"time"
)

// Conn is a connection replaying the data it was initialised with and storing
// everything written into it. Used for testing purposes
type Conn struct {
	data     []byte
	Written  []byte
	Closed   bool
	WriteErr error
}

func NewConn(data []byte) *Conn {
	return &Conn{data: data}
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if len(c.data) == 0 {
		return 0, io.EOF
	}

	n = copy(b, c.data)
	c.data = c.data[n:]

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.WriteErr != nil {
		return 0, c.WriteErr
	}

	c.Written = append(c.Written, b...)

	return len(b), nil
}

func (c *Conn) Close() error {
	c.Closed = true
	return nil
}

func (*Conn) LocalAddr() net.Addr {
	return nil
}

func (*Conn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 16100}
}

func (*Conn) SetDeadline(time.Time) error {
	return nil
}

func (*Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (*Conn) SetWriteDeadline(time.Time) error {
	return nil
}
