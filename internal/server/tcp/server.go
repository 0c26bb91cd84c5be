package tcp

import (
	"errors"
	"net"
	"sync"
)

var ErrShutdown = errors.New("graceful shutdown")

type OnConnection func(net.Conn)

type Server struct {
	sock     net.Listener
	mu       sync.Mutex
	conns    map[net.Conn]struct{}
	shutdown bool
}

func NewServer(sock net.Listener) *Server {
	return &Server{
		sock:  sock,
		conns: map[net.Conn]struct{}{},
	}
}

// Start accepts connections until the listener is closed, handling each of them in
// a separate goroutine. Returns ErrShutdown if the server was stopped, otherwise the
// error of the listener.
func (s *Server) Start(onConn OnConnection) error {
	wg := new(sync.WaitGroup)

	for {
		conn, err := s.sock.Accept()
		if err != nil {
			wg.Wait()

			if s.isShutdown() {
				return ErrShutdown
			}

			return err
		}

		if !s.track(conn) {
			continue
		}

		wg.Add(1)
		go s.connHandler(wg, conn, onConn)
	}
}

func (s *Server) Addr() net.Addr {
	return s.sock.Addr()
}

func (s *Server) stopListener() error {
	s.mu.Lock()
	s.shutdown = true
	s.mu.Unlock()

	return s.sock.Close()
}

// Stop shuts listener and ALL the connections down
func (s *Server) Stop() error {
	if err := s.stopListener(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.conns {
		_ = conn.Close()
	}

	return nil
}

// GracefulShutdown stops a listener, but leaving all the connections free to end their
// lives peacefully
func (s *Server) GracefulShutdown() error {
	return s.stopListener()
}

// track registers the connection, so Stop can close it. A connection accepted after
// the shutdown began is closed immediately and reported as untracked.
func (s *Server) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shutdown {
		_ = conn.Close()
		return false
	}

	s.conns[conn] = struct{}{}

	return true
}

func (s *Server) isShutdown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.shutdown
}

func (s *Server) connHandler(wg *sync.WaitGroup, conn net.Conn, onConn OnConnection) {
	onConn(conn)

	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()

	wg.Done()
}
