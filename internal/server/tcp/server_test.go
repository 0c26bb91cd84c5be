package tcp

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/indigo-web/lite/internal/server/tcp/dummy"
	"github.com/stretchr/testify/require"
)

func TestServer(t *testing.T) {
	t.Run("stop", func(t *testing.T) {
		listener, err := net.Listen("tcp", "localhost:0")
		require.NoError(t, err)

		server := NewServer(listener)
		errCh := make(chan error)
		go func() {
			errCh <- server.Start(func(net.Conn) {})
		}()
		require.NoError(t, server.Stop())
		require.ErrorIs(t, <-errCh, ErrShutdown)
	})

	t.Run("echo", func(t *testing.T) {
		listener, err := net.Listen("tcp", "localhost:0")
		require.NoError(t, err)

		server := NewServer(listener)
		errCh := make(chan error)
		go func() {
			errCh <- server.Start(func(conn net.Conn) {
				client := NewClient(conn, time.Second, make([]byte, 64))
				data, err := client.Read()
				if err == nil {
					_, _ = client.Write(data)
				}

				_ = client.Close()
			})
		}()

		conn, err := net.Dial("tcp", server.Addr().String())
		require.NoError(t, err)
		_, err = conn.Write([]byte("Hello!"))
		require.NoError(t, err)
		data, err := io.ReadAll(conn)
		require.NoError(t, err)
		require.Equal(t, "Hello!", string(data))
		require.NoError(t, conn.Close())

		require.NoError(t, server.GracefulShutdown())
		require.ErrorIs(t, <-errCh, ErrShutdown)
	})

	t.Run("stop closes live connections", func(t *testing.T) {
		listener, err := net.Listen("tcp", "localhost:0")
		require.NoError(t, err)

		server := NewServer(listener)
		accepted := make(chan struct{})
		errCh := make(chan error)
		go func() {
			errCh <- server.Start(func(conn net.Conn) {
				close(accepted)
				_, _ = conn.Read(make([]byte, 1))
			})
		}()

		conn, err := net.Dial("tcp", server.Addr().String())
		require.NoError(t, err)
		defer conn.Close()
		<-accepted

		require.NoError(t, server.Stop())
		require.ErrorIs(t, <-errCh, ErrShutdown)
	})
}

func TestServer_Track(t *testing.T) {
	t.Run("before shutdown", func(t *testing.T) {
		listener, err := net.Listen("tcp", "localhost:0")
		require.NoError(t, err)
		defer listener.Close()

		server := NewServer(listener)
		conn := dummy.NewConn(nil)
		require.True(t, server.track(conn))
		require.False(t, conn.Closed)
		require.Contains(t, server.conns, net.Conn(conn))
	})

	t.Run("after stop", func(t *testing.T) {
		listener, err := net.Listen("tcp", "localhost:0")
		require.NoError(t, err)

		server := NewServer(listener)
		require.NoError(t, server.Stop())

		conn := dummy.NewConn(nil)
		require.False(t, server.track(conn))
		require.True(t, conn.Closed)
		require.Empty(t, server.conns)
	})

	t.Run("after graceful shutdown", func(t *testing.T) {
		listener, err := net.Listen("tcp", "localhost:0")
		require.NoError(t, err)

		server := NewServer(listener)
		require.NoError(t, server.GracefulShutdown())

		conn := dummy.NewConn(nil)
		require.False(t, server.track(conn))
		require.True(t, conn.Closed)
	})
}

func TestClient_Timeout(t *testing.T) {
	server, conn := net.Pipe()
	defer conn.Close()

	client := NewClient(server, 10*time.Millisecond, make([]byte, 16))
	_, err := client.Read()
	require.Error(t, err)

	var netErr net.Error
	require.ErrorAs(t, err, &netErr)
	require.True(t, netErr.Timeout())
	require.NoError(t, client.Close())
}
