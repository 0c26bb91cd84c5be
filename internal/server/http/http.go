package http

import (
	"net"
	"time"

	"github.com/indigo-web/lite/config"
	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/status"
	"github.com/indigo-web/lite/internal/server/tcp"
	"github.com/indigo-web/lite/internal/transport"
	"github.com/indigo-web/lite/internal/transport/http1"
	"github.com/indigo-web/lite/router"
	"github.com/indigo-web/utils/uf"
	"go.uber.org/zap"
)

// Server serves exactly one request per connection: it reads once, answers and closes.
type Server struct {
	router router.Router
	cfg    *config.Config
	logger *zap.Logger
}

func NewServer(r router.Router, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		router: r,
		cfg:    cfg,
		logger: logger,
	}
}

// HandleConn is meant to be passed into tcp.Server.Start.
func (s *Server) HandleConn(conn net.Conn) {
	client := tcp.NewClient(conn, time.Duration(s.cfg.NET.ReadTimeout), make([]byte, s.cfg.NET.ReadBufferSize))
	trans := http1.New(make([]byte, 0, s.cfg.NET.WriteBufferSize))
	s.Serve(client, trans)
}

func (s *Server) Serve(client tcp.Client, trans transport.Transport) {
	defer func() {
		_ = client.Close()
	}()

	data, err := client.Read()
	if err != nil && len(data) == 0 {
		s.logger.Warn("failed to read from connection",
			zap.Stringer("remote", client.Remote()),
			zap.Error(err))
		return
	}

	if ce := s.logger.Check(zap.DebugLevel, "received a request"); ce != nil {
		ce.Write(zap.Stringer("remote", client.Remote()), zap.String("data", uf.B2S(data)))
	}

	var response *http.Response
	request, err := trans.Parse(data)
	if err != nil {
		response = s.router.OnError(err)
	} else {
		response = s.router.OnRequest(request)
	}

	if response == nil {
		response = http.NewResponse(status.NotFound)
	}

	if err = trans.Write(response, client); err != nil {
		s.logger.Warn("failed to send response",
			zap.Stringer("remote", client.Remote()),
			zap.Error(err))
	}
}
