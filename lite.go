package lite

import (
	"net"

	"github.com/indigo-web/lite/config"
	httpserver "github.com/indigo-web/lite/internal/server/http"
	"github.com/indigo-web/lite/internal/server/tcp"
	"github.com/indigo-web/lite/router"
	"go.uber.org/zap"
)

type stopMode uint8

const (
	stopImmediately stopMode = iota + 1
	stopGracefully
)

// App is the server shell around the codec: it accepts connections, parses a single
// request from each of them and sends the router's answer back.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	hooks  hooks
	addr   net.Addr
	stopCh chan stopMode
}

// New returns a new App instance listening on the addr.
func New(addr string) *App {
	cfg := config.Default()
	cfg.NET.Addr = addr

	return &App{
		cfg:    cfg,
		logger: zap.NewNop(),
		stopCh: make(chan stopMode, 1),
	}
}

// Tune replaces the default config. The address passed to New is kept unless the
// config specifies one.
func (a *App) Tune(cfg config.Config) *App {
	addr := a.cfg.NET.Addr
	a.cfg = config.Fill(cfg)
	if len(cfg.NET.Addr) == 0 {
		a.cfg.NET.Addr = addr
	}

	return a
}

// Logger sets the logger. No-op logger is used by default.
func (a *App) Logger(logger *zap.Logger) *App {
	a.logger = logger
	return a
}

// NotifyOnStart calls the callback at the moment, when the listener is ready to accept
// connections
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when the server is down. It's guaranteed,
// that at the moment as the callback is called, the server isn't able to accept any new connections
// and all the clients are already disconnected
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addr returns the address the app actually listens on. It's nil until the app is started.
func (a *App) Addr() net.Addr {
	return a.addr
}

// Serve starts the app and blocks until it's stopped. Returns nil if the app was stopped
// via Stop or GracefulStop, otherwise the error the listener failed with.
func (a *App) Serve(r router.Router) error {
	sock, err := net.Listen("tcp", a.cfg.NET.Addr)
	if err != nil {
		return err
	}

	server := tcp.NewServer(sock)
	a.addr = server.Addr()
	httpServer := httpserver.NewServer(r, a.cfg, a.logger)

	startErr := make(chan error, 1)
	go func() {
		startErr <- server.Start(httpServer.HandleConn)
	}()

	a.logger.Info("listening", zap.Stringer("addr", a.addr))
	callIfNotNil(a.hooks.OnStart)

	select {
	case err = <-startErr:
	case mode := <-a.stopCh:
		switch mode {
		case stopGracefully:
			// stop listening to new clients and process till the end all the old ones
			err = server.GracefulShutdown()
		default:
			err = server.Stop()
		}

		if err != nil {
			a.logger.Warn("failed to stop the listener", zap.Error(err))
		}

		err = <-startErr
	}

	callIfNotNil(a.hooks.OnStop)
	a.logger.Info("stopped", zap.Stringer("addr", a.addr))

	if err == tcp.ErrShutdown {
		return nil
	}

	return err
}

// GracefulStop stops accepting new connections, but keeps serving old ones.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// will be still working
func (a *App) GracefulStop() {
	a.stop(stopGracefully)
}

// Stop stops the whole application immediately.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the server
// will still be working
func (a *App) Stop() {
	a.stop(stopImmediately)
}

func (a *App) stop(mode stopMode) {
	select {
	case a.stopCh <- mode:
	default:
		// already stopping
	}
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
