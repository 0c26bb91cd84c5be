package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/indigo-web/lite"
	"github.com/indigo-web/lite/config"
	"github.com/indigo-web/lite/router/static"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a JSON config file")
		addr       = flag.String("addr", "", "address to listen on (overrides config and "+config.EnvAddr+")")
		public     = flag.String("public", "", "directory to serve files from (overrides config and "+config.EnvPublicPath+")")
	)
	flag.Parse()

	if err := run(*configPath, *addr, *public); err != nil {
		fmt.Fprintln(os.Stderr, "lite:", err)
		os.Exit(1)
	}
}

func run(configPath, addr, public string) error {
	cfg := config.Default()
	if len(configPath) > 0 {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	cfg = config.FromEnv(cfg)
	if len(addr) > 0 {
		cfg.NET.Addr = addr
	}
	if len(public) > 0 {
		cfg.Static.Root = public
	}

	logger, err := cfg.Log.Build()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	r, err := static.New(cfg.Static.Root, logger)
	if err != nil {
		return fmt.Errorf("public path: %w", err)
	}

	logger.Info("serving static files", zap.String("root", r.Root()))

	app := lite.New(cfg.NET.Addr).Tune(*cfg).Logger(logger)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signals
		logger.Info("shutting down", zap.Stringer("signal", sig))
		app.GracefulStop()
	}()

	return app.Serve(r)
}
