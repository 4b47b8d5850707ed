//go:build !windows
// +build !windows

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gliderlabs/ssh"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg"
	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/config"
)

var (
	configPath = flag.String("config", "", "path to YAML config file, also passed to the viewer")
	listen     = flag.String("listen", "", "SSH listen address")
	viewer     = flag.String("viewer", "", "path to the bagfill binary")
	hostKey    = flag.String("host-key", "", "path to the SSH host key")
	logPath    = flag.String("log", "", "path to log file")
	logLevel   = flag.String("level", "", "log level")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *listen != "" {
		cfg.SSH.Listen = *listen
	}
	if *viewer != "" {
		cfg.SSH.Viewer = *viewer
	}
	if *hostKey != "" {
		cfg.SSH.HostKey = *hostKey
	}
	if *logPath != "" {
		cfg.Log.File = *logPath
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, err := pkg.InitLog(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	args := []string{"-tui"}
	if *configPath != "" {
		args = append(args, "-config", *configPath)
	}

	s, err := pkg.NewServer(cfg.SSH, args, log)
	if err != nil {
		log.WithError(err).Fatal("failed to create server")
	}

	errc := make(chan error, 1)
	go func() {
		log.WithField("addr", s.Addr).Info("listening")
		errc <- s.ListenAndServe()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		if !errors.Is(err, ssh.ErrServerClosed) {
			log.WithError(err).Fatal("server stopped")
		}
	case sig := <-sigc:
		log.WithField("signal", sig.String()).Info("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("shutdown incomplete")
		}
	}
}
