package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/toqueteos/webbrowser"
	"github.com/trapdata/companion/internal/bridge"
	"github.com/trapdata/companion/internal/config"
	"github.com/trapdata/companion/internal/handlers"
	"github.com/trapdata/companion/internal/host"
	"github.com/trapdata/companion/internal/logger"
	"github.com/trapdata/companion/internal/router"
	"github.com/trapdata/companion/internal/service"
	"github.com/trapdata/companion/internal/view"
	"github.com/trapdata/companion/internal/ws"
	"golang.org/x/sync/errgroup"
)

// The native window must run on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	cmd := newCommand(config.Load, func(cfg *config.Config) error {
		slogger := logger.New(os.Stdout, cfg.Debug)
		if err := run(cfg, slogger); err != nil {
			slogger.Error("companion stopped", "err", err)
			return err
		}
		return nil
	})

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg *config.Config, slogger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Browser mode has no desktop app behind the page.
	var h bridge.Host
	if !cfg.Browser {
		h = host.New(slogger)
	}

	hub := ws.NewHub(slogger)
	v := view.New(h,
		view.WithLogger(slogger),
		view.OnChange(handlers.StatePusher(hub, slogger)),
	)
	v.Mount()

	mux := router.New(handlers.New(v, hub, cfg.Title, slogger), slogger)

	listener, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.ListenAddr, err)
	}

	url := fmt.Sprintf("http://%s", listener.Addr().String())
	slogger.Info("server starting", "addr", url)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{Handler: mux}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		return srv.Shutdown(shutdownCtx)
	})

	if cfg.Browser {
		if err := webbrowser.Open(url); err != nil {
			slogger.Warn("could not open browser", "url", url, "err", err)
		}
		<-gctx.Done()
	} else {
		win := service.NewWebViewService(cfg, slogger)
		go func() {
			<-gctx.Done()
			win.Close()
		}()
		win.Run(url)
		slogger.Info("window closed, shutting down")
	}

	cancel()
	return g.Wait()
}
