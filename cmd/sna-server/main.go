// Command sna-server runs the social network analysis HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/EmircanDemirTR/social-network-analyzer/internal/api"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/config"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/service"
	"github.com/EmircanDemirTR/social-network-analyzer/internal/ws"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("level", cfg.LogLevel).Warn("unknown log level, using info")
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := ws.NewHub(log)

	core := service.NewCore(cfg, hub, log)

	deps := &api.RouterDeps{
		Log:         log,
		Hub:         hub,
		Nodes:       service.NewNodeService(core),
		Edges:       service.NewEdgeService(core),
		Graph:       service.NewGraphService(core),
		Algorithms:  service.NewAlgorithmService(core),
		Layout:      service.NewLayoutService(core),
		Export:      service.NewExportService(core),
		CORSOrigins: cfg.CORSOrigins,
		Version:     config.Version,
		MaxBodySize: cfg.MaxBodySize,
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(ctx, deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)

		return nil
	})

	g.Go(func() error {
		log.WithField("addr", cfg.Addr()).Info("server listening")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		log.Info("shutting down")

		core.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
