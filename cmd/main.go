// Package main wires the HTTP server for the Gerrit contribution analytics service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/mike-goetz/gerrit-charts/config"
	"github.com/mike-goetz/gerrit-charts/internal/directory"
	"github.com/mike-goetz/gerrit-charts/internal/entities"
	"github.com/mike-goetz/gerrit-charts/internal/gerrit"
	"github.com/mike-goetz/gerrit-charts/internal/source"
	handlers_fiber "github.com/mike-goetz/gerrit-charts/internal/transport/http/server/handlers-fiber"
	"github.com/mike-goetz/gerrit-charts/internal/transport/http/middleware"
	"github.com/mike-goetz/gerrit-charts/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	src, err := source.New(ctx, cfg.Source.Backend, log, cfg)
	if err != nil {
		log.Errorw("source initialization error", "error", err)
		return
	}
	if err := src.OnStart(ctx); err != nil {
		log.Errorw("source start error", "error", err)
		return
	}
	defer func() {
		_ = src.OnStop(context.Background())
	}()

	// single ingestion: the change list is static for the process lifetime
	changes, err := src.Changes(ctx)
	if err != nil {
		log.Errorw("change ingestion error", "error", err)
		return
	}
	teams, err := src.Teams(ctx)
	if err != nil {
		log.Errorw("team ingestion error", "error", err)
		return
	}

	dir := directory.New(teams)
	engine, err := gerrit.New(log, dir, changes, entities.Filter{
		NumberOfDays:     cfg.Filter.NumberOfDays,
		Projects:         cfg.Filter.Projects,
		SummarizeCommits: cfg.Filter.SummarizeCommits,
	})
	if err != nil {
		log.Errorw("engine initialization error", "error", err)
		return
	}
	engine.Subscribe(func(f entities.Filter) {
		log.Infow("views recomputed",
			"commits", engine.CommitCount(),
			"contributors", engine.ContributorCount(),
		)
	})

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, engine, dir)
	h.Register(serv)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
