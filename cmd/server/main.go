package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/api"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/config"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/engine"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/logger"
	"github.com/MdMahdiHasanTazelly/Climate-Analysis-Tool/internal/metrics"
)

var configFlag = flag.String("config", "", "Path to a config file (yaml, toml, json)")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	// Routes are live immediately and answer 503 until the load finishes.
	h := api.NewHandler(nil, 0)
	api.Setup(e, h)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t0 := time.Now()
		res, err := engine.Load(cfg.Data.Path)
		if err != nil {
			return err
		}
		q := engine.NewQueryEngine(res.Store)
		h.SetData(q, res.Rejected)
		metrics.ObserveLoad(res.Store.Size(), res.Rejected)

		logger.Info("dataset ready", "records", q.Size(), "elapsed", time.Since(t0))
		return nil
	})

	g.Go(func() error {
		logger.Info("server listening", "addr", cfg.Server.Addr)
		if err := e.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
