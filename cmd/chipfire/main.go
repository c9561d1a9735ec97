//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"chipfire/internal/app"
	"chipfire/internal/core"
	"chipfire/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := app.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger := logging.New(level)

	reg := prometheus.NewRegistry()
	cache := core.NewNeighborCache(nil, core.NewCacheMetrics(reg))

	var metrics *http.Server
	if cfg.MetricsAddr != "" {
		metrics = app.ServeMetrics(cfg.MetricsAddr, reg, logger)
	}

	game, err := app.New(cfg, cache, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(fmt.Sprintf("chipfire - sigma %d", cfg.Sigma))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(game)

	if metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := metrics.Shutdown(ctx); err != nil {
			logger.Warn("metrics shutdown", "error", err)
		}
		cancel()
	}
	logger.Info("exiting", "cached", cache.Len())

	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
