package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hubastard/strata/engine/config"
	"github.com/hubastard/strata/engine/core"
	"github.com/hubastard/strata/engine/logging"
	"github.com/hubastard/strata/engine/platform"
	"github.com/hubastard/strata/engine/platform/headless"
	"github.com/hubastard/strata/engine/profiler"
)

func main() {
	cfgPath := flag.String("config", "", "TOML or YAML config file (default $STRATA_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := logging.Init(cfg.Logging()); err != nil {
		log.Fatal(err)
	}

	if cfg.Metrics.Addr != "" {
		if err := profiler.Init(prometheus.DefaultRegisterer); err != nil {
			log.Fatal(err)
		}
		go serveMetrics(cfg.Metrics.Addr)
	}

	newWindow := core.WindowFactory(platform.Factory)
	if cfg.Headless.Enabled {
		newWindow = headless.Factory(cfg.Headless.Frames)
	}

	err = core.Main(func() (*core.Application, error) {
		return newSandbox(cfg, newWindow)
	})
	if err != nil {
		log.Fatal(err)
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logging.Client().Info("serving metrics", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Client().Error("metrics server stopped", zap.Error(err))
	}
}
