package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/klwxsrx/go-mediator/internal/scoreboard"
	scoreboardhttp "github.com/klwxsrx/go-mediator/internal/scoreboard/infra/http"
	pkgcmd "github.com/klwxsrx/go-mediator/pkg/cmd"
	pkgenv "github.com/klwxsrx/go-mediator/pkg/env"
	pkghttp "github.com/klwxsrx/go-mediator/pkg/http"
	pkghub "github.com/klwxsrx/go-mediator/pkg/hub"
	pkgmediator "github.com/klwxsrx/go-mediator/pkg/mediator"
	pkgmetric "github.com/klwxsrx/go-mediator/pkg/metric"
	pkgsig "github.com/klwxsrx/go-mediator/pkg/sig"
)

func main() {
	ctx := context.Background()
	logger := pkgcmd.InitLogger("mediator-example")
	defer pkgcmd.HandleAppPanic(ctx, logger)

	httpAddress := pkgenv.Must(pkgenv.ParseOr("HTTP_ADDRESS", pkghttp.DefaultServerAddress))
	metricsEnabled := pkgenv.Must(pkgenv.ParseOr("METRICS_ENABLED", false))

	metrics := pkgmetric.NewMetricsStub()
	serverOpts := []pkghttp.ServerOption{
		pkghttp.WithHealthCheck(),
		pkghttp.WithLogging(logger),
		pkghttp.WithErrorStatusMapper(scoreboardhttp.ErrorStatus),
	}
	if metricsEnabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = pkgmetric.NewPrometheus(registry, "")
		serverOpts = append(serverOpts,
			pkghttp.WithMetrics(metrics),
			pkghttp.WithMetricsHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
		)
	}

	mediator := pkgmediator.New(
		pkgmediator.WithLogger(logger),
		pkgmediator.WithMetrics(metrics),
	)
	defer mediator.Close()

	logger.Info(ctx, "app is starting")

	container := scoreboard.MustInitDependencyContainer(ctx, mediator, logger)

	httpServer := pkghttp.NewServer(httpAddress, serverOpts...)
	container.RegisterHTTPHandlers(httpServer)

	logger.WithField("address", httpAddress).Info(ctx, "app is ready")
	pkghub.Must(pkghub.Run(ctx, logger, httpServer.Process()).Wait(ctx, pkgsig.TermSignals()))
}
