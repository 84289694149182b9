package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/adapter"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/handler"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/server"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/service"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/workers"
	"github.com/MKhiriev/jaeger-ui-devconfig/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "jaeger-ui-devserver"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(role)
	if cfg.Log.Pretty {
		log = logger.NewConsoleLogger(role)
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating backend adapter")
	}

	services := service.NewServices(backend, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var backgroundWorkers []workers.Worker
	if !cfg.Overrides.DisableWatch {
		reloadNotifier, err := workers.NewReloadNotifier(cfg.Overrides, handlers.Reload, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating override file watcher")
		}
		backgroundWorkers = append(backgroundWorkers, reloadNotifier)
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(log, backgroundWorkers...), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(buildInfo models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", buildInfo.BuildVersion())
	fmt.Printf("Build date: %s\n", buildInfo.BuildDate())
	fmt.Printf("Build commit: %s\n", buildInfo.BuildCommit())
}
