package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/handler"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/handler/http"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/workers"
)

type server struct {
	httpServer *httpServer
	reload     *http.ReloadHub
	workers    *workers.Workers

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		reload:     handlers.Reload,
		workers:    workers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	// pages are told to go away first; hijacked connections are not closed
	// by http.Server.Shutdown
	if s.reload != nil {
		s.reload.Close()
	}
	s.httpServer.Shutdown()
}

// run serves until ctx is cancelled or the HTTP server fails, then shuts
// everything down and waits for the workers to return.
func (s *server) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if s.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(ctx)
		}()
	}

	serverStopped := make(chan struct{})
	go func() {
		defer close(serverStopped)
		if err := s.httpServer.RunServer(); err != nil {
			s.logger.Error().Err(err).Msg("error running HTTP server")
		}
	}()

	select {
	case <-ctx.Done():
	case <-serverStopped:
	}

	cancel()
	s.Shutdown()
	<-serverStopped
	wg.Wait()

	s.logger.Info().Msg("server shut down gracefully")
}
