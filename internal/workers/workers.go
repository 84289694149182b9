package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker in its own goroutine and waits for all of them to
// return. A failing or panicking worker is logged; the others keep running.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := w.runOne(ctx, worker); err != nil {
				w.logger.Error().Err(err).Msg("worker stopped with error")
			}
		}()
	}
	wg.Wait()
}

func (w *Workers) runOne(ctx context.Context, worker Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrWorkerPanicked, r)
		}
	}()

	return worker.Run(ctx)
}
