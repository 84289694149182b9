// Package workers provides the background workers of the dev server and a
// Workers aggregate that runs them for the lifetime of the process.
package workers

import (
	"context"

	"github.com/MKhiriev/jaeger-ui-devconfig/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker cannot continue. A
// returned error is reported by [Workers] and does not stop other workers.
type Worker interface {
	Run(ctx context.Context) error
}

// Notifier receives live-reload messages, typically to push them to
// connected browsers.
type Notifier interface {
	Notify(ctx context.Context, msg models.ReloadMessage)
}
