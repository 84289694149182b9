// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/models"
	"github.com/fsnotify/fsnotify"
)

const reloadEvents = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

type reloadNotifier struct {
	paths    []string
	notifier Notifier

	logger *logger.Logger
}

// NewReloadNotifier returns a [Worker] that calls notifier once for every
// change of the override files named in cfg.
//
// The parent directories are watched rather than the files themselves, so
// files that do not exist yet, or are replaced by an editor's atomic save,
// are still tracked.
func NewReloadNotifier(cfg config.Overrides, notifier Notifier, logger *logger.Logger) (Worker, error) {
	n := &reloadNotifier{notifier: notifier, logger: logger}

	for _, p := range []string{cfg.FullOverridePath, cfg.PatchPath} {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWatchOverrides, err)
		}
		n.paths = append(n.paths, filepath.Clean(abs))
	}

	return n, nil
}

func (n *reloadNotifier) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatchOverrides, err)
	}
	defer watcher.Close()

	for _, dir := range n.dirs() {
		if err = watcher.Add(dir); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWatchOverrides, dir, err)
		}
	}
	n.logger.Info().Strs("paths", n.paths).Msg("watching override files")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			n.handleEvent(ctx, event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			n.logger.Warn().Err(err).Msg("override watcher error")
		}
	}
}

func (n *reloadNotifier) dirs() []string {
	dirs := make([]string, 0, len(n.paths))
	for _, p := range n.paths {
		dirs = append(dirs, filepath.Dir(p))
	}
	slices.Sort(dirs)
	return slices.Compact(dirs)
}

func (n *reloadNotifier) handleEvent(ctx context.Context, event fsnotify.Event) {
	if event.Name == "" || event.Op&reloadEvents == 0 {
		return
	}

	name := filepath.Clean(event.Name)
	if !slices.Contains(n.paths, name) {
		return
	}

	n.logger.Info().Str("path", name).Str("op", event.Op.String()).Msg("override file changed, reloading browsers")
	n.notifier.Notify(ctx, models.NewFullReloadMessage())
}
