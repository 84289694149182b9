package workers

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/models"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []models.ReloadMessage
}

func (n *recordingNotifier) Notify(_ context.Context, msg models.ReloadMessage) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.msgs)
}

func newTestReloadNotifier(t *testing.T, dir string) (*reloadNotifier, *recordingNotifier) {
	t.Helper()

	rec := &recordingNotifier{}
	w, err := NewReloadNotifier(config.Overrides{
		FullOverridePath: filepath.Join(dir, "jaeger-ui.config.js"),
		PatchPath:        filepath.Join(dir, "jaeger-ui.config.json"),
	}, rec, logger.Nop())
	require.NoError(t, err)

	return w.(*reloadNotifier), rec
}

func TestReloadNotifier_handleEvent(t *testing.T) {
	dir := t.TempDir()
	patch := filepath.Join(dir, "jaeger-ui.config.json")
	full := filepath.Join(dir, "jaeger-ui.config.js")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  int
	}{
		{name: "write to patch", event: fsnotify.Event{Name: patch, Op: fsnotify.Write}, want: 1},
		{name: "create full override", event: fsnotify.Event{Name: full, Op: fsnotify.Create}, want: 1},
		{name: "remove patch", event: fsnotify.Event{Name: patch, Op: fsnotify.Remove}, want: 1},
		{name: "rename full override", event: fsnotify.Event{Name: full, Op: fsnotify.Rename}, want: 1},
		{name: "combined ops notify once", event: fsnotify.Event{Name: patch, Op: fsnotify.Create | fsnotify.Write}, want: 1},
		{name: "unclean path", event: fsnotify.Event{Name: dir + "/./jaeger-ui.config.json", Op: fsnotify.Write}, want: 1},
		{name: "chmod only", event: fsnotify.Event{Name: patch, Op: fsnotify.Chmod}, want: 0},
		{name: "unrelated file", event: fsnotify.Event{Name: filepath.Join(dir, "index.html"), Op: fsnotify.Write}, want: 0},
		{name: "empty name", event: fsnotify.Event{Op: fsnotify.Write}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, rec := newTestReloadNotifier(t, dir)

			n.handleEvent(context.Background(), tt.event)

			assert.Equal(t, tt.want, rec.count())
			for _, msg := range rec.msgs {
				assert.Equal(t, models.NewFullReloadMessage(), msg)
			}
		})
	}
}

func TestReloadNotifier_dirsAreDeduplicated(t *testing.T) {
	n, _ := newTestReloadNotifier(t, t.TempDir())

	assert.Len(t, n.dirs(), 1)
}

func TestReloadNotifier_Run_NotifiesOnFileChange(t *testing.T) {
	dir := t.TempDir()
	n, rec := newTestReloadNotifier(t, dir)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- n.Run(ctx) }()

	// the watcher is registered asynchronously; keep touching the file until
	// the first event arrives
	patch := filepath.Join(dir, "jaeger-ui.config.json")
	require.Eventually(t, func() bool {
		_ = os.WriteFile(patch, []byte(`{"a":1}`), 0o644)
		return rec.count() > 0
	}, 2*time.Second, 20*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	before := rec.count()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.txt"), []byte("x"), 0o644))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, rec.count())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestReloadNotifier_Run_MissingDirectory(t *testing.T) {
	n, _ := newTestReloadNotifier(t, filepath.Join(t.TempDir(), "missing"))

	err := n.Run(context.Background())

	assert.ErrorIs(t, err, ErrWatchOverrides)
}
