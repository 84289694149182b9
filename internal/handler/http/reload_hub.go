// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/models"
	"github.com/gorilla/websocket"
)

const defaultReloadWriteTimeout = 2 * time.Second

// ReloadHub keeps the live-reload websocket connections of open pages and
// broadcasts reload messages to them. It implements workers.Notifier.
type ReloadHub struct {
	upgrader     websocket.Upgrader
	writeTimeout time.Duration

	mu    sync.Mutex
	conns map[*reloadConn]struct{}

	logger *logger.Logger
}

// reloadConn serializes writes to one websocket connection.
type reloadConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func NewReloadHub(logger *logger.Logger) *ReloadHub {
	return &ReloadHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		writeTimeout: defaultReloadWriteTimeout,
		conns:        make(map[*reloadConn]struct{}),
		logger:       logger,
	}
}

// ServeHTTP upgrades the request and keeps the connection registered until
// the browser goes away. Messages sent by the browser are discarded.
func (h *ReloadHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an error response
		log.Warn().Err(fmt.Errorf("%w: %w", ErrUpgradeReload, err)).Msg("live-reload connection rejected")
		return
	}

	c := &reloadConn{conn: conn}
	h.add(c)
	log.Debug().Int("connections", h.Len()).Msg("live-reload client connected")

	for {
		if _, _, err = conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(c)
	log.Debug().Int("connections", h.Len()).Msg("live-reload client disconnected")
}

// Notify sends msg to every connected page. A connection that cannot be
// written to within the write timeout is closed and dropped.
func (h *ReloadHub) Notify(ctx context.Context, msg models.ReloadMessage) {
	conns := h.snapshot()
	if len(conns) == 0 {
		return
	}

	deadline := time.Now().Add(h.writeTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	var wg sync.WaitGroup
	for _, c := range conns {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.writeJSON(msg, deadline); err != nil {
				h.logger.Debug().Err(err).Msg("dropping live-reload client")
				h.remove(c)
			}
		}()
	}
	wg.Wait()

	h.logger.Debug().Str("type", msg.Type).Int("connections", len(conns)).Msg("reload message broadcast")
}

// Len returns the number of connected pages.
func (h *ReloadHub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Close disconnects every page. Pages reconnect once the server is back.
func (h *ReloadHub) Close() {
	for _, c := range h.snapshot() {
		c.close()
		h.remove(c)
	}
}

func (h *ReloadHub) add(c *reloadConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
}

func (h *ReloadHub) remove(c *reloadConn) {
	h.mu.Lock()
	_, ok := h.conns[c]
	delete(h.conns, c)
	h.mu.Unlock()

	if ok {
		_ = c.conn.Close()
	}
}

func (h *ReloadHub) snapshot() []*reloadConn {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := make([]*reloadConn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	return conns
}

func (c *reloadConn) writeJSON(v any, deadline time.Time) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

func (c *reloadConn) close() {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(time.Second))
	_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
}
