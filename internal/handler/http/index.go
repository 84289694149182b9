// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/utils"
)

// liveReloadScript connects the page to the reload websocket and refreshes it
// on every full-reload message. It reconnects while the dev server restarts.
const liveReloadScript = `<script type="module">
(() => {
  const url = (location.protocol === "https:" ? "wss://" : "ws://") + location.host + "` + ReloadPath + `";
  const connect = () => {
    const ws = new WebSocket(url);
    ws.onmessage = (event) => {
      try {
        if (JSON.parse(event.data).type === "full-reload") location.reload();
      } catch (_) {}
    };
    ws.onclose = () => setTimeout(connect, 1000);
  };
  connect();
})();
</script>
`

// serveIndex renders the index document from disk on every request, so
// edits to the file and to the override files show up without a restart.
func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	data, err := os.ReadFile(h.indexPath)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrReadIndex, err)
		log.Error().Err(err).Str("path", h.indexPath).Msg("cannot serve index document")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	document := h.services.RenderService.Render(r.Context(), string(data))

	if _, err = utils.WriteHTML(w, withLiveReload(document), http.StatusOK); err != nil {
		log.Error().Err(err).Msg("error writing index document")
	}
}

// withLiveReload inserts the live-reload client before the last </body>, or
// appends it to a document without one.
func withLiveReload(document string) string {
	i := strings.LastIndex(document, "</body>")
	if i < 0 {
		return document + liveReloadScript
	}

	return document[:i] + liveReloadScript + document[i:]
}
