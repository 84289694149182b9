package http

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// serveStatic serves files below the static directory. A browser navigation
// to a path with no file behind it gets the index document, so client-side
// routes such as /search or /trace/{id} survive a reload. The local override
// files answer 404 even when they live below the static directory.
func (h *Handler) serveStatic(w http.ResponseWriter, r *http.Request) {
	name := filepath.Join(h.staticDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))

	if filepath.Clean(name) == filepath.Clean(h.indexPath) {
		h.serveIndex(w, r)
		return
	}

	if h.isOverrideFile(name) {
		http.NotFound(w, r)
		return
	}

	if _, err := os.Stat(name); errors.Is(err, fs.ErrNotExist) && acceptsHTML(r) {
		h.serveIndex(w, r)
		return
	}

	http.FileServer(http.Dir(h.staticDir)).ServeHTTP(w, r)
}

func (h *Handler) isOverrideFile(name string) bool {
	return slices.Contains(h.overridePaths, absPath(name))
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}
