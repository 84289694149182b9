package http

import (
	"path/filepath"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/config"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/service"
)

type Handler struct {
	services *service.Services
	hub      *ReloadHub

	staticDir string
	indexPath string
	// overridePaths are absolute paths of the local override files. They
	// are never served as static assets.
	overridePaths []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, hub *ReloadHub, cfg config.Server, overrides config.Overrides, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	indexPath := cfg.IndexFile
	if !filepath.IsAbs(indexPath) {
		indexPath = filepath.Join(cfg.StaticDir, indexPath)
	}

	var overridePaths []string
	for _, p := range []string{overrides.FullOverridePath, overrides.PatchPath} {
		if p != "" {
			overridePaths = append(overridePaths, absPath(p))
		}
	}

	return &Handler{
		services:      services,
		hub:           hub,
		staticDir:     cfg.StaticDir,
		indexPath:     indexPath,
		overridePaths: overridePaths,
		logger:        logger,
	}
}

// absPath returns p made absolute, or p cleaned when the working directory
// cannot be determined.
func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
