package http

import (
	"net/http"

	"github.com/MKhiriev/jaeger-ui-devconfig/internal/logger"
	"github.com/MKhiriev/jaeger-ui-devconfig/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	if _, err := utils.WriteJSON(w, buildInfo, http.StatusOK); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("error writing build info")
	}
}
