package http

import (
	"net/http"

	"github.com/MKhiriev/go-coffee-freezer/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteText(w, http.StatusOK, serverVersion)
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		h.logger.Err(err).Msg("health check failed")
		utils.WriteText(w, http.StatusServiceUnavailable, "unavailable")
		return
	}

	utils.WriteText(w, http.StatusOK, "ok")
}
