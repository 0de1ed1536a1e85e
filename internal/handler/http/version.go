package http

import (
	"net/http"

	"github.com/MKhiriev/go-dag-signer/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteJSON(w, buildInfo, http.StatusOK); err != nil {
		h.logger.Err(err).Msg("write version response")
	}
}
