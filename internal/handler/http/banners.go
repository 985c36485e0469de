package http

import (
	"net/http"

	"github.com/MKhiriev/go-trips/internal/app"
	"github.com/MKhiriev/go-trips/internal/logger"
)

func (h *Handler) listBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.services.BannerService.ListBanners(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("banner listing failed")
		writeError(w, r, app.MsgServerError, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, banners, http.StatusOK)
}
