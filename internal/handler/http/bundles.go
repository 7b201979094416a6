package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/blended-mgmt/internal/app"
	"github.com/MKhiriev/blended-mgmt/internal/logger"
	"github.com/MKhiriev/blended-mgmt/internal/utils"
)

func (h *Handler) listBundles(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bundles, err := h.services.BundleService.ListBundles(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBundles").Msg("error listing bundles")
		http.Error(w, app.MsgListBundlesFailed, statusFromError(err))
		return
	}

	if _, err = utils.WriteJSON(w, bundles, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listBundles").Msg("error writing response")
	}
}

func (h *Handler) getBundle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 0 {
		log.Debug().Str("func", "*Handler.getBundle").Str("id", chi.URLParam(r, "id")).Msg(ErrInvalidBundleID.Error())
		http.Error(w, ErrInvalidBundleID.Error(), http.StatusBadRequest)
		return
	}

	bundle, err := h.services.BundleService.GetBundle(r.Context(), id)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			log.Err(err).Str("func", "*Handler.getBundle").Int64("bundle_id", id).Msg("error getting bundle")
		}
		http.Error(w, messageFromStatus(status), status)
		return
	}

	if _, err = utils.WriteJSON(w, bundle, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getBundle").Msg("error writing response")
	}
}
