package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-trips/internal/app"
	"github.com/MKhiriev/go-trips/internal/logger"
	"github.com/MKhiriev/go-trips/internal/service"
	"github.com/MKhiriev/go-trips/internal/utils"
	"github.com/MKhiriev/go-trips/models"
)

func (h *Handler) searchTrips(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := r.URL.Query()
	page, err := h.services.TripService.SearchTrips(r.Context(), models.TripSearchQuery{
		Keyword:   query.Get("q"),
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		Page:      query.Get("page"),
		PageSize:  query.Get("pageSize"),
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			log.Err(err).Msg("invalid search date")
			writeError(w, r, app.MsgInvalidDate, http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("trip search failed")
		writeError(w, r, app.MsgServerError, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, page, http.StatusOK)
}

func (h *Handler) getTrip(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := tripIDParam(r)
	if !ok {
		writeError(w, r, app.MsgNotFound, http.StatusNotFound)
		return
	}

	trip, err := h.services.TripService.GetTrip(r.Context(), id)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusNotFound {
			writeError(w, r, app.MsgNotFound, status)
			return
		}
		log.Err(err).Int64("id", id).Msg("get trip failed")
		writeError(w, r, app.MsgServerError, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, trip, http.StatusOK)
}

func (h *Handler) createTrip(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateTripRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	trip, err := h.services.TripService.CreateTrip(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid trip data provided")
			writeError(w, r, app.MsgTripFieldsRequired, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidDate):
			log.Err(err).Msg("invalid trip date")
			writeError(w, r, app.MsgInvalidDate, http.StatusBadRequest)
		default:
			log.Err(err).Msg("trip creation failed")
			writeError(w, r, app.MsgCreateTripFailed, http.StatusInternalServerError)
		}
		return
	}

	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		log.Info().Int64("user_id", identity.UserID).Int64("trip_id", trip.ID).Msg("trip created")
	}

	writeJSON(w, r, trip, http.StatusCreated)
}

func (h *Handler) updateTrip(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := tripIDParam(r)
	if !ok {
		writeError(w, r, app.MsgTripNotFound, http.StatusNotFound)
		return
	}

	var req models.UpdateTripRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	trip, err := h.services.TripService.UpdateTrip(r.Context(), id, req)
	if err != nil {
		switch status := statusFromError(err); {
		case status == http.StatusNotFound:
			writeError(w, r, app.MsgTripNotFound, status)
		case errors.Is(err, service.ErrInvalidDate):
			log.Err(err).Int64("id", id).Msg("invalid trip date")
			writeError(w, r, app.MsgInvalidDate, http.StatusBadRequest)
		default:
			log.Err(err).Int64("id", id).Msg("trip update failed")
			writeError(w, r, app.MsgUpdateTripFailed, http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, r, trip, http.StatusOK)
}

func (h *Handler) deleteTrip(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := tripIDParam(r)
	if !ok {
		writeError(w, r, app.MsgTripNotFound, http.StatusNotFound)
		return
	}

	if err := h.services.TripService.DeleteTrip(r.Context(), id); err != nil {
		if statusFromError(err) == http.StatusNotFound {
			writeError(w, r, app.MsgTripNotFound, http.StatusNotFound)
			return
		}
		log.Err(err).Int64("id", id).Msg("trip deletion failed")
		writeError(w, r, app.MsgDeleteTripFailed, http.StatusInternalServerError)
		return
	}

	if identity, ok := utils.GetIdentityFromContext(r.Context()); ok {
		log.Info().Int64("user_id", identity.UserID).Int64("trip_id", id).Msg("trip deleted")
	}

	writeJSON(w, r, models.MessageResponse{Message: app.MsgTripDeleted}, http.StatusOK)
}
