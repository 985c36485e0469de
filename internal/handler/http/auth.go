// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-trips/internal/app"
	"github.com/MKhiriev/go-trips/internal/logger"
	"github.com/MKhiriev/go-trips/internal/service"
	"github.com/MKhiriev/go-trips/internal/store"
	"github.com/MKhiriev/go-trips/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, r, app.MsgAllFieldsRequired, http.StatusBadRequest)
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			writeError(w, r, app.MsgEmailRegistered, statusFromError(err))
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, r, app.MsgInternalError, http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user registered")

	writeJSON(w, r, models.RegisterResponse{
		Message: app.MsgUserRegistered,
		UserID:  registeredUser.UserID,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, r, app.MsgCredentialsMissing, http.StatusBadRequest)
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("unknown email or wrong password")
			writeError(w, r, app.MsgInvalidCredentials, http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, r, app.MsgInternalError, http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeError(w, r, app.MsgInternalError, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}
