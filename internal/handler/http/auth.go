package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/blood-press-log/internal/logger"
	"github.com/MKhiriev/blood-press-log/internal/service"
	"github.com/MKhiriev/blood-press-log/internal/store"
	"github.com/MKhiriev/blood-press-log/internal/utils"
	"github.com/MKhiriev/blood-press-log/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Msg("username and password are required")
		respondError(w, "username and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Authenticate(ctx, credentials.Username, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid credentials")
			respondError(w, "invalid credentials", http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			respondError(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			respondError(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", user.UserID).Str("username", user.Username).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Success: true,
		User:    models.UserInfo{ID: user.UserID, Username: user.Username},
	}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Msg("username and password are required")
		respondError(w, "username and password are required", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, credentials.Username, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			log.Err(err).Msg("username already exists")
			respondError(w, "username already exists", http.StatusConflict)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			respondError(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			respondError(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Success: true,
		ID:      registeredUser.UserID,
	}, http.StatusOK)
}
