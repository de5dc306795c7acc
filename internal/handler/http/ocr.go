package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/blood-press-log/internal/logger"
	"github.com/MKhiriev/blood-press-log/internal/service"
	"github.com/MKhiriev/blood-press-log/internal/utils"
	"github.com/MKhiriev/blood-press-log/models"
)

func (h *Handler) recognize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.OCRRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		respondError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if request.Image == "" {
		log.Error().Msg("image is required")
		respondError(w, "image is required", http.StatusBadRequest)
		return
	}

	measurement, err := h.services.OCRService.Recognize(ctx, request.Image)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Msg("invalid recognition input")
			respondError(w, "image is required", http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("recognition failed")
		respondError(w, "recognition failed", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.OCRResponse{
		Success: true,
		High:    measurement.High,
		Low:     measurement.Low,
		Plus:    measurement.Plus,
	}, http.StatusOK)
}
